// SPDX-License-Identifier: MIT

//go:build !parlu_debug

package matrix

// debugAsserts is off in regular builds; Go slice bounds checks still apply.
const debugAsserts = false
