// SPDX-License-Identifier: MIT

//go:build parlu_debug

package matrix

// debugAsserts enables explicit row/column bounds assertions in the
// unchecked hot-path accessors (Row, RowBase). Build with -tags parlu_debug.
const debugAsserts = true
