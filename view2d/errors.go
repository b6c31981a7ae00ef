// SPDX-License-Identifier: MIT
// Package view2d: sentinel error set.
// This file defines ONLY package-level sentinel errors. There are two kinds:
// configuration errors (raised at construction) and out-of-range errors
// (raised by the offending access, slice or row selection). Every specific
// sentinel wraps its kind, so callers may match either with errors.Is.

package view2d

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "view2d: ..." for grep-ability. Call sites
// wrap with method context, e.g. "View.Row(3): view2d: index out of range",
// and never replace the sentinel.

var (
	// ErrConfiguration is the kind of every construction-time failure.
	ErrConfiguration = errors.New("view2d: invalid configuration")

	// ErrOutOfRange is the kind of every access/slice/row failure.
	ErrOutOfRange = errors.New("view2d: index out of range")
)

var (
	// ErrRowCount is returned when the row count is not positive or does not
	// evenly divide the total length.
	ErrRowCount = fmt.Errorf("%w: row count does not evenly divide total length", ErrConfiguration)

	// ErrZeroLengthArray is returned by FromArray for an empty fixed array.
	ErrZeroLengthArray = fmt.Errorf("%w: zero-length fixed array not permitted", ErrConfiguration)

	// ErrNegativeLength is returned by FromPtr when n < 0.
	ErrNegativeLength = fmt.Errorf("%w: negative length", ErrConfiguration)

	// ErrNilPointer is returned by FromPtr when p is nil but n > 0.
	ErrNilPointer = fmt.Errorf("%w: nil pointer with non-zero length", ErrConfiguration)

	// ErrCursorRange is returned by FromCursors when the cursors do not
	// delimit a half-open range of one storage.
	ErrCursorRange = fmt.Errorf("%w: cursors do not delimit a valid range", ErrConfiguration)

	// ErrForeignCursor is returned when a cursor addresses another storage
	// than the view it is applied to.
	ErrForeignCursor = fmt.Errorf("%w: cursor belongs to another storage", ErrOutOfRange)
)
