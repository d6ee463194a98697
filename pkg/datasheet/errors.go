package datasheet

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates a path without the expected file extension.
var ErrUnsupportedFormat = errors.New("the provided file path is invalid, or of unsupported format")

// ErrEmptySheet indicates an operation that needs a header row or body rows found none.
var ErrEmptySheet = errors.New("sheet has no rows")

// ErrColumnNotFound indicates the header has no column with the requested name.
var ErrColumnNotFound = errors.New("column not found")

// ErrTypeMismatch indicates a cell of the wrong kind was met by an aggregator.
var ErrTypeMismatch = errors.New("unexpected cell type")

// ErrWidthMismatch indicates an inserted row whose field count differs from the header.
var ErrWidthMismatch = errors.New("row width does not match header")

// ErrRowOutOfRange indicates a row index outside the sheet.
var ErrRowOutOfRange = errors.New("row index out of range")

// ErrRowTooShort indicates a row narrower than a resolved column index.
var ErrRowTooShort = errors.New("column is absent for row")

// ErrInvalidPage indicates a page below 1 or a page size outside 1..MaxPageSize.
var ErrInvalidPage = errors.New("page should be at least 1 and size at most 50 per page")

// ErrPageUnavailable indicates a page window that runs past the sheet.
var ErrPageUnavailable = errors.New("page unavailable")

// ErrInvalidRange indicates a cell range that cannot be read from the sheet.
var ErrInvalidRange = errors.New("invalid cell range")

// SheetError represents a failed sheet operation.
type SheetError struct {
	Op     string // "mean", "fill_col", "paginate", ...
	Column string
	Row    int // absolute row index, -1 when not applicable
	Err    error
}

func (e *SheetError) Error() string {
	switch {
	case e.Column != "" && e.Row >= 0:
		return fmt.Sprintf("%s on column %q (row %d): %v", e.Op, e.Column, e.Row, e.Err)
	case e.Column != "":
		return fmt.Sprintf("%s on column %q: %v", e.Op, e.Column, e.Err)
	case e.Row >= 0:
		return fmt.Sprintf("%s (row %d): %v", e.Op, e.Row, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(op, column string, row int, err error) *SheetError {
	return &SheetError{
		Op:     op,
		Column: column,
		Row:    row,
		Err:    err,
	}
}
