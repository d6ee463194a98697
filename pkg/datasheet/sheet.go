package datasheet

import (
	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
	"go.uber.org/zap"
)

// Predicate selects cells for queries and row removal.
type Predicate func(models.Cell) bool

// Transform maps one cell to another.
type Transform func(models.Cell) models.Cell

// Sheet is a grid of typed cells. Row 0 is the header and holds the
// column names; every other row is a body row.
//
// A Sheet is not safe for concurrent use.
type Sheet struct {
	rows [][]models.Cell
	opts Options
	log  *zap.Logger
}

// New creates an empty sheet.
func New(opts Options) *Sheet {
	return &Sheet{
		opts: opts,
		log:  opts.logger(),
	}
}

// FromRows creates a sheet that takes ownership of rows.
// Rows shorter than the header are padded with Null.
func FromRows(rows [][]models.Cell, opts Options) *Sheet {
	s := New(opts)
	s.rows = rows
	s.padRows()
	return s
}

// Options returns the options the sheet was created with.
func (s *Sheet) Options() Options {
	return s.opts
}

// Rows returns the underlying grid, header included.
// Callers must not change row lengths through it.
func (s *Sheet) Rows() [][]models.Cell {
	return s.rows
}

// Len returns the number of rows including the header.
func (s *Sheet) Len() int {
	return len(s.rows)
}

// BodyLen returns the number of body rows.
func (s *Sheet) BodyLen() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len(s.rows) - 1
}

// Width returns the number of header cells.
func (s *Sheet) Width() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len(s.rows[0])
}

// Header returns the header row.
func (s *Sheet) Header() []models.Cell {
	if len(s.rows) == 0 {
		return nil
	}
	return s.rows[0]
}

// Columns returns the header cells rendered as text.
func (s *Sheet) Columns() []string {
	header := s.Header()
	names := make([]string, len(header))
	for i, cell := range header {
		names[i] = cell.String()
	}
	return names
}

// Row returns a copy of the row at absolute index i.
func (s *Sheet) Row(i int) ([]models.Cell, error) {
	if i < 0 || i >= len(s.rows) {
		return nil, NewSheetError("row", "", i, ErrRowOutOfRange)
	}
	return cloneRow(s.rows[i]), nil
}

// ColumnIndex returns the position of the first header cell holding
// name. Matching is exact and case-sensitive.
func (s *Sheet) ColumnIndex(name string) (int, bool) {
	for i, cell := range s.Header() {
		if text, ok := cell.AsString(); ok && text == name {
			return i, true
		}
	}
	return -1, false
}

// HasColumn reports whether the header names the column.
func (s *Sheet) HasColumn(name string) bool {
	_, ok := s.ColumnIndex(name)
	return ok
}

// Snapshot returns a detached, serializable copy of the sheet.
func (s *Sheet) Snapshot(name string) *models.SheetData {
	data := &models.SheetData{
		Name:      name,
		Columns:   s.Columns(),
		Rows:      make([][]models.Cell, 0, s.BodyLen()),
		UsedRange: s.UsedRange(),
	}
	for i := 1; i < len(s.rows); i++ {
		data.Rows = append(data.Rows, cloneRow(s.rows[i]))
	}
	return data
}

// resolve maps a column name to its index for operation op.
func (s *Sheet) resolve(op, name string) (int, error) {
	if len(s.rows) == 0 {
		return -1, NewSheetError(op, name, -1, ErrEmptySheet)
	}
	idx, ok := s.ColumnIndex(name)
	if !ok {
		return -1, NewSheetError(op, name, -1, ErrColumnNotFound)
	}
	return idx, nil
}

// cellAt returns the cell at absolute row i and a resolved column.
func (s *Sheet) cellAt(op, name string, i, col int) (models.Cell, error) {
	row := s.rows[i]
	if col >= len(row) {
		return models.Cell{}, NewSheetError(op, name, i, ErrRowTooShort)
	}
	return row[col], nil
}

// padRows right-pads body rows narrower than the header with Null and
// returns how many rows were padded. Wider rows are left untouched.
func (s *Sheet) padRows() int {
	if len(s.rows) == 0 {
		return 0
	}
	width := len(s.rows[0])
	padded := 0
	for i := 1; i < len(s.rows); i++ {
		if missing := width - len(s.rows[i]); missing > 0 {
			s.rows[i] = append(s.rows[i], make([]models.Cell, missing)...)
			padded++
		}
	}
	return padded
}

func cloneRow(row []models.Cell) []models.Cell {
	out := make([]models.Cell, len(row))
	copy(out, row)
	return out
}
