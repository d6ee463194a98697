package datasheet

import (
	"fmt"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/parser"
	"go.uber.org/zap"
)

// InsertRow parses text like a loaded line and appends it as the last row.
// Unlike loading, the row must have exactly as many fields as the header.
func (s *Sheet) InsertRow(text string) error {
	if len(s.rows) == 0 {
		return NewSheetError("insert_row", "", -1, ErrEmptySheet)
	}
	row := parser.SplitLine(text, s.opts.FieldDelimiter(), s.opts.ShouldTrimFields())
	if len(row) != len(s.rows[0]) {
		return NewSheetError("insert_row", "", -1,
			fmt.Errorf("%w: got %d fields, want %d", ErrWidthMismatch, len(row), len(s.rows[0])))
	}

	s.rows = append(s.rows, row)
	s.log.Debug("row inserted", zap.Int("rows", len(s.rows)))
	return nil
}

// FillCol sets every body cell of the column to value.
func (s *Sheet) FillCol(name string, value models.Cell) error {
	col, err := s.resolve("fill_col", name)
	if err != nil {
		return err
	}

	// Check every row first so a failure leaves the grid untouched.
	for i := 1; i < len(s.rows); i++ {
		if col >= len(s.rows[i]) {
			return NewSheetError("fill_col", name, i, ErrRowTooShort)
		}
	}
	for i := 1; i < len(s.rows); i++ {
		s.rows[i][col] = value
	}
	return nil
}

// DropRows removes every body row whose cell in the column satisfies
// pred and returns the number of rows removed. The header is never
// passed to pred and is always kept.
func (s *Sheet) DropRows(name string, pred Predicate) (int, error) {
	col, err := s.resolve("drop_rows", name)
	if err != nil {
		return 0, err
	}

	drop := make([]bool, len(s.rows))
	for i := 1; i < len(s.rows); i++ {
		cell, err := s.cellAt("drop_rows", name, i, col)
		if err != nil {
			return 0, err
		}
		drop[i] = pred(cell)
	}

	kept := s.rows[:1]
	for i := 1; i < len(s.rows); i++ {
		if !drop[i] {
			kept = append(kept, s.rows[i])
		}
	}
	removed := len(s.rows) - len(kept)
	// Clear the tail so dropped rows can be collected.
	for i := len(kept); i < len(s.rows); i++ {
		s.rows[i] = nil
	}
	s.rows = kept

	s.log.Debug("rows dropped", zap.String("column", name), zap.Int("removed", removed))
	return removed, nil
}

// DropCol removes the column from every row, header included, and
// returns the number of rows affected.
func (s *Sheet) DropCol(name string) (int, error) {
	col, err := s.resolve("drop_col", name)
	if err != nil {
		return 0, err
	}

	for i := range s.rows {
		if col >= len(s.rows[i]) {
			return 0, NewSheetError("drop_col", name, i, ErrRowTooShort)
		}
	}
	for i, row := range s.rows {
		s.rows[i] = append(row[:col], row[col+1:]...)
	}

	s.log.Debug("column dropped", zap.String("column", name), zap.Int("rows", len(s.rows)))
	return len(s.rows), nil
}

// EditCell overwrites one cell. row is body-relative and 0-based:
// row 0 is the first row after the header.
func (s *Sheet) EditCell(name string, row int, value models.Cell) error {
	col, err := s.resolve("edit_cell", name)
	if err != nil {
		return err
	}
	if row < 0 || row >= len(s.rows)-1 {
		return NewSheetError("edit_cell", name, -1, fmt.Errorf("%w: body row %d", ErrRowOutOfRange, row))
	}
	abs := row + 1
	if col >= len(s.rows[abs]) {
		return NewSheetError("edit_cell", name, abs, ErrRowTooShort)
	}

	s.rows[abs][col] = value
	return nil
}

// Map replaces the column's cell in every row with fn applied to it.
// The header cell is transformed too, so fn should leave String cells
// alone unless renaming the column is intended.
func (s *Sheet) Map(name string, fn Transform) error {
	col, err := s.resolve("map", name)
	if err != nil {
		return err
	}

	for i := range s.rows {
		if col >= len(s.rows[i]) {
			return NewSheetError("map", name, i, ErrRowTooShort)
		}
	}
	for i := range s.rows {
		s.rows[i][col] = fn(s.rows[i][col])
	}
	return nil
}
