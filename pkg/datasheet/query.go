package datasheet

import (
	"fmt"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
)

// MaxPageSize is the largest page Paginate hands out.
const MaxPageSize = 50

// Paginate returns copies of the body rows on a 1-based page.
//
// Page p covers rows (p-1)*size+1 through (p-1)*size+size of the full
// row vector, so the +1 skips the header. The sheet must hold at least
// size rows and the whole window must exist.
func (s *Sheet) Paginate(page, size int) ([][]models.Cell, error) {
	if page < 1 || size < 1 || size > MaxPageSize {
		return nil, NewSheetError("paginate", "", -1,
			fmt.Errorf("%w: page %d, size %d", ErrInvalidPage, page, size))
	}
	if len(s.rows) < size {
		return nil, NewSheetError("paginate", "", -1,
			fmt.Errorf("%w: %d rows, size %d", ErrPageUnavailable, len(s.rows), size))
	}

	// Compare page counts first so (page-1)*size cannot overflow.
	if page-1 > (len(s.rows)-1)/size {
		return nil, NewSheetError("paginate", "", -1,
			fmt.Errorf("%w: page %d past the last page", ErrPageUnavailable, page))
	}
	offset := (page-1)*size + 1
	if offset+size > len(s.rows) {
		return nil, NewSheetError("paginate", "", -1,
			fmt.Errorf("%w: offset %d and amount %d are out of bounds", ErrPageUnavailable, offset, size))
	}

	res := make([][]models.Cell, 0, size)
	for i := offset; i < offset+size; i++ {
		res = append(res, cloneRow(s.rows[i]))
	}
	return res, nil
}

// FindFirstRow returns a copy of the first body row whose cell in the
// column satisfies pred. ok is false when no row matches.
func (s *Sheet) FindFirstRow(name string, pred Predicate) (row []models.Cell, ok bool, err error) {
	col, err := s.resolve("find_first_row", name)
	if err != nil {
		return nil, false, err
	}

	for i := 1; i < len(s.rows); i++ {
		cell, err := s.cellAt("find_first_row", name, i, col)
		if err != nil {
			return nil, false, err
		}
		if pred(cell) {
			return cloneRow(s.rows[i]), true, nil
		}
	}
	return nil, false, nil
}

// Filter returns copies of every body row whose cell in the column
// satisfies pred, in load order. The sheet is not modified.
func (s *Sheet) Filter(name string, pred Predicate) ([][]models.Cell, error) {
	col, err := s.resolve("filter", name)
	if err != nil {
		return nil, err
	}

	var res [][]models.Cell
	for i := 1; i < len(s.rows); i++ {
		cell, err := s.cellAt("filter", name, i, col)
		if err != nil {
			return nil, err
		}
		if pred(cell) {
			res = append(res, cloneRow(s.rows[i]))
		}
	}
	return res, nil
}
