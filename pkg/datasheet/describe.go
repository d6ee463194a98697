package datasheet

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/parser"
)

// DefaultDescribeRows is how many leading and trailing body rows
// Describe shows by default.
const DefaultDescribeRows = 5

// nullText is how dumps render Null cells.
const nullText = "NULL"

// Describe writes the header, the first n and last n body rows, and the
// row and column counts. When the body has at most 2n rows every row is
// shown once.
func (s *Sheet) Describe(w io.Writer, n int) error {
	if len(s.rows) == 0 {
		return NewSheetError("describe", "", -1, ErrEmptySheet)
	}
	if n < 1 {
		n = DefaultDescribeRows
	}

	body := s.rows[1:]
	table := newTable(w, s.rows[0])
	if len(body) <= 2*n {
		if err := appendRows(table, body); err != nil {
			return err
		}
	} else {
		if err := appendRows(table, body[:n]); err != nil {
			return err
		}
		gap := make([]string, len(s.rows[0]))
		for i := range gap {
			gap[i] = "..."
		}
		if err := table.Append(gap); err != nil {
			return err
		}
		if err := appendRows(table, body[len(body)-n:]); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "number of rows: %d\nnumber of columns: %d\n", len(s.rows), s.Width())
	if err != nil {
		return err
	}
	if used := s.UsedRange(); used != "" {
		_, err = fmt.Fprintf(w, "used range: %s\ndensity: %.2f\n", used, parser.Density(s.rows))
	}
	return err
}

// PrettyPrint writes the whole grid as a table.
func (s *Sheet) PrettyPrint(w io.Writer) error {
	if len(s.rows) == 0 {
		return NewSheetError("pretty_print", "", -1, ErrEmptySheet)
	}
	table := newTable(w, s.rows[0])
	if err := appendRows(table, s.rows[1:]); err != nil {
		return err
	}
	return table.Render()
}

// PrintRows writes detached rows, such as a page or a filter result,
// under the sheet's header.
func (s *Sheet) PrintRows(w io.Writer, rows [][]models.Cell) error {
	table := newTable(w, s.Header())
	if err := appendRows(table, rows); err != nil {
		return err
	}
	return table.Render()
}

// UsedRange returns the A1-style bounding box of non-null cells, or ""
// when the sheet holds none.
func (s *Sheet) UsedRange() string {
	area, ok := parser.DataBounds(s.rows)
	if !ok {
		return ""
	}
	ref, err := parser.FormatRange(area)
	if err != nil {
		return ""
	}
	return ref
}

// Region returns copies of the cells inside an A1-style range such as
// "B2:C4". Row 1 is the header. Cells past the end of a row are Null.
func (s *Sheet) Region(ref string) ([][]models.Cell, error) {
	area, err := parser.ParseRange(ref)
	if err != nil {
		return nil, NewSheetError("region", "", -1, fmt.Errorf("%w: %v", ErrInvalidRange, err))
	}
	if area.R2 > len(s.rows) {
		return nil, NewSheetError("region", "", area.R2-1,
			fmt.Errorf("%w: %s ends past row %d", ErrRowOutOfRange, ref, len(s.rows)))
	}

	res := make([][]models.Cell, 0, area.R2-area.R1+1)
	for r := area.R1 - 1; r < area.R2; r++ {
		row := s.rows[r]
		out := make([]models.Cell, area.C2-area.C1+1)
		for c := area.C1 - 1; c < area.C2 && c < len(row); c++ {
			out[c-area.C1+1] = row[c]
		}
		res = append(res, out)
	}
	return res, nil
}

func newTable(w io.Writer, header []models.Cell) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	names := make([]any, len(header))
	for i, cell := range header {
		names[i] = dumpText(cell)
	}
	table.Header(names...)
	return table
}

func appendRows(table *tablewriter.Table, rows [][]models.Cell) error {
	for _, row := range rows {
		line := make([]string, len(row))
		for i, cell := range row {
			line[i] = dumpText(cell)
		}
		if err := table.Append(line); err != nil {
			return err
		}
	}
	return nil
}

func dumpText(cell models.Cell) string {
	if cell.IsNull() {
		return nullText
	}
	return cell.String()
}
