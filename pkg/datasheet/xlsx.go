package datasheet

import (
	"fmt"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// defaultWorksheet is the sheet excelize creates in a new workbook.
const defaultWorksheet = "Sheet1"

// LoadXLSX loads one worksheet of an ".xlsx" workbook. An empty
// sheetName selects the first worksheet. Cells go through the same
// trimming, type inference and padding as delimited text.
func LoadXLSX(path, sheetName string, opts Options) (*Sheet, error) {
	if !hasExtension(path, "xlsx") {
		return nil, NewSheetError("load_xlsx", "", -1, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	rows, err := parser.ExtractRows(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheetName, err)
	}

	s := New(opts)
	s.rows = rows
	padded := s.padRows()
	s.log.Debug("worksheet loaded",
		zap.String("worksheet", sheetName),
		zap.Int("rows", s.Len()),
		zap.Int("columns", s.Width()),
		zap.Int("padded_rows", padded),
	)
	return s, nil
}

// ExportXLSX writes the sheet to a new ".xlsx" workbook with one
// worksheet. Cells keep their native types; Null cells stay empty.
func (s *Sheet) ExportXLSX(path, sheetName string) error {
	if !hasExtension(path, "xlsx") {
		return NewSheetError("export_xlsx", "", -1, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path))
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = defaultWorksheet
	}
	if sheetName != defaultWorksheet {
		if err := f.SetSheetName(defaultWorksheet, sheetName); err != nil {
			return fmt.Errorf("failed to name worksheet %q: %w", sheetName, err)
		}
	}

	for i, row := range s.rows {
		values := make([]interface{}, len(row))
		for j, cell := range row {
			values[j] = cell.Value()
		}
		start, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, start, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	s.log.Debug("workbook exported", zap.String("path", path), zap.String("worksheet", sheetName))
	return nil
}
