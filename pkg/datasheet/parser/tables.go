package parser

import (
	"fmt"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
	"github.com/xuri/excelize/v2"
)

// DataBounds finds the bounding box of non-null cells.
// The returned range is 1-based; ok is false when every cell is null.
func DataBounds(rows [][]models.Cell) (area models.CellRange, ok bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.CellRange{}, false
	}
	return models.CellRange{
		R1: minRow + 1,
		C1: minCol + 1,
		R2: maxRow + 1,
		C2: maxCol + 1,
	}, true
}

// FormatRange converts a range to Excel notation such as "A1:D10".
func FormatRange(area models.CellRange) (string, error) {
	startCell, err := excelize.CoordinatesToCellName(area.C1, area.R1)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(area.C2, area.R2)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}

// findDataBounds finds the 0-based bounding box of non-null cells.
func findDataBounds(rows [][]models.Cell) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell.IsNull() {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonNullCells counts non-null cells within 0-based bounds.
func countNonNullCells(rows [][]models.Cell, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if !row[colIdx].IsNull() {
				count++
			}
		}
	}
	return count
}

// Density returns the share of non-null cells inside the data bounds.
func Density(rows [][]models.Cell) float64 {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return 0
	}
	total := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	return float64(countNonNullCells(rows, minRow, maxRow, minCol, maxCol)) / float64(total)
}
