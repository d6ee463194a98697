package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
	"github.com/xuri/excelize/v2"
)

// ErrBadRange is returned when a range reference cannot be parsed.
var ErrBadRange = errors.New("malformed range reference")

// ParseRange parses a reference like "$A$1:$D$10" or "B2:C4".
// A single cell such as "C3" yields a one-cell range.
func ParseRange(ref string) (models.CellRange, error) {
	// Remove $ signs
	rangeStr := strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	if rangeStr == "" {
		return models.CellRange{}, fmt.Errorf("%w: empty", ErrBadRange)
	}

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.CellRange{}, fmt.Errorf("%w: %q", ErrBadRange, ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CellRange{}, fmt.Errorf("%w: %q: %v", ErrBadRange, ref, err)
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.CellRange{}, fmt.Errorf("%w: %q: %v", ErrBadRange, ref, err)
	}

	// Normalize reversed corners such as "D10:A1".
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return models.CellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, nil
}
