// Package parser turns delimited text and worksheet rows into typed cells.
package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
	"github.com/xuri/excelize/v2"
)

// ParseToken infers the cell type of an already trimmed token.
// Boolean literals win over everything, integers over floats, and
// anything that is not empty and not numeric stays a string.
func ParseToken(token string) models.Cell {
	switch token {
	case "true":
		return models.NewBool(true)
	case "false":
		return models.NewBool(false)
	}
	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return models.NewInt(i)
	}
	if decimalFloat(token) {
		// Out-of-range literals still parse, as ±Inf.
		f, err := strconv.ParseFloat(token, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return models.NewFloat(f)
		}
	}
	if token == "" {
		return models.Null()
	}
	return models.NewString(token)
}

// decimalFloat rejects the Go-only float syntax ParseFloat would
// otherwise accept: digit separators and hexadecimal mantissas.
func decimalFloat(token string) bool {
	if strings.Contains(token, "_") {
		return false
	}
	digits := strings.TrimLeft(token, "+-")
	return !strings.HasPrefix(digits, "0x") && !strings.HasPrefix(digits, "0X")
}

// SplitLine splits a record on delim and parses every field.
// Fields are trimmed of surrounding whitespace when trim is set.
func SplitLine(line string, delim rune, trim bool) []models.Cell {
	fields := strings.Split(line, string(delim))
	row := make([]models.Cell, len(fields))
	for i, field := range fields {
		if trim {
			field = strings.TrimSpace(field)
		}
		row[i] = ParseToken(field)
	}
	return row
}

// SplitLines splits text into records. A trailing "\r" is stripped from
// every record and a final line terminator does not start a new record.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ExtractRows reads every row of a worksheet as typed cells.
// Cell text is trimmed and inferred exactly like delimited input.
func ExtractRows(f *excelize.File, sheetName string) ([][]models.Cell, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	result := make([][]models.Cell, 0, len(rows))
	for rowIdx, row := range rows {
		cells := make([]models.Cell, len(row))
		for colIdx, cellValue := range row {
			// Boolean cells are rendered as TRUE/FALSE by excelize.
			if cellValue == "TRUE" || cellValue == "FALSE" {
				cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				if typ, err := f.GetCellType(sheetName, cellName); err == nil && typ == excelize.CellTypeBool {
					cells[colIdx] = models.NewBool(cellValue == "TRUE")
					continue
				}
			}
			cells[colIdx] = ParseToken(strings.TrimSpace(cellValue))
		}
		result = append(result, cells)
	}

	return result, nil
}
