// Package output serializes sheets and column summaries.
package output

import (
	"strconv"

	gojson "github.com/goccy/go-json"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
)

// ToJSON serializes any value, indenting it when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return gojson.MarshalIndent(v, "", "  ")
	}
	return gojson.Marshal(v)
}

// SheetToJSON serializes a sheet snapshot.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return ToJSON(sheet, pretty)
}

// StatsToJSON serializes a column summary.
func StatsToJSON(stats *models.ColumnStats, pretty bool) ([]byte, error) {
	return ToJSON(stats, pretty)
}

// RowsToJSON serializes detached rows as objects keyed by column name.
// Cells beyond the header width are keyed by their 1-based position.
func RowsToJSON(columns []string, rows [][]models.Cell, pretty bool) ([]byte, error) {
	records := make([]map[string]models.Cell, 0, len(rows))
	for _, row := range rows {
		record := make(map[string]models.Cell, len(row))
		for i, cell := range row {
			record[columnKey(columns, i)] = cell
		}
		records = append(records, record)
	}
	return ToJSON(records, pretty)
}

func columnKey(columns []string, i int) string {
	if i < len(columns) && columns[i] != "" {
		return columns[i]
	}
	return "#" + strconv.Itoa(i+1)
}
