package models

// SheetData is the serializable snapshot of a sheet.
type SheetData struct {
	// Name is the source name (file base name or worksheet name).
	Name string `json:"name,omitempty"`
	// Columns contains the header names in order.
	Columns []string `json:"columns"`
	// Rows contains the body rows.
	Rows [][]Cell `json:"rows"`
	// UsedRange is the A1-style bounding box of non-null cells.
	UsedRange string `json:"used_range,omitempty"`
}

// ColumnStats holds the summary of a single column.
// Aggregates that do not apply to the column's cells are left nil.
type ColumnStats struct {
	// Column is the column name.
	Column string `json:"column"`
	// Rows is the number of body rows summarized.
	Rows int `json:"rows"`
	// Mean is the arithmetic mean of a numeric column.
	Mean *float64 `json:"mean,omitempty"`
	// Variance is the population variance of a numeric column.
	Variance *float64 `json:"variance,omitempty"`
	// Min is the smallest value of a numeric column.
	Min *Cell `json:"min,omitempty"`
	// Max is the largest value of a numeric column.
	Max *Cell `json:"max,omitempty"`
	// Median is the cell at the middle row in load order.
	Median *Cell `json:"median,omitempty"`
	// Mode lists the most frequent values.
	Mode []Frequency `json:"mode,omitempty"`
}
