package models

// Frequency is one entry of a column frequency table.
type Frequency struct {
	// Value is the distinct cell value.
	Value Cell `json:"value"`
	// Count is the number of body rows holding Value.
	Count int `json:"count"`
}
