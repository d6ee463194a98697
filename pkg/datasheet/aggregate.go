package datasheet

import (
	"fmt"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
)

// numericValues collects the column's body cells as floats, widening
// Int cells. Any other kind fails with ErrTypeMismatch.
func (s *Sheet) numericValues(op, name string) ([]float64, error) {
	col, err := s.resolve(op, name)
	if err != nil {
		return nil, err
	}
	if len(s.rows) < 2 {
		return nil, NewSheetError(op, name, -1, ErrEmptySheet)
	}

	values := make([]float64, 0, len(s.rows)-1)
	for i := 1; i < len(s.rows); i++ {
		cell, err := s.cellAt(op, name, i, col)
		if err != nil {
			return nil, err
		}
		v, ok := cell.AsFloat()
		if !ok {
			return nil, NewSheetError(op, name, i,
				fmt.Errorf("%w: column value should be an int or a float, got %s", ErrTypeMismatch, cell.Kind()))
		}
		values = append(values, v)
	}
	return values, nil
}

// Mean returns the arithmetic mean of a numeric column over all body rows.
func (s *Sheet) Mean(name string) (float64, error) {
	values, err := s.numericValues("mean", name)
	if err != nil {
		return 0, err
	}
	return mean(values), nil
}

// Variance returns the population variance of a numeric column: the
// squared deviations are divided by n, not n-1.
func (s *Sheet) Variance(name string) (float64, error) {
	values, err := s.numericValues("variance", name)
	if err != nil {
		return 0, err
	}

	m := mean(values)
	total := 0.0
	for _, v := range values {
		d := v - m
		total += d * d
	}
	return total / float64(len(values)), nil
}

// Median returns the cell in the middle row of the body in load order.
// The rows are not sorted first, so this is the statistical median only
// when the sheet is already ordered by the column.
func (s *Sheet) Median(name string) (models.Cell, error) {
	col, err := s.resolve("median", name)
	if err != nil {
		return models.Cell{}, err
	}
	if len(s.rows) < 2 {
		return models.Cell{}, NewSheetError("median", name, -1, ErrEmptySheet)
	}
	return s.cellAt("median", name, len(s.rows)/2, col)
}

// FrequencyTable counts every distinct cell of the column in the order
// values are first met.
func (s *Sheet) FrequencyTable(name string) ([]models.Frequency, error) {
	col, err := s.resolve("frequency_table", name)
	if err != nil {
		return nil, err
	}
	return s.frequencyTable("frequency_table", name, col)
}

func (s *Sheet) frequencyTable(op, name string, col int) ([]models.Frequency, error) {
	var table []models.Frequency
	index := make(map[models.Cell]int)
	for i := 1; i < len(s.rows); i++ {
		cell, err := s.cellAt(op, name, i, col)
		if err != nil {
			return nil, err
		}
		if pos, ok := index[cell]; ok {
			table[pos].Count++
			continue
		}
		index[cell] = len(table)
		table = append(table, models.Frequency{Value: cell, Count: 1})
	}
	return table, nil
}

// Mode returns the most frequent values of the column. The frequency
// table is scanned in encounter order and every entry whose count is at
// least the highest count seen so far is kept, so earlier entries with a
// lower count than the final maximum can be part of the result.
func (s *Sheet) Mode(name string) ([]models.Frequency, error) {
	col, err := s.resolve("mode", name)
	if err != nil {
		return nil, err
	}
	table, err := s.frequencyTable("mode", name, col)
	if err != nil {
		return nil, err
	}

	max := 0
	var modes []models.Frequency
	for _, item := range table {
		if max <= item.Count {
			max = item.Count
			modes = append(modes, item)
		}
	}
	return modes, nil
}

// MaxInt64 returns the largest value of an Int column.
// The scan starts from 0, so a column of negative values reports 0.
func (s *Sheet) MaxInt64(name string) (int64, error) {
	values, err := s.intValues("max_int64", name)
	if err != nil {
		return 0, err
	}
	var max int64
	for _, v := range values {
		if max < v {
			max = v
		}
	}
	return max, nil
}

// MinInt64 returns the smallest value of an Int column.
func (s *Sheet) MinInt64(name string) (int64, error) {
	values, err := s.intValues("min_int64", name)
	if err != nil {
		return 0, err
	}
	min := values[0]
	for _, v := range values[1:] {
		if min > v {
			min = v
		}
	}
	return min, nil
}

// MaxFloat64 returns the largest value of a Float or Int column.
// Like MaxInt64 the scan starts from 0.
func (s *Sheet) MaxFloat64(name string) (float64, error) {
	values, err := s.numericValues("max_float64", name)
	if err != nil {
		return 0, err
	}
	max := 0.0
	for _, v := range values {
		if max < v {
			max = v
		}
	}
	return max, nil
}

// MinFloat64 returns the smallest value of a Float or Int column.
func (s *Sheet) MinFloat64(name string) (float64, error) {
	values, err := s.numericValues("min_float64", name)
	if err != nil {
		return 0, err
	}
	min := values[0]
	for _, v := range values[1:] {
		if min > v {
			min = v
		}
	}
	return min, nil
}

// Stats summarizes a column. Numeric aggregates are filled in only when
// every body cell is numeric; min and max are typed after the column.
func (s *Sheet) Stats(name string) (*models.ColumnStats, error) {
	median, err := s.Median(name)
	if err != nil {
		return nil, err
	}
	modes, err := s.Mode(name)
	if err != nil {
		return nil, err
	}
	stats := &models.ColumnStats{
		Column: name,
		Rows:   s.BodyLen(),
		Median: &median,
		Mode:   modes,
	}

	if _, err := s.intValues("stats", name); err == nil {
		max, _ := s.MaxInt64(name)
		min, _ := s.MinInt64(name)
		maxCell, minCell := models.NewInt(max), models.NewInt(min)
		stats.Max, stats.Min = &maxCell, &minCell
	} else if _, err := s.numericValues("stats", name); err == nil {
		max, _ := s.MaxFloat64(name)
		min, _ := s.MinFloat64(name)
		maxCell, minCell := models.NewFloat(max), models.NewFloat(min)
		stats.Max, stats.Min = &maxCell, &minCell
	} else {
		return stats, nil
	}

	m, err := s.Mean(name)
	if err != nil {
		return nil, err
	}
	v, err := s.Variance(name)
	if err != nil {
		return nil, err
	}
	stats.Mean, stats.Variance = &m, &v
	return stats, nil
}

func (s *Sheet) intValues(op, name string) ([]int64, error) {
	col, err := s.resolve(op, name)
	if err != nil {
		return nil, err
	}
	if len(s.rows) < 2 {
		return nil, NewSheetError(op, name, -1, ErrEmptySheet)
	}

	values := make([]int64, 0, len(s.rows)-1)
	for i := 1; i < len(s.rows); i++ {
		cell, err := s.cellAt(op, name, i, col)
		if err != nil {
			return nil, err
		}
		v, ok := cell.AsInt()
		if !ok {
			return nil, NewSheetError(op, name, i,
				fmt.Errorf("%w: %s only works on int values, got %s", ErrTypeMismatch, op, cell.Kind()))
		}
		values = append(values, v)
	}
	return values, nil
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
