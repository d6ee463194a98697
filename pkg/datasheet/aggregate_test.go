package datasheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
)

func TestMean(t *testing.T) {
	sheet := loadMovies(t)

	got, err := sheet.Mean("review")
	require.NoError(t, err)
	assert.InDelta(t, 3.68, got, 1e-9)

	got, err = sheet.Mean("release date")
	require.NoError(t, err)
	assert.InDelta(t, 2008.6, got, 1e-9)
}

func TestMeanTypeMismatch(t *testing.T) {
	sheet := loadMovies(t)

	for _, column := range []string{"title", "overrated"} {
		_, err := sheet.Mean(column)
		assert.ErrorIs(t, err, ErrTypeMismatch, "Mean(%q)", column)
	}
	_, err := sheet.Mean("missing")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestMeanNullCell(t *testing.T) {
	sheet := LoadString("a,b\n1\n2,3", DefaultOptions())

	_, err := sheet.Mean("b")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestMeanHeaderOnly(t *testing.T) {
	sheet := LoadString("a,b", DefaultOptions())

	_, err := sheet.Mean("a")
	assert.ErrorIs(t, err, ErrEmptySheet)
}

func TestVariance(t *testing.T) {
	sheet := loadMovies(t)

	got, err := sheet.Variance("review")
	require.NoError(t, err)
	assert.InDelta(t, 2.0536, got, 1e-9)

	_, err = sheet.Variance("director")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestMedianIsPositional(t *testing.T) {
	sheet := loadMovies(t)

	got, err := sheet.Median("release date")
	require.NoError(t, err)
	assert.True(t, got.Equal(models.NewInt(2005)), "got %v", got)

	// Sorted order would give 2011; the middle row in load order wins.
	got, err = sheet.Median("title")
	require.NoError(t, err)
	assert.True(t, got.Equal(models.NewString("easy")), "got %v", got)
}

func TestMedianEvenBody(t *testing.T) {
	sheet := LoadString("n\n10\n20\n30\n40", DefaultOptions())

	got, err := sheet.Median("n")
	require.NoError(t, err)
	assert.True(t, got.Equal(models.NewInt(20)), "got %v", got)
}

func TestFrequencyTable(t *testing.T) {
	sheet := loadMovies(t)

	got, err := sheet.FrequencyTable("director")
	require.NoError(t, err)
	want := []models.Frequency{
		{Value: models.NewString("quintin"), Count: 2},
		{Value: models.NewString("scorces"), Count: 1},
		{Value: models.NewString("nolan"), Count: 1},
		{Value: models.NewString("martin"), Count: 1},
	}
	assert.Equal(t, want, got)
}

func TestFrequencyTableKindsDistinct(t *testing.T) {
	sheet := LoadString("v\n1\n1.0\n1\ntrue", DefaultOptions())

	got, err := sheet.FrequencyTable("v")
	require.NoError(t, err)
	want := []models.Frequency{
		{Value: models.NewInt(1), Count: 2},
		{Value: models.NewFloat(1), Count: 1},
		{Value: models.NewBool(true), Count: 1},
	}
	assert.Equal(t, want, got)
}

func TestMode(t *testing.T) {
	sheet := LoadString(`id,director
1,scorces
2,nolan
3,scorces
4,martin
5,scorces`, DefaultOptions())

	got, err := sheet.Mode("director")
	require.NoError(t, err)
	assert.Equal(t, []models.Frequency{{Value: models.NewString("scorces"), Count: 3}}, got)
}

func TestModeIncrementalTies(t *testing.T) {
	sheet := LoadString(`director
quintin
quintin
scorces
scorces
scorces
nolan
martin
martin
martin`, DefaultOptions())

	got, err := sheet.Mode("director")
	require.NoError(t, err)
	// quintin is kept because it led the scan when it was met.
	want := []models.Frequency{
		{Value: models.NewString("quintin"), Count: 2},
		{Value: models.NewString("scorces"), Count: 3},
		{Value: models.NewString("martin"), Count: 3},
	}
	assert.Equal(t, want, got)
}

func TestMaxMinInt64(t *testing.T) {
	sheet := loadMovies(t)

	max, err := sheet.MaxInt64("release date")
	require.NoError(t, err)
	assert.Equal(t, int64(2017), max)

	min, err := sheet.MinInt64("release date")
	require.NoError(t, err)
	assert.Equal(t, int64(1997), min)

	_, err = sheet.MaxInt64("review")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = sheet.MinInt64("title")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestMaxMinFloat64(t *testing.T) {
	sheet := loadMovies(t)

	max, err := sheet.MaxFloat64("review")
	require.NoError(t, err)
	assert.Equal(t, 5.0, max)

	min, err := sheet.MinFloat64("review")
	require.NoError(t, err)
	assert.Equal(t, 1.0, min)

	max, err = sheet.MaxFloat64("release date")
	require.NoError(t, err)
	assert.Equal(t, 2017.0, max)

	_, err = sheet.MinFloat64("director")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestMaxSeededAtZero(t *testing.T) {
	sheet := LoadString("i,f\n-3,-1.5\n-7,-2", DefaultOptions())

	maxInt, err := sheet.MaxInt64("i")
	require.NoError(t, err)
	assert.Equal(t, int64(0), maxInt)

	maxFloat, err := sheet.MaxFloat64("f")
	require.NoError(t, err)
	assert.Equal(t, 0.0, maxFloat)

	minInt, err := sheet.MinInt64("i")
	require.NoError(t, err)
	assert.Equal(t, int64(-7), minInt)

	minFloat, err := sheet.MinFloat64("f")
	require.NoError(t, err)
	assert.Equal(t, -2.0, minFloat)
}

func TestStats(t *testing.T) {
	sheet := loadMovies(t)

	stats, err := sheet.Stats("release date")
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Rows)
	require.NotNil(t, stats.Mean)
	assert.InDelta(t, 2008.6, *stats.Mean, 1e-9)
	require.NotNil(t, stats.Max)
	assert.True(t, stats.Max.Equal(models.NewInt(2017)))
	require.NotNil(t, stats.Min)
	assert.True(t, stats.Min.Equal(models.NewInt(1997)))
	assert.True(t, stats.Median.Equal(models.NewInt(2005)))

	stats, err = sheet.Stats("review")
	require.NoError(t, err)
	assert.True(t, stats.Max.Equal(models.NewFloat(5)))
	require.NotNil(t, stats.Variance)
	assert.InDelta(t, 2.0536, *stats.Variance, 1e-9)

	stats, err = sheet.Stats("director")
	require.NoError(t, err)
	assert.Nil(t, stats.Mean)
	assert.Nil(t, stats.Max)
	assert.Len(t, stats.Mode, 1)
}
