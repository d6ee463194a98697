package datasheet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
)

const movies = `id ,title , director, release date, review, overrated
1, old, quintin, 2011, 3.5, true
2, her, quintin, 2013, 4.2, true
3, easy, scorces, 2005, 1.0, false
4, hey, nolan, 1997, 4.7, true
5, who, martin, 2017, 5.0, false`

func loadMovies(t *testing.T) *Sheet {
	t.Helper()
	return LoadString(movies, Options{Logger: zaptest.NewLogger(t)})
}

func row(cells ...interface{}) []models.Cell {
	out := make([]models.Cell, len(cells))
	for i, v := range cells {
		switch v := v.(type) {
		case nil:
			out[i] = models.Null()
		case string:
			out[i] = models.NewString(v)
		case bool:
			out[i] = models.NewBool(v)
		case int:
			out[i] = models.NewInt(int64(v))
		case float64:
			out[i] = models.NewFloat(v)
		default:
			panic("unsupported cell literal")
		}
	}
	return out
}

func assertRows(t *testing.T, want, got [][]models.Cell) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Len(t, got[i], len(want[i]), "row %d", i)
		for j := range want[i] {
			assert.True(t, want[i][j].Equal(got[i][j]), "row %d col %d: want %v (%s), got %v (%s)",
				i, j, want[i][j], want[i][j].Kind(), got[i][j], got[i][j].Kind())
		}
	}
}

func TestLoadString(t *testing.T) {
	sheet := loadMovies(t)

	want := [][]models.Cell{
		row("id", "title", "director", "release date", "review", "overrated"),
		row(1, "old", "quintin", 2011, 3.5, true),
		row(2, "her", "quintin", 2013, 4.2, true),
		row(3, "easy", "scorces", 2005, 1.0, false),
		row(4, "hey", "nolan", 1997, 4.7, true),
		row(5, "who", "martin", 2017, 5.0, false),
	}
	assertRows(t, want, sheet.Rows())
	assert.Equal(t, 6, sheet.Len())
	assert.Equal(t, 5, sheet.BodyLen())
	assert.Equal(t, 6, sheet.Width())
	assert.Equal(t, []string{"id", "title", "director", "release date", "review", "overrated"}, sheet.Columns())
}

func TestLoadStringPadsShortRows(t *testing.T) {
	sheet := LoadString("a,b,c\n1\n1,2,3,4\n\n", DefaultOptions())

	want := [][]models.Cell{
		row("a", "b", "c"),
		row(1, nil, nil),
		row(1, 2, 3, 4),
		row(nil, nil, nil),
	}
	assertRows(t, want, sheet.Rows())
}

func TestLoadStringRectangular(t *testing.T) {
	sheet := LoadString("a,b,c\n1\n1,2\n\n1,2,3\r\n", DefaultOptions())
	for i, r := range sheet.Rows() {
		assert.Len(t, r, sheet.Width(), "row %d", i)
	}
}

func TestLoadStringOptions(t *testing.T) {
	noTrim := false
	sheet := LoadString("a;b\n 1;2", Options{Delimiter: ';', TrimFields: &noTrim})

	assertRows(t, [][]models.Cell{row("a", "b"), row(" 1", 2)}, sheet.Rows())
}

func TestLoadStringEmpty(t *testing.T) {
	sheet := LoadString("", DefaultOptions())
	assert.Equal(t, 0, sheet.Len())
	assert.Nil(t, sheet.Header())

	_, err := sheet.Mean("review")
	assert.ErrorIs(t, err, ErrEmptySheet)
	assert.ErrorIs(t, sheet.InsertRow("1,2"), ErrEmptySheet)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(movies), 0644))

	sheet, err := LoadFile(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 6, sheet.Len())
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "non_existent.csv"), DefaultOptions())
	assert.ErrorIs(t, err, os.ErrNotExist)

	txt := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(txt, []byte(movies), 0644))
	_, err = LoadFile(txt, DefaultOptions())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	var sheetErr *SheetError
	require.True(t, errors.As(err, &sheetErr))
	assert.Equal(t, "load", sheetErr.Op)
}

func TestColumnIndex(t *testing.T) {
	sheet := LoadString("a,b,a,5\n1,2,3,4", DefaultOptions())

	tests := []struct {
		name  string
		index int
		ok    bool
	}{
		{"a", 0, true},
		{"b", 1, true},
		{"A", -1, false},
		{" a", -1, false},
		{"5", -1, false},
	}
	for _, tt := range tests {
		idx, ok := sheet.ColumnIndex(tt.name)
		assert.Equal(t, tt.index, idx, "ColumnIndex(%q)", tt.name)
		assert.Equal(t, tt.ok, ok, "ColumnIndex(%q)", tt.name)
	}
	assert.True(t, sheet.HasColumn("b"))
}

func TestRow(t *testing.T) {
	sheet := loadMovies(t)

	r, err := sheet.Row(3)
	require.NoError(t, err)
	assertRows(t, [][]models.Cell{row(3, "easy", "scorces", 2005, 1.0, false)}, [][]models.Cell{r})

	r[0] = models.NewInt(99)
	assert.True(t, sheet.Rows()[3][0].Equal(models.NewInt(3)), "Row must return a copy")

	_, err = sheet.Row(6)
	assert.ErrorIs(t, err, ErrRowOutOfRange)
}

func TestFromRows(t *testing.T) {
	sheet := FromRows([][]models.Cell{row("a", "b"), row(1)}, DefaultOptions())
	assertRows(t, [][]models.Cell{row("a", "b"), row(1, nil)}, sheet.Rows())
}

func TestSnapshot(t *testing.T) {
	sheet := loadMovies(t)
	data := sheet.Snapshot("movies.csv")

	assert.Equal(t, "movies.csv", data.Name)
	assert.Equal(t, sheet.Columns(), data.Columns)
	assert.Len(t, data.Rows, 5)
	assert.Equal(t, "A1:F6", data.UsedRange)
}
