package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ukaji3/datasheet-go/pkg/datasheet"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/output"
)

const zstdSuffix = ".zst"

// loadSheet picks a loader from the input name. "-" reads stdin.
func loadSheet(path string, opts datasheet.Options) (*datasheet.Sheet, error) {
	switch {
	case path == "-":
		return datasheet.LoadReader(os.Stdin, opts)
	case strings.HasSuffix(path, ".xlsx"):
		return datasheet.LoadXLSX(path, sheetName, opts)
	case strings.HasSuffix(path, ".csv"+zstdSuffix):
		return loadCompressed(path, opts)
	default:
		return datasheet.LoadFile(path, opts)
	}
}

func loadCompressed(path string, opts datasheet.Options) (*datasheet.Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to open zstd stream: %w", err)
	}
	defer dec.Close()

	return datasheet.LoadReader(dec, opts)
}

// saveSheet picks a writer from the output extension.
func saveSheet(sheet *datasheet.Sheet, path string, pretty bool) error {
	switch {
	case strings.HasSuffix(path, ".xlsx"):
		return sheet.ExportXLSX(path, sheetName)
	case strings.HasSuffix(path, ".json"):
		data, err := output.SheetToJSON(sheet.Snapshot(filepath.Base(path)), pretty)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0644)
	case strings.HasSuffix(path, ".csv"+zstdSuffix):
		return saveCompressed(sheet, path)
	default:
		return sheet.Export(path)
	}
}

func saveCompressed(sheet *datasheet.Sheet, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	enc, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("failed to open zstd stream: %w", err)
	}
	if _, err := sheet.WriteTo(enc); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func writeStats(w io.Writer, stats *models.ColumnStats) error {
	lines := []string{
		fmt.Sprintf("column: %s", stats.Column),
		fmt.Sprintf("rows: %d", stats.Rows),
	}
	if stats.Mean != nil {
		lines = append(lines, fmt.Sprintf("mean: %.6g", *stats.Mean))
	}
	if stats.Variance != nil {
		lines = append(lines, fmt.Sprintf("variance: %.6g", *stats.Variance))
	}
	if stats.Min != nil {
		lines = append(lines, fmt.Sprintf("min: %s", stats.Min))
	}
	if stats.Max != nil {
		lines = append(lines, fmt.Sprintf("max: %s", stats.Max))
	}
	if stats.Median != nil {
		lines = append(lines, fmt.Sprintf("median: %s", stats.Median))
	}
	for _, m := range stats.Mode {
		lines = append(lines, fmt.Sprintf("mode: %s (%d)", m.Value, m.Count))
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
