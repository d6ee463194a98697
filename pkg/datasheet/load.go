package datasheet

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/parser"
	"go.uber.org/zap"
)

// LoadFile loads a sheet from a ".csv" file. The file is read to
// completion and closed before LoadFile returns.
func LoadFile(path string, opts Options) (*Sheet, error) {
	if !hasExtension(path, "csv") {
		return nil, NewSheetError("load", "", -1, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return LoadReader(f, opts)
}

// LoadReader loads a sheet from everything r yields.
func LoadReader(r io.Reader, opts Options) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet data: %w", err)
	}
	return LoadString(string(data), opts), nil
}

// LoadString loads a sheet from an in-memory text blob.
//
// Line 0 becomes the header. Body rows with fewer fields than the
// header are padded with Null; longer rows are kept as they are.
func LoadString(text string, opts Options) *Sheet {
	s := New(opts)
	delim, trim := opts.FieldDelimiter(), opts.ShouldTrimFields()

	lines := parser.SplitLines(text)
	s.rows = make([][]models.Cell, 0, len(lines))
	for _, line := range lines {
		s.rows = append(s.rows, parser.SplitLine(line, delim, trim))
	}

	padded := s.padRows()
	s.log.Debug("sheet loaded",
		zap.Int("rows", s.Len()),
		zap.Int("columns", s.Width()),
		zap.Int("padded_rows", padded),
	)
	return s
}

// hasExtension reports whether the last "."-separated segment of path is ext.
func hasExtension(path, ext string) bool {
	parts := strings.Split(path, ".")
	return parts[len(parts)-1] == ext
}
