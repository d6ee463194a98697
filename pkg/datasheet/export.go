package datasheet

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Export writes the sheet to a ".csv" file, replacing any previous content.
func (s *Sheet) Export(path string) (err error) {
	if !hasExtension(path, "csv") {
		return NewSheetError("export", "", -1, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path))
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	n, err := s.WriteTo(f)
	if err != nil {
		return err
	}
	s.log.Debug("sheet exported", zap.String("path", path), zap.Int64("bytes", n))
	return nil
}

// WriteTo writes every row as delimited text. Each cell is followed by
// the delimiter, including the last one, and each row by a newline.
func (s *Sheet) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	delim := s.opts.FieldDelimiter()

	var n int64
	for _, row := range s.rows {
		for _, cell := range row {
			m, err := bw.WriteString(cell.String())
			n += int64(m)
			if err != nil {
				return n, err
			}
			m, err = bw.WriteRune(delim)
			n += int64(m)
			if err != nil {
				return n, err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}

	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("failed to flush sheet data: %w", err)
	}
	return n, nil
}
