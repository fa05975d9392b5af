package converter

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// utf8BOM prefixes many spreadsheet CSV exports.
var utf8BOM = []byte("\xef\xbb\xbf")

var newline = []byte{'\n'}

// rowReader reads every row of a tabular file as strings.
type rowReader func(filePath string) ([][]string, error)

// nativeExts maps each accepted input extension to its reader.
var nativeExts = map[string]rowReader{
	".csv":  readCSV,
	".tsv":  readTSV,
	".xlsx": readXLSX,
	".xlsm": readXLSX,
}

// formatConverter reads tabular input files into rows.
type formatConverter struct{}

func newFormatConverter() *formatConverter {
	return &formatConverter{}
}

// CanConvert returns true when the file extension has a reader.
func (c *formatConverter) CanConvert(filePath string) bool {
	_, ok := nativeExts[strings.ToLower(filepath.Ext(filePath))]
	return ok
}

// SupportedFormats returns supported extensions without the leading dot.
func (c *formatConverter) SupportedFormats() []string {
	out := make([]string, 0, len(nativeExts))
	for ext := range nativeExts {
		out = append(out, strings.TrimPrefix(ext, "."))
	}
	return out
}

// ReadRows reads filePath with the reader registered for its extension.
func (c *formatConverter) ReadRows(filePath string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	read, ok := nativeExts[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	return read(filePath)
}

// Lines flattens rows into display lines by joining each row's fields with
// sep. An empty row becomes an empty line.
func Lines(rows [][]string, sep string) []string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, sep)
	}
	return lines
}

// --- delimited text ----------------------------------------------------------

func readCSV(filePath string) ([][]string, error) {
	return readDelimited(filePath, ',')
}

func readTSV(filePath string) ([][]string, error) {
	return readDelimited(filePath, '\t')
}

// readDelimited parses a delimited text file. Rows may differ in field count;
// no schema is enforced. Quoting is lenient: a stray quote inside an unquoted
// field is kept as text. The CSV reader skips blank lines, so each skipped
// line is put back as an empty row to keep the file's line structure.
func readDelimited(filePath string, comma rune) ([][]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var (
		records [][]string
		offset  int64
		lines   int // newlines consumed up to offset
	)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", filepath.Base(filePath), err)
		}
		// Without blank lines, a record starts on the line after the
		// previous record ends.
		start, _ := r.FieldPos(0)
		for range start - (lines + 1) {
			records = append(records, []string{})
		}
		records = append(records, record)

		end := r.InputOffset()
		lines += bytes.Count(data[offset:end], newline)
		offset = end
	}
	for range bytes.Count(data[offset:], newline) {
		records = append(records, []string{})
	}
	return records, nil
}
