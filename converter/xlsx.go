package converter

// xlsx.go: XLSX input via the excelize library. Only the first sheet in
// workbook order is read; other sheets are ignored.

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

func readXLSX(filePath string) ([][]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", filePath, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q in %s: %w", sheets[0], filePath, err)
	}
	return rows, nil
}
