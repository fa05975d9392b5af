package converter

// Shared test fixtures for the converter package.

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Cortexa-LLC/mcp/src/csv2pdf/config"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// testConfig returns the default configuration, independent of the
// environment the tests run in.
func testConfig() *config.Config {
	return config.Default()
}

// writeTempFile writes content to a temp file with the given name and returns
// its path. The file is cleaned up automatically when the test ends.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// readFile returns the contents of path as a string.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// makeXLSX builds an .xlsx file with one sheet per entry in sheets, in order,
// and returns its path.
func makeXLSX(t *testing.T, sheets []string, rows map[string][][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			// Rename the default sheet first so SetCellValue writes to the right name.
			if sheet != "Sheet1" {
				f.SetSheetName("Sheet1", sheet)
			}
		} else {
			_, err := f.NewSheet(sheet)
			require.NoError(t, err)
		}
		for r, row := range rows[sheet] {
			for c, val := range row {
				cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
				f.SetCellValue(sheet, cell, val)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}
