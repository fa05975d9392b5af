package converter

// table.go: monospaced table layout. Each column is padded to the display
// width of its widest cell, capped at a maximum width with "..." truncation.
// The first row is the header; it and a rule line repeat at the top of every
// page.

import (
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	minColWidth    = 3 // room for "..." and a visible rule
	tableColumnSep = " | "
	tableRuleSep   = "-+-"
	truncTail      = "..."
)

// minTableLines is header + rule + one data row.
const minTableLines = 3

// layoutTable converts rows into pages of text lines. linesPerPage counts the
// repeated header and rule. Rows with fewer cells than the widest row are
// padded with blanks; rows with no cells at all are dropped. No rows yields no
// pages.
func layoutTable(rows [][]string, maxWidth, linesPerPage int) [][]string {
	rows = slices.DeleteFunc(slices.Clone(rows), func(row []string) bool {
		return len(row) == 0
	})
	if len(rows) == 0 {
		return nil
	}
	if maxWidth < minColWidth {
		maxWidth = minColWidth
	}
	if linesPerPage < minTableLines {
		linesPerPage = minTableLines
	}

	maxCols := 0
	for _, row := range rows {
		maxCols = max(maxCols, len(row))
	}

	widths := make([]int, maxCols)
	for i := range widths {
		widths[i] = minColWidth
	}
	for _, row := range rows {
		for i, raw := range row {
			if w := runewidth.StringWidth(flattenCell(raw)); w > widths[i] {
				widths[i] = min(w, maxWidth)
			}
		}
	}

	format := func(row []string) string {
		cells := make([]string, maxCols)
		for i := range cells {
			var s string
			if i < len(row) {
				s = runewidth.Truncate(flattenCell(row[i]), widths[i], truncTail)
			}
			cells[i] = runewidth.FillRight(s, widths[i])
		}
		return strings.TrimRight(strings.Join(cells, tableColumnSep), " ")
	}

	rule := make([]string, maxCols)
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}

	header := []string{format(rows[0]), strings.Join(rule, tableRuleSep)}
	perPage := linesPerPage - len(header)

	body := rows[1:]
	var pages [][]string
	for {
		n := min(perPage, len(body))
		page := make([]string, 0, len(header)+n)
		page = append(page, header...)
		for _, row := range body[:n] {
			page = append(page, format(row))
		}
		pages = append(pages, page)
		body = body[n:]
		if len(body) == 0 {
			return pages
		}
	}
}

var cellBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// flattenCell folds line breaks inside a quoted cell into spaces so each row
// stays on one line.
func flattenCell(s string) string {
	return cellBreaks.Replace(s)
}
