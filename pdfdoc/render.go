package pdfdoc

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// ErrUnencodable is returned when a line holds a character that has no
// single-byte ISO-8859-1 form.
var ErrUnencodable = errors.New("character not representable in ISO-8859-1")

// Render builds a single-page Helvetica document showing lines from the top
// of the page down. Lines that do not fit below the margin are still written
// and clip when viewed.
func Render(lines []string) ([]byte, error) {
	encoded, err := encodeLines(lines, 0)
	if err != nil {
		return nil, err
	}
	return Assemble(Objects(ContentStream(encoded))).Data, nil
}

// RenderPages builds a document with one page per entry in pages, each shown
// with the standard font baseFont. Zero pages yields a single blank page.
func RenderPages(pages [][]string, baseFont string) ([]byte, error) {
	contents := make([]string, len(pages))
	lineNo := 0
	for i, lines := range pages {
		encoded, err := encodeLines(lines, lineNo)
		if err != nil {
			return nil, err
		}
		contents[i] = ContentStream(encoded)
		lineNo += len(lines)
	}
	return Assemble(PageObjects(contents, baseFont)).Data, nil
}

// encodeLines converts UTF-8 lines to ISO-8859-1 so every character is one
// byte and stream lengths and offsets can be counted in bytes. base offsets
// the line numbers reported in errors.
func encodeLines(lines []string, base int) ([]string, error) {
	enc := charmap.ISO8859_1.NewEncoder()
	out := make([]string, len(lines))
	for i, line := range lines {
		s, err := enc.String(line)
		if err != nil {
			return nil, fmt.Errorf("encode line %d %q: %w", base+i+1, line, ErrUnencodable)
		}
		out[i] = s
	}
	return out, nil
}
