package pdfdoc

import (
	"fmt"
	"strings"
)

// Text placement for every page: top-left margin of a US Letter page, 12pt
// font, 14pt leading.
const (
	StartX   = 72
	StartY   = 720
	FontSize = 12
	Leading  = 14

	PageWidth  = 612
	PageHeight = 792

	// fontResource is the resource name every page uses for its one font.
	fontResource = "F1"
)

// LinesPerPage is how many lines fit between StartY and the bottom margin.
const LinesPerPage = (StartY-StartX)/Leading + 1

// ContentStream builds the text operators for one page. Each line is escaped
// and shown, then the cursor moves down one leading. An empty lines slice
// still yields a complete text object that draws nothing.
//
// Lines past the bottom of the page are emitted anyway and clip when viewed.
func ContentStream(lines []string) string {
	ops := make([]string, 0, 5+2*len(lines))
	ops = append(ops,
		"BT",
		fmt.Sprintf("/%s %d Tf", fontResource, FontSize),
		fmt.Sprintf("%d %d Td", StartX, StartY),
		fmt.Sprintf("%d TL", Leading),
	)
	for _, line := range lines {
		ops = append(ops, "("+Escape(line)+") Tj", "T*")
	}
	ops = append(ops, "ET")
	return strings.Join(ops, "\n")
}
