package pdfdoc

import (
	"fmt"
	"strings"
)

// Helvetica and Courier are standard Type 1 fonts every reader ships with.
const (
	Helvetica = "Helvetica"
	Courier   = "Courier"
)

// Fixed object numbers. Pages after the first are appended after the font as
// (page, content) pairs starting at firstExtraObj.
const (
	catalogObj    = 1
	pagesObj      = 2
	firstPageObj  = 3
	fontObj       = 5
	firstExtraObj = 6
)

// Objects returns the five indirect objects of a single-page document whose
// page draws content in Helvetica.
func Objects(content string) []string {
	return PageObjects([]string{content}, Helvetica)
}

// PageObjects returns the serialized indirect objects for a document with one
// page per entry in contents, all sharing one Type 1 font named baseFont.
// With one page the result is catalog, page tree, page, content stream and
// font, numbered 1 to 5.
func PageObjects(contents []string, baseFont string) []string {
	if len(contents) == 0 {
		contents = []string{ContentStream(nil)}
	}

	pageRefs := make([]string, len(contents))
	for i := range contents {
		pageRefs[i] = fmt.Sprintf("%d 0 R", pageNumber(i))
	}

	objects := make([]string, 0, 3+2*len(contents))
	objects = append(objects,
		indirect(catalogObj, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesObj)),
		indirect(pagesObj, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
			strings.Join(pageRefs, " "), len(contents))),
		page(pageNumber(0), contentNumber(0)),
		stream(contentNumber(0), contents[0]),
		indirect(fontObj, fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /%s >>", baseFont)),
	)
	for i := 1; i < len(contents); i++ {
		objects = append(objects,
			page(pageNumber(i), contentNumber(i)),
			stream(contentNumber(i), contents[i]),
		)
	}
	return objects
}

func pageNumber(i int) int {
	if i == 0 {
		return firstPageObj
	}
	return firstExtraObj + 2*(i-1)
}

func contentNumber(i int) int {
	return pageNumber(i) + 1
}

func indirect(num int, body string) string {
	return fmt.Sprintf("%d 0 obj\n%s\nendobj\n", num, body)
}

func page(num, content int) string {
	return indirect(num, fmt.Sprintf(
		"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %d %d] /Contents %d 0 R /Resources << /Font << /%s %d 0 R >> >> >>",
		pagesObj, PageWidth, PageHeight, content, fontResource, fontObj))
}

// stream wraps content in a stream object. /Length is the byte length of
// content, which is exact only once content is already single-byte encoded.
func stream(num int, content string) string {
	return indirect(num, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
}
