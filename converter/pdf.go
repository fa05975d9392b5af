package converter

// pdf.go: reads a PDF back for inspection. The page count comes from pdfcpu;
// the text layer is extracted with github.com/ledongthuc/pdf.

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// Keep pdfcpu from creating a config directory under the user's home.
	model.ConfigPath = "disable"
}

// pdfPageSep separates the text of consecutive non-empty pages.
const pdfPageSep = "\n\n---\n\n"

// Report describes an existing PDF.
type Report struct {
	Path  string
	Pages int
	Text  string
}

// String renders the report as Markdown.
func (r *Report) String() string {
	return fmt.Sprintf("# %s\n\n- Pages: %d\n\n%s\n", r.Path, r.Pages, r.Text)
}

func inspectPDF(filePath string) (*Report, error) {
	pages, err := api.PageCountFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("count pages in %s: %w", filePath, err)
	}
	text, err := extractPDFText(filePath)
	if err != nil {
		return nil, err
	}
	return &Report{Path: filePath, Pages: pages, Text: text}, nil
}

// extractPDFText returns the text layer of every page. Image-only pages
// contribute nothing.
func extractPDFText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", filePath, err)
	}
	defer func() { _ = f.Close() }()

	numPages := r.NumPage()
	fonts := make(map[string]*pdf.Font)
	var parts []string

	for i := 1; i <= numPages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				f2 := p.Font(name)
				fonts[name] = &f2
			}
		}

		text, pageErr := p.GetPlainText(fonts)
		if pageErr != nil {
			return "", fmt.Errorf("read pdf page %d: %w", i, pageErr)
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return strings.Join(parts, pdfPageSep), nil
}
