package converter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Cortexa-LLC/mcp/src/csv2pdf/config"
	"github.com/Cortexa-LLC/mcp/src/csv2pdf/pdfdoc"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrFileTooLarge      = errors.New("input file too large")
	ErrUnknownLayout     = errors.New("unknown layout")
)

// Layout names accepted in Config.Layout.
const (
	LayoutPlain = "plain"
	LayoutTable = "table"
)

var layouts = []string{LayoutPlain, LayoutTable}

// FileConverter is the surface the CLI and MCP tools depend on.
type FileConverter interface {
	ConvertFile(ctx context.Context, inPath, outPath string) (string, error)
	Inspect(ctx context.Context, pdfPath string) (*Report, error)
	GetConversionInfo(ctx context.Context) string
}

// Converter turns tabular input files into PDF reports.
type Converter struct {
	native *formatConverter
	cfg    *config.Config
}

// NewConverter creates a Converter. A nil cfg loads configuration from the
// environment.
func NewConverter(cfg *config.Config) *Converter {
	if cfg == nil {
		cfg = config.Load()
	}
	return &Converter{
		native: newFormatConverter(),
		cfg:    cfg,
	}
}

// Config returns the active configuration.
func (c *Converter) Config() *config.Config { return c.cfg }

// ConvertFile reads the table at inPath and writes a PDF report to outPath,
// or to DefaultOutputPath(inPath) when outPath is empty. It returns the path
// written.
//
// The output is written in a single call with no temp file; a failure part
// way through can leave a truncated file behind.
func (c *Converter) ConvertFile(ctx context.Context, inPath, outPath string) (string, error) {
	if !isLayout(c.cfg.Layout) {
		return "", fmt.Errorf("%w: %q (expected %s)", ErrUnknownLayout, c.cfg.Layout, strings.Join(layouts, " or "))
	}
	info, err := os.Stat(inPath)
	if err != nil {
		return "", fmt.Errorf("stat input: %w", err)
	}
	if info.Size() > c.cfg.MaxFileSizeBytes {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, info.Size(), c.cfg.MaxFileSizeBytes)
	}
	if !c.native.CanConvert(inPath) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, inPath)
	}
	if outPath == "" {
		outPath = DefaultOutputPath(inPath)
	}

	rows, err := c.native.ReadRows(inPath)
	if err != nil {
		return "", err
	}

	data, err := c.render(rows)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", inPath, err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}

	slog.Debug("converted table to pdf",
		"input", inPath, "output", outPath, "layout", c.cfg.Layout,
		"rows", len(rows), "bytes", len(data))
	return outPath, nil
}

func (c *Converter) render(rows [][]string) ([]byte, error) {
	switch c.cfg.Layout {
	case LayoutTable:
		pages := layoutTable(rows, c.cfg.MaxColumnWidth, pdfdoc.LinesPerPage)
		return pdfdoc.RenderPages(pages, pdfdoc.Courier)
	default:
		return pdfdoc.Render(Lines(rows, c.cfg.Separator))
	}
}

// Inspect reports the page count and text layer of a PDF.
func (c *Converter) Inspect(_ context.Context, pdfPath string) (*Report, error) {
	return inspectPDF(pdfPath)
}

// GetConversionInfo returns a Markdown summary of supported formats and config.
func (c *Converter) GetConversionInfo(_ context.Context) string {
	fmts := c.native.SupportedFormats()
	sort.Strings(fmts)

	return fmt.Sprintf(`# csv2pdf Conversion Info

## Supported Input Formats
%s

## Layouts
- plain: one page, fields joined by the separator, Helvetica 12pt
- table: padded columns with a repeated header, paginated, Courier 12pt

## Configuration
- Layout: %s
- Separator: %q
- Max column width: %d
- Max file size: %d MB
- Text encoding: ISO-8859-1 (other characters are rejected)`,
		"- "+strings.Join(fmts, "\n- "),
		c.cfg.Layout,
		c.cfg.Separator,
		c.cfg.MaxColumnWidth,
		c.cfg.MaxFileSizeMB(),
	)
}

// DefaultOutputPath replaces the extension of inPath with ".pdf". A name
// without an extension gets ".pdf" appended. Leading dots of the base name
// never start an extension, so ".data" and "..data" keep their full name.
func DefaultOutputPath(inPath string) string {
	ext := filepath.Ext(inPath)
	if !strings.Contains(strings.TrimLeft(filepath.Base(inPath), "."), ".") {
		ext = ""
	}
	return strings.TrimSuffix(inPath, ext) + ".pdf"
}

func isLayout(name string) bool {
	for _, l := range layouts {
		if l == name {
			return true
		}
	}
	return false
}
