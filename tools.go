package main

import (
	"context"

	"github.com/Cortexa-LLC/mcp/src/csv2pdf/converter"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MCP tool parameter key constants, shared between schema definitions and
// argument extraction so a typo in one place is caught by the other.
const (
	argCSVPath = "csv_path"
	argPDFPath = "pdf_path"
)

// registerTools binds MCP tool definitions to their handlers.
// It accepts the FileConverter interface so tests can inject a mock.
func registerTools(s *server.MCPServer, conv converter.FileConverter) {
	// convert_csv_to_pdf: write a PDF report next to, or instead of, a given path
	s.AddTool(
		mcp.NewTool("convert_csv_to_pdf",
			mcp.WithDescription("Convert a CSV, TSV or XLSX file to a PDF report. "+
				"Pass an absolute input path; the output defaults to the same name with a .pdf extension. "+
				"Text must be representable in ISO-8859-1."),
			mcp.WithString(argCSVPath,
				mcp.Required(),
				mcp.Description("Absolute path of the CSV, TSV or XLSX file to convert"),
			),
			mcp.WithString(argPDFPath,
				mcp.Description("Absolute path of the PDF to write (optional)"),
			),
		),
		convertHandler(conv),
	)

	// inspect_pdf: page count and text of a PDF
	s.AddTool(
		mcp.NewTool("inspect_pdf",
			mcp.WithDescription("Return the page count and extracted text of a PDF file."),
			mcp.WithString(argPDFPath,
				mcp.Required(),
				mcp.Description("Absolute path of the PDF to inspect"),
			),
		),
		inspectHandler(conv),
	)

	// get_conversion_info: list formats and configuration
	s.AddTool(
		mcp.NewTool("get_conversion_info",
			mcp.WithDescription("Return supported input formats, layouts, and active configuration."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText(conv.GetConversionInfo(ctx)), nil
		},
	)
}

func convertHandler(conv converter.FileConverter) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input, ok := req.Params.Arguments[argCSVPath].(string)
		if !ok || input == "" {
			return mcp.NewToolResultError(argCSVPath + " is required"), nil
		}
		output, _ := req.Params.Arguments[argPDFPath].(string)

		written, err := conv.ConvertFile(ctx, input, output)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText("Created " + written), nil
	}
}

func inspectHandler(conv converter.FileConverter) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input, ok := req.Params.Arguments[argPDFPath].(string)
		if !ok || input == "" {
			return mcp.NewToolResultError(argPDFPath + " is required"), nil
		}
		report, err := conv.Inspect(ctx, input)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(report.String()), nil
	}
}
