package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Cortexa-LLC/mcp/src/csv2pdf/config"
	"github.com/Cortexa-LLC/mcp/src/csv2pdf/converter"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

// Server identity constants.
const (
	serverName    = "csv2pdf"
	serverVersion = "0.1.0"
)

// app holds flag values shared by the root command and its subcommands.
type app struct {
	configPath string
	layout     string
	verbose    bool

	conv *converter.Converter
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "csv2pdf CSVFILE [PDFFILE]",
		Short: "Convert a CSV file to a simple PDF report",
		Long: "Convert a CSV, TSV or XLSX file to a PDF report.\n" +
			"PDFFILE defaults to CSVFILE with its extension replaced by .pdf.",
		Args:              cobra.RangeArgs(1, 2),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runConvert,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.layout, "layout", "", "page layout: plain or table (overrides config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newInspectCmd(a), newServeCmd(a))
	return root
}

// setup configures logging and builds the converter once flags are parsed.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	cfg := config.Load()
	if a.configPath != "" {
		var err error
		if cfg, err = config.LoadFile(a.configPath); err != nil {
			return err
		}
	}
	if a.layout != "" {
		cfg.Layout = a.layout
	}
	a.conv = converter.NewConverter(cfg)
	slog.Debug("configuration loaded", "layout", cfg.Layout, "maxFileBytes", cfg.MaxFileSizeBytes)
	return nil
}

func (a *app) runConvert(cmd *cobra.Command, args []string) error {
	var pdfPath string
	if len(args) == 2 {
		pdfPath = args[1]
	}
	out, err := a.conv.ConvertFile(cmd.Context(), args[0], pdfPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", out)
	return nil
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect PDFFILE",
		Short: "Print the page count and text of a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.conv.Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.String())
			return nil
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve conversion tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := server.NewMCPServer(serverName, serverVersion)
			registerTools(s, a.conv)
			slog.Info("serving MCP on stdio", "name", serverName, "version", serverVersion)
			if err := server.ServeStdio(s); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
}
