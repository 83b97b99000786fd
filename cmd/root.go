package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kievzenit/elgol/internal/config"
	"github.com/spf13/cobra"
)

// errDiagnostics is returned by commands whose input produced diagnostics.
// The diagnostics themselves have already been printed.
var errDiagnostics = errors.New("input has errors")

var (
	cfgFile    string
	verbose    bool
	outputFlag string
	noColor    bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "elgol",
	Short: "Lexer and parser for the Elgol language",
	Long: `elgol turns Elgol source into tokens or a syntax tree and reports
lexical and syntactic errors.

Commands:
  tokens  - print the token stream of a file
  parse   - print the syntax tree of a file
  fmt     - print a file in canonical form
  cases   - run Markdown test cases
  repl    - parse programs interactively`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./elgol.toml or ./elgol.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format: text, json, sexpr, litter, source")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if outputFlag != "" {
		loaded.Output = config.OutputFormat(outputFlag)
	}
	if noColor {
		loaded.Color = false
	}
	if verbose {
		loaded.LogLevel = "debug"
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	})))
	slog.Debug("configuration loaded", "output", cfg.Output, "color", cfg.Color, "snippets", cfg.Snippets)

	return nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// readSource reads a file, or standard input when path is "-".
func readSource(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	slog.Debug("source loaded", "file", path, "bytes", len(src))
	return src, nil
}
