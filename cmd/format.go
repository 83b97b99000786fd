package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kievzenit/elgol/internal/ast"
	"github.com/kievzenit/elgol/internal/parser"
	"github.com/spf13/cobra"
)

var writeInPlace bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Print a file in canonical form",
	Long: `Reformat an Elgol file: one statement per line, nested blocks indented,
nested operator expressions parenthesized. Comments are not preserved.
Files with any error are left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&writeInPlace, "write", "w", false, "write the result back to the file")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}

	program, diagnostics := parser.ParseSource(src)
	if len(diagnostics) > 0 {
		printDiagnostics(os.Stderr, src, diagnostics)
		return errDiagnostics
	}

	formatted := ast.Format(program)
	if !writeInPlace || args[0] == "-" {
		fmt.Fprint(cmd.OutOrStdout(), formatted)
		return nil
	}

	info, err := os.Stat(args[0])
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[0], []byte(formatted), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", args[0], err)
	}

	slog.Info("formatted", "file", args[0])
	return nil
}
