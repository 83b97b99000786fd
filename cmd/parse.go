package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kievzenit/elgol/internal/ast"
	"github.com/kievzenit/elgol/internal/compiler_errors"
	"github.com/kievzenit/elgol/internal/config"
	"github.com/kievzenit/elgol/internal/lexer"
	"github.com/kievzenit/elgol/internal/parser"
	"github.com/spf13/cobra"
)

var showTokens bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Print the syntax tree of a file",
	Long: `Parse an Elgol file and print its syntax tree.

Parsing stops at the first syntax error; lexical errors are reported but do
not stop it. Use "-" to read standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVarP(&showTokens, "tokens", "t", false, "print the token stream before the tree")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	eh := compiler_errors.NewErrorHandler()
	p := parser.NewParser(eh)

	var program *ast.Program
	if showTokens {
		tokens := lexer.NewLexer(eh).Tokenize(src)
		printTokens(out, tokens)
		fmt.Fprintln(out)
		program = p.ParseTokens(lexer.NewTokenScanner(tokens))
	} else {
		program = p.Parse(src)
	}

	if program != nil {
		slog.Debug("parsed", "file", args[0], "components", len(program.Components), "nodes", ast.CountNodes(program))
	}

	if cfg.Output == config.OutputJSON {
		result := jsonParseResult{Diagnostics: toJSONDiagnostics(eh.Errors())}
		if program != nil {
			sexpr := ast.ToSExpr(program)
			result.AST = &sexpr
		}
		if err := writeJSON(out, result); err != nil {
			return err
		}
	} else if program != nil {
		fmt.Fprint(out, renderProgram(program))
	}

	if eh.HasErrors() {
		if cfg.Output != config.OutputJSON {
			printDiagnostics(os.Stderr, src, eh.Errors())
		}
		return errDiagnostics
	}

	return nil
}
