package main

import (
	"os"

	"github.com/kievzenit/elgol/internal/compiler_errors"
	"github.com/kievzenit/elgol/internal/config"
	"github.com/kievzenit/elgol/internal/lexer"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a file",
	Long: `Print every token of an Elgol file with its line and column.
Comments and whitespace produce no tokens. Use "-" to read standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}

	eh := compiler_errors.NewErrorHandler()
	tokens := lexer.NewLexer(eh).Tokenize(src)

	out := cmd.OutOrStdout()
	if cfg.Output == config.OutputJSON {
		if err := printTokensJSON(out, tokens); err != nil {
			return err
		}
	} else {
		printTokens(out, tokens)
	}

	if eh.HasErrors() {
		printDiagnostics(os.Stderr, src, eh.Errors())
		return errDiagnostics
	}

	return nil
}
