package main

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/kievzenit/elgol/internal/ast"
	"github.com/kievzenit/elgol/internal/compiler_errors"
	"github.com/kievzenit/elgol/internal/config"
	"github.com/kievzenit/elgol/internal/lexer"
	"github.com/sanity-io/litter"
)

var (
	lexicalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	syntacticStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	snippetStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	passStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

var litterOptions = litter.Options{
	HidePrivateFields: true,
	FieldExclusions:   regexp.MustCompile(`^StartToken$`),
}

type jsonToken struct {
	Kind   string `json:"kind"`
	Value  string `json:"value"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type jsonDiagnostic struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Text     string `json:"text"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

type jsonParseResult struct {
	AST         *string          `json:"ast"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

func style(s lipgloss.Style, text string) string {
	if !cfg.Color {
		return text
	}
	return s.Render(text)
}

func printDiagnostics(w io.Writer, src []byte, diagnostics []compiler_errors.CompilerError) {
	for _, diagnostic := range diagnostics {
		s := syntacticStyle
		if diagnostic.GetCategory() == compiler_errors.Lexical {
			s = lexicalStyle
		}
		fmt.Fprintln(w, style(s, compiler_errors.Format(diagnostic)))

		if cfg.Snippets {
			fmt.Fprint(w, style(snippetStyle, compiler_errors.Snippet(src, diagnostic)))
		}
	}
}

func toJSONDiagnostics(diagnostics []compiler_errors.CompilerError) []jsonDiagnostic {
	out := make([]jsonDiagnostic, len(diagnostics))
	for i, diagnostic := range diagnostics {
		out[i] = jsonDiagnostic{
			Category: diagnostic.GetCategory().String(),
			Message:  diagnostic.GetMessage(),
			Text:     diagnostic.GetText(),
			Line:     diagnostic.GetLine(),
			Column:   diagnostic.GetColumn(),
		}
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTokens(w io.Writer, tokens []lexer.Token) {
	for _, token := range tokens {
		fmt.Fprintln(w, token.String())
	}
}

func printTokensJSON(w io.Writer, tokens []lexer.Token) error {
	out := make([]jsonToken, len(tokens))
	for i, token := range tokens {
		out[i] = jsonToken{
			Kind:   token.Kind.String(),
			Value:  token.Value,
			Line:   token.Line,
			Column: token.Column,
		}
	}
	return writeJSON(w, out)
}

func renderProgram(program *ast.Program) string {
	switch cfg.Output {
	case config.OutputLitter:
		return litterOptions.Sdump(program) + "\n"
	case config.OutputSource:
		return ast.Format(program)
	default:
		return ast.ToSExpr(program) + "\n"
	}
}
