package casebook

import (
	"fmt"
	"strings"

	"github.com/kievzenit/elgol/internal/ast"
	"github.com/kievzenit/elgol/internal/compiler_errors"
	"github.com/kievzenit/elgol/internal/lexer"
	"github.com/kievzenit/elgol/internal/parser"
)

type Failure struct {
	Assertion Assertion
	Expected  string
	Actual    string
}

func (f Failure) String() string {
	return fmt.Sprintf("line %d: %s assertion failed\nexpected:\n%s\nactual:\n%s",
		f.Assertion.Line, f.Assertion.Type, f.Expected, f.Actual)
}

// Run checks every assertion of testCase and returns the ones that failed.
func Run(testCase TestCase) []Failure {
	failures := make([]Failure, 0)

	for _, assertion := range testCase.Assertions {
		expected, actual := evaluate(testCase.Input, assertion)
		if expected != actual {
			failures = append(failures, Failure{
				Assertion: assertion,
				Expected:  expected,
				Actual:    actual,
			})
		}
	}

	return failures
}

func evaluate(input string, assertion Assertion) (expected, actual string) {
	switch assertion.Type {
	case AssertionTypeAST:
		program, _ := parser.ParseSource([]byte(input))
		actual = "none"
		if program != nil {
			actual = ast.ToSExpr(program)
		}
		return NormalizeSExpr(assertion.Content), actual

	case AssertionTypeTokens:
		tokens, _ := lexer.Tokenize([]byte(input))
		lines := make([]string, len(tokens))
		for i, token := range tokens {
			lines[i] = FormatToken(token)
		}
		return normalizeLines(assertion.Content), strings.Join(lines, "\n")

	case AssertionTypeErrors:
		_, diagnostics := parser.ParseSource([]byte(input))
		lines := make([]string, len(diagnostics))
		for i, diagnostic := range diagnostics {
			lines[i] = FormatDiagnostic(diagnostic)
		}
		return normalizeLines(assertion.Content), strings.Join(lines, "\n")
	}

	panic("unreachable")
}

// FormatToken renders a token the way tokens fences spell it.
func FormatToken(token lexer.Token) string {
	return token.Kind.String() + " " + token.Value
}

// FormatDiagnostic renders a diagnostic the way errors fences spell it.
func FormatDiagnostic(err compiler_errors.CompilerError) string {
	return fmt.Sprintf("%s %d:%d", err.GetCategory(), err.GetLine(), err.GetColumn())
}

// NormalizeSExpr collapses whitespace so multi-line expectations compare
// equal to the single-line ToSExpr output.
func NormalizeSExpr(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ReplaceAll(s, "( ", "(")
	return strings.ReplaceAll(s, " )", ")")
}

func normalizeLines(s string) string {
	lines := make([]string, 0)
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
