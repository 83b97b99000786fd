package parser

import (
	"fmt"
	"strings"

	"github.com/kievzenit/elgol/internal/compiler_errors"
	"github.com/kievzenit/elgol/internal/lexer"
)

type position struct {
	Text   string
	Line   int
	Column int
	Length int
}

func positionOf(token *lexer.Token) position {
	return position{
		Text:   token.Value,
		Line:   token.Line,
		Column: token.Column,
		Length: token.Length,
	}
}

func (p position) GetCategory() compiler_errors.Category {
	return compiler_errors.Syntactic
}

func (p position) GetText() string { return p.Text }
func (p position) GetLine() int    { return p.Line }
func (p position) GetColumn() int  { return p.Column }
func (p position) GetLength() int  { return p.Length }

func describe(token *lexer.Token) string {
	if token.Kind == lexer.EOF {
		return "end of input"
	}

	return fmt.Sprintf("%s '%s'", token.Kind, token.Value)
}

type UnexpectedExpectedError struct {
	position

	Unexpected *lexer.Token
	Expected   lexer.TokenKind
}

func (e *UnexpectedExpectedError) GetMessage() string {
	return fmt.Sprintf("unexpected %s, expected: %s", describe(e.Unexpected), e.Expected)
}

type UnexpectedExpectedManyError struct {
	position

	Unexpected *lexer.Token
	Expected   []lexer.TokenKind
}

func (e *UnexpectedExpectedManyError) GetMessage() string {
	expectedKinds := make([]string, len(e.Expected))
	for i, kind := range e.Expected {
		expectedKinds[i] = kind.String()
	}
	return fmt.Sprintf("unexpected %s, expected one of: %s", describe(e.Unexpected), strings.Join(expectedKinds, ", "))
}

type UnexpectedError struct {
	position

	Unexpected *lexer.Token
}

func (e *UnexpectedError) GetMessage() string {
	return fmt.Sprintf("unexpected %s", describe(e.Unexpected))
}

// MissingOperandError accompanies a syntax error that directly follows an
// arithmetic operator.
type MissingOperandError struct {
	position

	Operator *lexer.Token
}

func (e *MissingOperandError) GetMessage() string {
	return fmt.Sprintf("operator '%s' is missing its right-hand operand", e.Operator.Value)
}

// IsIncomplete reports whether parsing stopped because the input ended
// while a construct was still open.
func IsIncomplete(errs []compiler_errors.CompilerError) bool {
	for _, err := range errs {
		var unexpected *lexer.Token
		switch e := err.(type) {
		case *UnexpectedExpectedError:
			unexpected = e.Unexpected
		case *UnexpectedExpectedManyError:
			unexpected = e.Unexpected
		case *UnexpectedError:
			unexpected = e.Unexpected
		default:
			continue
		}

		if unexpected.Kind == lexer.EOF {
			return true
		}
	}

	return false
}
