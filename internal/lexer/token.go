package lexer

import (
	"fmt"
)

type TokenKind int

const (
	EOF TokenKind = iota

	IDENTIFIER
	FUNCTION_NAME
	INTEGER

	EQUALS // =
	PLUS   // +
	MINUS  // -
	TIMES  // x
	DIVIDE // /

	LPAREN // (
	RPAREN // )
	COMMA  // ,
	DOT    // .

	ELGIO
	INTEIRO
	ZERO
	COMP
	ENQUANTO
	SE
	ENTAO
	SENAO
	INICIO
	FIM
	MAIOR
	MENOR
	IGUAL
	DIFERENTE
)

func (tk TokenKind) String() string {
	switch tk {
	case EOF:
		return "EOF"
	case IDENTIFIER:
		return "IDENTIFIER"
	case FUNCTION_NAME:
		return "FUNCTION_NAME"
	case INTEGER:
		return "INTEGER"
	case EQUALS:
		return "EQUALS"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case TIMES:
		return "TIMES"
	case DIVIDE:
		return "DIVIDE"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case COMMA:
		return "COMMA"
	case DOT:
		return "DOT"
	case ELGIO:
		return "ELGIO"
	case INTEIRO:
		return "INTEIRO"
	case ZERO:
		return "ZERO"
	case COMP:
		return "COMP"
	case ENQUANTO:
		return "ENQUANTO"
	case SE:
		return "SE"
	case ENTAO:
		return "ENTAO"
	case SENAO:
		return "SENAO"
	case INICIO:
		return "INICIO"
	case FIM:
		return "FIM"
	case MAIOR:
		return "MAIOR"
	case MENOR:
		return "MENOR"
	case IGUAL:
		return "IGUAL"
	case DIFERENTE:
		return "DIFERENTE"
	default:
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
}

// IsArithmetic reports whether the kind is one of + - x /.
func (tk TokenKind) IsArithmetic() bool {
	switch tk {
	case PLUS, MINUS, TIMES, DIVIDE:
		return true
	}

	return false
}

var reservedWords = map[string]TokenKind{
	"elgio":     ELGIO,
	"inteiro":   INTEIRO,
	"zero":      ZERO,
	"comp":      COMP,
	"enquanto":  ENQUANTO,
	"se":        SE,
	"entao":     ENTAO,
	"senao":     SENAO,
	"inicio":    INICIO,
	"fim":       FIM,
	"maior":     MAIOR,
	"menor":     MENOR,
	"igual":     IGUAL,
	"diferente": DIFERENTE,
}

// LookupReserved is case-sensitive: only the lowercase spellings are keywords.
func LookupReserved(word string) (TokenKind, bool) {
	kind, ok := reservedWords[word]
	return kind, ok
}

type Token struct {
	Kind  TokenKind
	Value string

	// IntValue holds the decoded literal for INTEGER tokens.
	IntValue int64

	Line   int
	Column int
	Length int
}

func (t *Token) hasActualValue() bool {
	switch t.Kind {
	case IDENTIFIER, FUNCTION_NAME, INTEGER:
		return true
	}

	return false
}

func (t *Token) String() string {
	if !t.hasActualValue() {
		return fmt.Sprintf("%s() %d:%d", t.Kind, t.Line, t.Column)
	}

	return fmt.Sprintf("%s(%s) %d:%d", t.Kind, t.Value, t.Line, t.Column)
}
