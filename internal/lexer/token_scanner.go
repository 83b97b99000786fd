package lexer

// TokenScanner is a pull-based token source. Once exhausted it keeps
// returning an EOF token. *Lexer satisfies it.
type TokenScanner interface {
	Token() Token
}

// SimpleTokenScanner replays an already materialized token slice.
type SimpleTokenScanner struct {
	tokens []Token

	pos int
}

func NewTokenScanner(tokens []Token) *SimpleTokenScanner {
	return &SimpleTokenScanner{
		tokens: tokens,
	}
}

func (s *SimpleTokenScanner) Token() Token {
	if s.pos >= len(s.tokens) {
		return s.eof()
	}

	token := s.tokens[s.pos]
	s.pos++

	return token
}

func (s *SimpleTokenScanner) eof() Token {
	if len(s.tokens) == 0 {
		return Token{Kind: EOF, Line: 1, Column: 1}
	}

	last := s.tokens[len(s.tokens)-1]
	return Token{
		Kind:   EOF,
		Line:   last.Line,
		Column: last.Column + last.Length,
	}
}
