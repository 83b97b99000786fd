package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/kievzenit/elgol/internal/compiler_errors"
)

type LexerError struct {
	Message string
	Text    string

	Line   int
	Column int
	Length int
}

func (e *LexerError) GetMessage() string {
	return e.Message
}

func (e *LexerError) GetCategory() compiler_errors.Category {
	return compiler_errors.Lexical
}

func (e *LexerError) GetText() string {
	return e.Text
}

func (e *LexerError) GetLine() int {
	return e.Line
}

func (e *LexerError) GetColumn() int {
	return e.Column
}

func (e *LexerError) GetLength() int {
	return e.Length
}

func newLexerError(message, text string, line, col int) *LexerError {
	return &LexerError{
		Message: message,
		Text:    text,
		Line:    line,
		Column:  col,
		Length:  utf8.RuneCountInString(text),
	}
}

func newInvalidCharacterError(r rune, line, col int) *LexerError {
	return newLexerError(fmt.Sprintf("invalid character: '%c'", r), string(r), line, col)
}

func newUnexpectedCommaError(line, col int) *LexerError {
	return newLexerError("unexpected comma outside parentheses", ",", line, col)
}

func newMalformedFunctionNameError(name string, line, col int) *LexerError {
	return newLexerError(
		fmt.Sprintf("malformed function name: '%s', expected '_' followed by an uppercase letter and at least 2 more letters", name),
		name, line, col)
}

func newInvalidIdentifierError(word string, line, col int) *LexerError {
	return newLexerError(
		fmt.Sprintf("invalid identifier: '%s', expected an uppercase letter followed by at least 2 more letters", word),
		word, line, col)
}

func newLeadingZeroError(number string, line, col int) *LexerError {
	return newLexerError(
		fmt.Sprintf("invalid integer literal: '%s', leading zeros are not allowed, use 'zero' for 0", number),
		number, line, col)
}

func newIntegerRangeError(number string, line, col int) *LexerError {
	return newLexerError(fmt.Sprintf("integer literal out of range: '%s'", number), number, line, col)
}

// Lexer turns Elgol source into tokens one at a time. Malformed input is
// reported to the error handler and skipped; scanning always continues.
type Lexer struct {
	buf []byte
	pos int

	line, col  int
	parenDepth int

	eh compiler_errors.ErrorHandler
}

func NewLexer(eh compiler_errors.ErrorHandler) *Lexer {
	return &Lexer{
		line: 1,
		col:  1,

		eh: eh,
	}
}

// Input starts scanning buf from the beginning. Position and paren depth
// from any previous input are discarded.
func (l *Lexer) Input(buf []byte) {
	l.buf = buf
	l.pos = 0

	l.line = 1
	l.col = 1
	l.parenDepth = 0
}

// Token returns the next token, or an EOF token once the input is exhausted.
func (l *Lexer) Token() Token {
	for l.hasChars() {
		if token, ok := l.scan(); ok {
			return token
		}
	}

	return Token{
		Kind:   EOF,
		Line:   l.line,
		Column: l.col,
	}
}

// Tokenize scans buf to the end. The result does not include EOF.
func (l *Lexer) Tokenize(buf []byte) []Token {
	l.Input(buf)

	tokens := make([]Token, 0)
	for {
		token := l.Token()
		if token.Kind == EOF {
			return tokens
		}

		tokens = append(tokens, token)
	}
}

// Tokenize scans src with a fresh lexer and returns its tokens together
// with every lexical diagnostic.
func Tokenize(src []byte) ([]Token, []compiler_errors.CompilerError) {
	eh := compiler_errors.NewErrorHandler()
	tokens := NewLexer(eh).Tokenize(src)
	return tokens, eh.Errors()
}

// scan consumes at least one character. It returns false when nothing was
// emitted (whitespace, comments, newlines and recovered errors).
func (l *Lexer) scan() (Token, bool) {
	switch {
	case l.isCurrSkippable():
		l.advance()
		return Token{}, false

	case l.isCurrNewline():
		for l.hasChars() && l.isCurrNewline() {
			l.newline()
		}
		return Token{}, false

	case l.read() == '#':
		l.skipComment()
		return Token{}, false

	case l.isCurrOperator():
		return l.processOperator(), true

	case l.read() == '(':
		l.parenDepth++
		return l.single(LPAREN), true

	case l.read() == ')':
		if l.parenDepth > 0 {
			l.parenDepth--
		}
		return l.single(RPAREN), true

	case l.read() == ',':
		if l.parenDepth > 0 {
			return l.single(COMMA), true
		}
		l.eh.AddError(newUnexpectedCommaError(l.line, l.col))
		l.advance()
		return Token{}, false

	case l.read() == '_':
		return l.processFunctionName()

	case l.isCurrLetter():
		return l.processWord()

	case l.isCurrDigit():
		return l.processNumber()
	}

	line, col := l.line, l.col
	r := l.advanceRune()
	l.eh.AddError(newInvalidCharacterError(r, line, col))
	return Token{}, false
}

func (l *Lexer) skipComment() {
	for l.hasChars() && !l.isCurrNewline() {
		l.advanceRune()
	}
}

func (l *Lexer) processOperator() Token {
	switch l.read() {
	case '=':
		return l.single(EQUALS)
	case '+':
		return l.single(PLUS)
	case '-':
		return l.single(MINUS)
	case '/':
		return l.single(DIVIDE)
	case '.':
		return l.single(DOT)
	}

	panic("unreachable")
}

func (l *Lexer) processFunctionName() (Token, bool) {
	line, col := l.line, l.col
	start := l.pos

	l.advance()
	letters := l.pos
	for l.hasChars() && l.isCurrLetter() {
		l.advance()
	}
	name := string(l.buf[start:l.pos])

	if !isValidFunctionName(l.buf[letters:l.pos]) {
		l.eh.AddError(newMalformedFunctionNameError(name, line, col))
		return Token{}, false
	}

	return Token{
		Kind:   FUNCTION_NAME,
		Value:  name,
		Line:   line,
		Column: col,
		Length: len(name),
	}, true
}

// processWord consumes the whole run of letters so a malformed word is
// reported once instead of character by character.
func (l *Lexer) processWord() (Token, bool) {
	line, col := l.line, l.col
	start := l.pos

	for l.hasChars() && l.isCurrLetter() {
		l.advance()
	}
	word := string(l.buf[start:l.pos])

	kind, ok := classifyWord(word)
	if !ok {
		l.eh.AddError(newInvalidIdentifierError(word, line, col))
		return Token{}, false
	}

	return Token{
		Kind:   kind,
		Value:  word,
		Line:   line,
		Column: col,
		Length: len(word),
	}, true
}

// classifyWord maps a run of letters to its token kind. The lone letter x
// is the multiplication operator; every identifier has at least 3 letters.
func classifyWord(word string) (TokenKind, bool) {
	if word == "x" {
		return TIMES, true
	}

	if kind, ok := LookupReserved(word); ok {
		return kind, true
	}

	if isValidIdentifier(word) {
		return IDENTIFIER, true
	}

	return EOF, false
}

func (l *Lexer) processNumber() (Token, bool) {
	line, col := l.line, l.col
	start := l.pos

	for l.hasChars() && l.isCurrDigit() {
		l.advance()
	}
	number := string(l.buf[start:l.pos])

	if number[0] == '0' {
		l.eh.AddError(newLeadingZeroError(number, line, col))
		return Token{}, false
	}

	value, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		l.eh.AddError(newIntegerRangeError(number, line, col))
		return Token{}, false
	}

	return Token{
		Kind:     INTEGER,
		Value:    number,
		IntValue: value,
		Line:     line,
		Column:   col,
		Length:   len(number),
	}, true
}

func (l *Lexer) single(kind TokenKind) Token {
	token := Token{
		Kind:   kind,
		Value:  string(l.read()),
		Line:   l.line,
		Column: l.col,
		Length: 1,
	}
	l.advance()

	return token
}

func isValidFunctionName(letters []byte) bool {
	return len(letters) >= 3 && isUpper(letters[0])
}

func isValidIdentifier(word string) bool {
	if len(word) < 3 || !isUpper(word[0]) {
		return false
	}

	for i := 0; i < len(word); i++ {
		if !isLetter(word[i]) {
			return false
		}
	}

	return true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || isUpper(c)
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func (l *Lexer) isCurrLetter() bool {
	return isLetter(l.read())
}

func (l *Lexer) isCurrDigit() bool {
	return l.read() >= '0' && l.read() <= '9'
}

func (l *Lexer) isCurrOperator() bool {
	switch l.read() {
	case '=', '+', '-', '/', '.':
		return true
	}
	return false
}

func (l *Lexer) isCurrNewline() bool {
	return l.read() == '\n'
}

func (l *Lexer) isCurrSkippable() bool {
	switch l.read() {
	case ' ', '\t', '\r':
		return true
	}

	return false
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.buf)
}

func (l *Lexer) read() byte { return l.buf[l.pos] }

func (l *Lexer) advance() {
	l.pos++
	l.col++
}

func (l *Lexer) advanceRune() rune {
	r, size := utf8.DecodeRune(l.buf[l.pos:])
	l.pos += size
	l.col++

	return r
}

func (l *Lexer) newline() {
	l.pos++
	l.line++
	l.col = 1
}
