package compiler_errors

import (
	"errors"
	"fmt"
	"io"
)

type Category int

const (
	Lexical Category = iota
	Syntactic
)

func (c Category) String() string {
	switch c {
	case Lexical:
		return "lexical"
	case Syntactic:
		return "syntactic"
	default:
		panic(fmt.Sprintf("Category.String(): received illegal category: %d", c))
	}
}

type CompilerError interface {
	GetMessage() string
	GetCategory() Category
	GetText() string
	GetLine() int
	GetColumn() int
	GetLength() int
}

type ErrorHandler interface {
	AddError(err CompilerError)
	Errors() []CompilerError
	HasErrors() bool
	Reset()
}

type CompilerErrorHandler struct {
	errors []CompilerError
}

func NewErrorHandler() *CompilerErrorHandler {
	return &CompilerErrorHandler{
		errors: make([]CompilerError, 0),
	}
}

func (eh *CompilerErrorHandler) AddError(err CompilerError) {
	eh.errors = append(eh.errors, err)
}

func (eh *CompilerErrorHandler) Errors() []CompilerError {
	return eh.errors
}

func (eh *CompilerErrorHandler) HasErrors() bool {
	return len(eh.errors) > 0
}

func (eh *CompilerErrorHandler) Reset() {
	eh.errors = eh.errors[:0]
}

// Report writes one line per diagnostic, in the order they were added.
func (eh *CompilerErrorHandler) Report(w io.Writer) {
	for _, err := range eh.errors {
		fmt.Fprintln(w, Format(err))
	}
}

// Err joins every diagnostic into a single error, or returns nil.
func (eh *CompilerErrorHandler) Err() error {
	if len(eh.errors) == 0 {
		return nil
	}

	errs := make([]error, len(eh.errors))
	for i, err := range eh.errors {
		errs[i] = &diagnosticError{err}
	}

	return errors.Join(errs...)
}

func Format(err CompilerError) string {
	return fmt.Sprintf(
		"%s error at %d:%d: %s",
		err.GetCategory(),
		err.GetLine(),
		err.GetColumn(),
		err.GetMessage())
}

type diagnosticError struct {
	CompilerError
}

func (e *diagnosticError) Error() string {
	return Format(e.CompilerError)
}

// AsCompilerError unwraps an error produced by Err back into its diagnostic.
func AsCompilerError(err error) (CompilerError, bool) {
	var de *diagnosticError
	if errors.As(err, &de) {
		return de.CompilerError, true
	}

	return nil, false
}
