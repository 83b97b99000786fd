// Package casebook reads Elgol test cases written as Markdown.
//
// Every case starts at a heading of the form "Test: <name>" and holds one
// input fence plus one or more assertion fences:
//
//	## Test: multiplication binds tighter
//
//	```elgol
//	inicio . Resultado = 2 + 3 x 4 . fim .
//	```
//
//	```ast
//	(program (main_block (block (assign "Resultado" (+ (integer_literal 2) (x (integer_literal 3) (integer_literal 4)))))))
//	```
//
// Fences without a language are free prose and are ignored.
package casebook

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const inputFence = "elgol"

type AssertionType string

const (
	// AssertionTypeAST compares the s-expression of the parsed program.
	// The fence content "none" asserts that no program is produced.
	AssertionTypeAST AssertionType = "ast"
	// AssertionTypeTokens lists one "KIND value" line per token.
	AssertionTypeTokens AssertionType = "tokens"
	// AssertionTypeErrors lists one "category line:column" line per
	// diagnostic, in report order.
	AssertionTypeErrors AssertionType = "errors"
)

type Assertion struct {
	Type    AssertionType
	Content string
	Line    int
}

type TestCase struct {
	Name       string
	Input      string
	Line       int
	Assertions []Assertion
}

// ExtractTestCases parses a Markdown document and returns its test cases in
// document order.
func ExtractTestCases(markdownContent string) ([]TestCase, error) {
	md := goldmark.New()
	source := []byte(markdownContent)

	doc := md.Parser().Parse(text.NewReader(source))

	var testCases []TestCase
	var current *TestCase

	flush := func() error {
		if current == nil {
			return nil
		}
		if err := validateTestCase(current); err != nil {
			return err
		}
		testCases = append(testCases, *current)
		return nil
	}

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			headingText := extractTextFromNode(n, source)
			if !strings.HasPrefix(headingText, "Test: ") {
				return ast.WalkContinue, nil
			}

			if err := flush(); err != nil {
				return ast.WalkStop, err
			}
			current = &TestCase{
				Name:       strings.TrimPrefix(headingText, "Test: "),
				Line:       getLineNumber(n, source),
				Assertions: []Assertion{},
			}

		case *ast.FencedCodeBlock:
			language := string(n.Language(source))
			if language == "" {
				return ast.WalkContinue, nil
			}

			lineNum := getLineNumber(n, source)
			if current == nil {
				return ast.WalkStop, fmt.Errorf("line %d: %s fence found outside of test case", lineNum, language)
			}

			content := strings.TrimRight(extractCodeBlockContent(n, source), "\n")
			switch {
			case language == inputFence:
				if current.Input != "" {
					return ast.WalkStop, fmt.Errorf("line %d: multiple input fences found in test '%s'", lineNum, current.Name)
				}
				current.Input = content
			case isAssertionFence(language):
				current.Assertions = append(current.Assertions, Assertion{
					Type:    AssertionType(language),
					Content: content,
					Line:    lineNum,
				})
			default:
				return ast.WalkStop, fmt.Errorf("line %d: unknown fence language '%s' in test '%s'", lineNum, language, current.Name)
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking markdown AST: %w", err)
	}

	if err := flush(); err != nil {
		return nil, err
	}

	return testCases, nil
}

func extractTextFromNode(node ast.Node, source []byte) string {
	var buf bytes.Buffer

	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := n.(*ast.Text); ok {
				buf.Write(t.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})

	return buf.String()
}

func extractCodeBlockContent(codeBlock *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer

	for i := 0; i < codeBlock.Lines().Len(); i++ {
		line := codeBlock.Lines().At(i)
		buf.Write(line.Value(source))
	}

	return buf.String()
}

func isAssertionFence(language string) bool {
	switch AssertionType(language) {
	case AssertionTypeAST, AssertionTypeTokens, AssertionTypeErrors:
		return true
	}
	return false
}

func validateTestCase(testCase *TestCase) error {
	if testCase.Input == "" {
		return fmt.Errorf("test '%s' has no input fence", testCase.Name)
	}
	if len(testCase.Assertions) == 0 {
		return fmt.Errorf("test '%s' has no assertion fences", testCase.Name)
	}
	return nil
}

// getLineNumber returns the 1-based line of the node's first segment.
func getLineNumber(node ast.Node, source []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}

	startPos := node.Lines().At(0).Start
	return bytes.Count(source[:min(startPos, len(source))], []byte("\n")) + 1
}
