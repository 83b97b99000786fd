package parser

import (
	"testing"

	"github.com/kievzenit/elgol/internal/ast"
	"github.com/kievzenit/elgol/internal/compiler_errors"
	"github.com/kievzenit/elgol/internal/lexer"
	"github.com/nalgeon/be"
)

func parseMain(t *testing.T, body string) string {
	t.Helper()

	program, errs := ParseSource([]byte("inicio . " + body + " fim ."))
	be.Equal(t, len(errs), 0)
	be.True(t, program != nil)
	return ast.ToSExpr(program)
}

func mainOf(stmts string) string {
	return "(program (main_block (block " + stmts + ")))"
}

func TestParseEmptyProgram(t *testing.T) {
	program, errs := ParseSource([]byte("# nada aqui\n"))
	be.Equal(t, len(errs), 0)
	be.Equal(t, ast.ToSExpr(program), "(program)")
}

func TestParseEmptyMainBlock(t *testing.T) {
	program, errs := ParseSource([]byte("inicio . fim ."))
	be.Equal(t, len(errs), 0)
	be.Equal(t, ast.ToSExpr(program), "(program (main_block (block)))")
}

func TestParseOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			"Resultado = 2 + 3 x 4 .",
			`(assign "Resultado" (+ (integer_literal 2) (x (integer_literal 3) (integer_literal 4))))`,
		},
		{
			"Abc = Bcd + Cde x Def .",
			`(assign "Abc" (+ (identifier_lookup "Bcd") (x (identifier_lookup "Cde") (identifier_lookup "Def"))))`,
		},
		{
			"(2 + 3) x 4 .",
			`(x (+ (integer_literal 2) (integer_literal 3)) (integer_literal 4))`,
		},
		{
			"comp Abc + Bcd .",
			`(+ (unary_operator_comp (identifier_lookup "Abc")) (identifier_lookup "Bcd"))`,
		},
		{
			"Abc maior 1 igual Bcd menor 2 .",
			`(igual (maior (identifier_lookup "Abc") (integer_literal 1)) (menor (identifier_lookup "Bcd") (integer_literal 2)))`,
		},
		{
			"1 + 2 maior 3 x 4 .",
			`(maior (+ (integer_literal 1) (integer_literal 2)) (x (integer_literal 3) (integer_literal 4)))`,
		},
		{
			"Abc diferente zero .",
			`(diferente (identifier_lookup "Abc") (integer_literal 0))`,
		},
	}

	for _, test := range tests {
		be.Equal(t, parseMain(t, test.input), mainOf(test.expected))
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 - 2 - 3 .", `(- (- (integer_literal 1) (integer_literal 2)) (integer_literal 3))`},
		{"8 / 4 / 2 .", `(/ (/ (integer_literal 8) (integer_literal 4)) (integer_literal 2))`},
		{"1 + 2 - 3 .", `(- (+ (integer_literal 1) (integer_literal 2)) (integer_literal 3))`},
		{"2 x 3 / 4 .", `(/ (x (integer_literal 2) (integer_literal 3)) (integer_literal 4))`},
		{"1 maior 2 menor 3 .", `(menor (maior (integer_literal 1) (integer_literal 2)) (integer_literal 3))`},
	}

	for _, test := range tests {
		be.Equal(t, parseMain(t, test.input), mainOf(test.expected))
	}
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Abc = Bcd = 3 .", `(assign "Abc" (assign "Bcd" (integer_literal 3)))`},
		{"elgio = 5 .", `(assign "elgio" (integer_literal 5))`},
		{"Abc = elgio .", `(assign "Abc" (identifier_lookup "elgio"))`},
		{"Abc = comp comp Bcd .", `(assign "Abc" (unary_operator_comp (unary_operator_comp (identifier_lookup "Bcd"))))`},
	}

	for _, test := range tests {
		be.Equal(t, parseMain(t, test.input), mainOf(test.expected))
	}
}

func TestParseFunctionCalls(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"_Foo() .", `(function_call "_Foo")`},
		{"_Foo(1) .", `(function_call "_Foo" (integer_literal 1))`},
		{
			"Abc = _Soma(Abc, 2 x Bcd, _Foo()) .",
			`(assign "Abc" (function_call "_Soma" (identifier_lookup "Abc") (x (integer_literal 2) (identifier_lookup "Bcd")) (function_call "_Foo")))`,
		},
	}

	for _, test := range tests {
		be.Equal(t, parseMain(t, test.input), mainOf(test.expected))
	}
}

func TestParseFunctionDefinition(t *testing.T) {
	src := `
inteiro _Soma(inteiro Abc, inteiro Bcd) .
inicio .
    inteiro Total .
    Total = Abc + Bcd .
    elgio = Total .
fim .

inteiro _Nada() .
inicio .
fim .

inicio .
    inteiro Valor .
    Valor = _Soma(1, 2) .
fim .
`
	program, errs := ParseSource([]byte(src))
	be.Equal(t, len(errs), 0)
	be.Equal(t, len(program.Components), 3)

	soma, ok := program.Components[0].(*ast.FunctionDefinition)
	be.True(t, ok)
	be.Equal(t, soma.Name, "_Soma")
	be.Equal(t, soma.Type, "inteiro")
	be.Equal(t, len(soma.Params), 2)
	be.Equal(t, soma.Params[1].Name, "Bcd")
	be.Equal(t, soma.StartToken.Line, 2)

	be.Equal(t, ast.ToSExpr(program.Components[1]), `(function_definition inteiro "_Nada" (params) (block))`)

	_, ok = program.Components[2].(*ast.MainBlock)
	be.True(t, ok)
}

func TestParseEndToEndScenario(t *testing.T) {
	src := "inicio . inteiro X . X = zero . se X igual zero . entao . inteiro Y . senao . inteiro Y . fim ."

	// X is not a valid identifier, so the declaration is left without a name.
	program, errs := ParseSource([]byte(src))
	be.True(t, program == nil)
	be.Equal(t, errs[0].GetCategory(), compiler_errors.Lexical)
	be.Equal(t, errs[0].GetText(), "X")
	be.Equal(t, errs[len(errs)-1].GetCategory(), compiler_errors.Syntactic)

	src = "inicio . inteiro Xis . Xis = zero . se Xis igual zero . entao . inteiro Yps . senao . inteiro Yps . fim ."
	program, errs = ParseSource([]byte(src))
	be.Equal(t, len(errs), 0)

	main, ok := program.Components[0].(*ast.MainBlock)
	be.True(t, ok)
	stmts := main.Body.Stmts
	be.Equal(t, len(stmts), 3)

	be.Equal(t, stmts[0].Kind(), ast.VariableDeclarationKind)
	be.Equal(t, stmts[1].Kind(), ast.AssignKind)

	ifStmt, ok := stmts[2].(*ast.IfStatement)
	be.True(t, ok)
	be.True(t, ifStmt.HasElse())
	be.Equal(t, ast.ToSExpr(ifStmt.Condition), `(igual (identifier_lookup "Xis") (integer_literal 0))`)
	be.Equal(t, ast.ToSExpr(ifStmt.Then), `(block (variable_declaration inteiro "Yps"))`)
	be.Equal(t, ast.ToSExpr(ifStmt.Else), `(block (variable_declaration inteiro "Yps"))`)
}

func TestParseIfAndWhile(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			"se Abc maior 1 . entao . inicio . Abc = 1 . fim .",
			`(if_statement (maior (identifier_lookup "Abc") (integer_literal 1)) (block (assign "Abc" (integer_literal 1))) none)`,
		},
		{
			"se Abc . entao . inicio . fim . senao . inicio . Abc = 2 . fim .",
			`(if_statement (identifier_lookup "Abc") (block) (block (assign "Abc" (integer_literal 2))))`,
		},
		{
			"enquanto Abc menor 10 . inicio . Abc = Abc + 1 . fim .",
			`(while_statement (menor (identifier_lookup "Abc") (integer_literal 10)) (block (assign "Abc" (+ (identifier_lookup "Abc") (integer_literal 1)))))`,
		},
		{
			"se Abc . entao . se Bcd . entao . Abc = 1 . senao . Abc = 2 .",
			`(if_statement (identifier_lookup "Abc") (block (if_statement (identifier_lookup "Bcd") (block (assign "Abc" (integer_literal 1))) (block (assign "Abc" (integer_literal 2))))) none)`,
		},
	}

	for _, test := range tests {
		be.Equal(t, parseMain(t, test.input), mainOf(test.expected))
	}
}

func TestSyntaxErrorStopsParse(t *testing.T) {
	program, errs := ParseSource([]byte("inicio . Abc = . Bcd = . fim ."))
	be.True(t, program == nil)
	be.Equal(t, len(errs), 1)

	err, ok := errs[0].(*UnexpectedError)
	be.True(t, ok)
	be.Equal(t, err.Unexpected.Kind, lexer.DOT)
	be.Equal(t, err.GetLine(), 1)
	be.Equal(t, err.GetColumn(), 16)
	be.Equal(t, err.GetCategory(), compiler_errors.Syntactic)
}

func TestMissingOperandHint(t *testing.T) {
	program, errs := ParseSource([]byte("inicio .\nAbc = 2 + .\nfim ."))
	be.True(t, program == nil)
	be.Equal(t, len(errs), 2)

	hint, ok := errs[1].(*MissingOperandError)
	be.True(t, ok)
	be.Equal(t, hint.Operator.Value, "+")
	be.Equal(t, hint.GetLine(), 2)
	be.Equal(t, hint.GetColumn(), 9)
	be.Equal(t, hint.GetMessage(), "operator '+' is missing its right-hand operand")
}

func TestTrailingCommaInCall(t *testing.T) {
	program, errs := ParseSource([]byte("inicio . _Foo(Abc,) . fim ."))
	be.True(t, program == nil)
	be.Equal(t, len(errs), 1)

	err, ok := errs[0].(*UnexpectedError)
	be.True(t, ok)
	be.Equal(t, err.Unexpected.Kind, lexer.RPAREN)
	be.Equal(t, err.GetColumn(), 19)
}

func TestUnexpectedEndOfInput(t *testing.T) {
	program, errs := ParseSource([]byte("inicio . Abc = 1 ."))
	be.True(t, program == nil)
	be.Equal(t, len(errs), 1)
	be.Equal(t, errs[0].GetMessage(), "unexpected end of input")
	be.True(t, IsIncomplete(errs))

	_, errs = ParseSource([]byte("inicio . Abc = 1 . fim"))
	be.Equal(t, errs[0].GetMessage(), "unexpected end of input, expected: DOT")
	be.True(t, IsIncomplete(errs))

	_, errs = ParseSource([]byte("inicio . Abc = 1 + 2 + . fim ."))
	be.True(t, !IsIncomplete(errs))
}

func TestInvalidComponent(t *testing.T) {
	_, errs := ParseSource([]byte("Abc = 1 ."))
	be.Equal(t, len(errs), 1)
	be.Equal(t, errs[0].GetMessage(), "unexpected IDENTIFIER 'Abc', expected one of: INTEIRO, INICIO")
}

func TestParenthesizedLvalueIsNotAssignable(t *testing.T) {
	program, errs := ParseSource([]byte("inicio . (Abc) = 1 . fim ."))
	be.True(t, program == nil)
	be.Equal(t, errs[0].GetText(), "=")
}

func TestLexicalErrorsDoNotStopParse(t *testing.T) {
	program, errs := ParseSource([]byte("inicio . Abc = 1 $ + 2 . fim ."))
	be.True(t, program != nil)
	be.Equal(t, len(errs), 1)
	be.Equal(t, errs[0].GetCategory(), compiler_errors.Lexical)
	be.Equal(t, ast.ToSExpr(program), mainOf(`(assign "Abc" (+ (integer_literal 1) (integer_literal 2)))`))
}

func TestParserIsReusable(t *testing.T) {
	eh := compiler_errors.NewErrorHandler()
	p := NewParser(eh)

	be.True(t, p.Parse([]byte("inicio . (Abc . fim .")) == nil)
	be.True(t, eh.HasErrors())

	eh.Reset()
	program := p.Parse([]byte("inicio . _Foo(Abc, Bcd) . fim ."))
	be.Equal(t, len(eh.Errors()), 0)
	be.True(t, program != nil)
}

func TestParseTokensFromScanner(t *testing.T) {
	tokens, errs := lexer.Tokenize([]byte("inicio . Abc = 1 . fim ."))
	be.Equal(t, len(errs), 0)

	eh := compiler_errors.NewErrorHandler()
	program := NewParser(eh).ParseTokens(lexer.NewTokenScanner(tokens))
	be.Equal(t, len(eh.Errors()), 0)
	be.Equal(t, ast.ToSExpr(program), mainOf(`(assign "Abc" (integer_literal 1))`))
}
