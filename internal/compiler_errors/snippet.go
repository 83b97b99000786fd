package compiler_errors

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Snippet renders the source line of a diagnostic with one line of context
// on each side and a caret under the reported column:
//
//	   2 | Resultado = 2 + .
//	     |                 ^
//
// Out-of-range lines and columns are clamped.
func Snippet(src []byte, err CompilerError) string {
	lines := strings.Split(string(src), "\n")

	line := min(max(err.GetLine(), 1), len(lines))
	col := max(err.GetColumn(), 1)

	width := len(fmt.Sprint(min(line+1, len(lines))))

	var sb strings.Builder
	writeLine := func(n int) {
		fmt.Fprintf(&sb, "%*d | %s\n", width, n, lines[n-1])
	}

	if line > 1 {
		writeLine(line - 1)
	}
	writeLine(line)

	caretCol := min(col, utf8.RuneCountInString(lines[line-1])+1)
	length := max(err.GetLength(), 1)
	fmt.Fprintf(&sb, "%s | %s%s\n",
		strings.Repeat(" ", width),
		strings.Repeat(" ", caretCol-1),
		strings.Repeat("^", length))

	if line < len(lines) {
		writeLine(line + 1)
	}

	return sb.String()
}
