package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kievzenit/elgol/internal/compiler_errors"
	"github.com/kievzenit/elgol/internal/config"
	"github.com/kievzenit/elgol/internal/lexer"
	"github.com/kievzenit/elgol/internal/parser"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const (
	historyFile = ".elgol_history"
	promptMain  = "elgol> "
	promptCont  = "  ...> "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse programs interactively",
	Long: `Read Elgol programs line by line and print their syntax trees.
Input continues over several lines until the program is complete.

Commands:
  :tokens  toggle printing the token stream
  :source  toggle printing canonical source instead of the tree
  :quit    leave`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

type replSession struct {
	eh     *compiler_errors.CompilerErrorHandler
	lexer  *lexer.Lexer
	parser *parser.Parser

	showTokens bool
	out        io.Writer
}

func runREPL(cmd *cobra.Command, args []string) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	eh := compiler_errors.NewErrorHandler()
	session := &replSession{
		eh:     eh,
		lexer:  lexer.NewLexer(eh),
		parser: parser.NewParser(eh),
		out:    cmd.OutOrStdout(),
	}

	for {
		code, ok := session.readProgram(ln)
		if !ok {
			fmt.Fprintln(session.out)
			break
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		if strings.HasPrefix(trimmed, ":") {
			if session.command(trimmed) {
				break
			}
			continue
		}

		session.eval([]byte(code))
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	} else {
		slog.Debug("could not save history", "error", err)
	}

	return nil
}

// readProgram accumulates lines until they parse without running into the
// end of input.
func (s *replSession) readProgram(ln *liner.State) (string, bool) {
	var buf strings.Builder
	prompt := promptMain

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return buf.String(), buf.Len() > 0
			}
			slog.Error("reading input", "error", err)
			return "", false
		}

		buf.WriteString(line)
		buf.WriteByte('\n')

		if strings.HasPrefix(strings.TrimSpace(buf.String()), ":") {
			return buf.String(), true
		}

		_, diagnostics := parser.ParseSource([]byte(buf.String()))
		if !parser.IsIncomplete(diagnostics) {
			return buf.String(), true
		}
		prompt = promptCont
	}
}

func (s *replSession) command(line string) (exit bool) {
	switch strings.Fields(line)[0] {
	case ":quit", ":q":
		return true
	case ":tokens":
		s.showTokens = !s.showTokens
		fmt.Fprintf(s.out, "tokens: %v\n", s.showTokens)
	case ":source":
		if cfg.Output == config.OutputSource {
			cfg.Output = config.OutputSExpr
		} else {
			cfg.Output = config.OutputSource
		}
		fmt.Fprintf(s.out, "output: %s\n", cfg.Output)
	default:
		fmt.Fprintf(s.out, "unknown command %s\n", line)
	}

	return false
}

// eval reuses one lexer and parser across inputs; each call starts from a
// clean lexer state and an empty diagnostic list.
func (s *replSession) eval(src []byte) {
	s.eh.Reset()

	if s.showTokens {
		printTokens(s.out, s.lexer.Tokenize(src))
		s.eh.Reset()
	}

	program := s.parser.Parse(src)
	if program != nil {
		fmt.Fprint(s.out, renderProgram(program))
	}
	printDiagnostics(s.out, src, s.eh.Errors())
}
