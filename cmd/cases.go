package main

import (
	"fmt"
	"os"

	"github.com/kievzenit/elgol/internal/casebook"
	"github.com/spf13/cobra"
)

var casesCmd = &cobra.Command{
	Use:   "cases <file.md>...",
	Short: "Run Markdown test cases",
	Long: `Run the "Test:" sections of one or more Markdown files. Each section has
an elgol input fence and ast, tokens or errors assertion fences.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCases,
}

func init() {
	rootCmd.AddCommand(casesCmd)
}

func runCases(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	passed, failed := 0, 0

	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		testCases, err := casebook.ExtractTestCases(string(content))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		for _, tc := range testCases {
			failures := casebook.Run(tc)
			if len(failures) == 0 {
				passed++
				fmt.Fprintf(out, "%s %s: %s\n", style(passStyle, "PASS"), path, tc.Name)
				continue
			}

			failed++
			fmt.Fprintf(out, "%s %s: %s\n", style(failStyle, "FAIL"), path, tc.Name)
			for _, failure := range failures {
				fmt.Fprintln(out, failure.String())
			}
		}
	}

	fmt.Fprintf(out, "\n%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		return errDiagnostics
	}

	return nil
}
