package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docsmith-dev/docsmith/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <file.py>",
	Short: "Check a Python file's docstrings against PEP 257",
	Long: `Validate runs the PEP 257 rule set against a Python file and reports
every finding with its rule code, severity, and line, followed by
per-rule counts and a compliance summary.

Missing-docstring rules (D1xx) are errors; formatting and content rules
are warnings.

Examples:
  docsmith validate app.py
`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	report := validator.Validate(string(source), nil)

	for _, f := range report.Findings {
		target := f.Definition
		if target == "" {
			target = args[0]
		}
		fmt.Printf("%-7s %s line %-4d %s: %s\n", f.Severity, f.Code, f.Line, target, f.Message)
	}

	if groups := validator.GroupByCode(report); len(groups) > 0 {
		fmt.Println()
		for _, g := range groups {
			fmt.Printf("%s ×%d (%s): %s\n", g.Code, g.Count, g.Severity, g.Message)
		}
	}

	fmt.Println()
	printValidateSummary(report.Summary)
	return nil
}

func printValidateSummary(s validator.Summary) {
	fmt.Printf("Compliant units: %d\n", s.Compliant)
	fmt.Printf("Errors: %d  Warnings: %d  Total issues: %d\n", s.Errors, s.Warnings, s.TotalIssues)
}
