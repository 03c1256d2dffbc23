package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docsmith-dev/docsmith/internal/extractor"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file.py>",
	Short: "List the documentable units of a Python file",
	Long: `Extract parses a Python file and lists every function, method, and
class definition with its signature, line number, and docstring status,
followed by docstring coverage statistics.

Examples:
  docsmith extract app.py
`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	ext, err := extractor.Extract(source)
	if err != nil {
		if errors.Is(err, extractor.ErrSyntax) {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		return err
	}

	for _, u := range ext.Units {
		doc := " "
		if u.HasDocstring {
			doc = "✓"
		}
		fmt.Printf("%s %-8s %-40s line %d\n", doc, u.Kind, signature(u), u.Line)
	}

	stats := extractor.Coverage(ext.Units)
	fmt.Println()
	fmt.Printf("Units: %d  documented: %d  missing: %d  coverage: %.1f%%\n",
		stats.Total, stats.WithDocstring, stats.WithoutDocstring, stats.Percentage)
	fmt.Printf("Extraction accuracy: %.1f%%\n", ext.Accuracy)
	return nil
}

// signature renders a compact "name(params) -> ret" form for display.
func signature(u extractor.Unit) string {
	if u.Kind == extractor.KindClass {
		return u.QualifiedName
	}
	sig := u.QualifiedName + "("
	for i, p := range u.Params {
		if i > 0 {
			sig += ", "
		}
		sig += p.Name
		if p.Type != "" {
			sig += ": " + p.Type
		}
	}
	sig += ")"
	if u.Returns != "" {
		sig += " -> " + u.Returns
	}
	return sig
}
