package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/docsmith-dev/docsmith/internal/config"
	"github.com/docsmith-dev/docsmith/internal/discovery"
	"github.com/docsmith-dev/docsmith/internal/extractor"
	"github.com/docsmith-dev/docsmith/internal/generator"
	"github.com/docsmith-dev/docsmith/internal/llm"
	"github.com/docsmith-dev/docsmith/internal/validator"
)

var (
	styleFlag  string
	modelFlag  string
	apiKeyFlag string
	outputFlag string
	quietFlag  bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <file.py | directory>",
	Short: "Generate missing docstrings for Python source",
	Long: `Generate extracts the documentable units of the target, asks the Gemini
API for a docstring for every unit that lacks one, splices the generated
docstrings into the source, and writes the result to a new file. The
merged result is then validated against PEP 257 conventions.

Units that already carry a docstring are left untouched. A unit whose
generation fails is reported and does not stop the rest of the batch.

Examples:
  # Generate docstrings for one file
  docsmith generate app.py

  # Choose the docstring style and output path
  docsmith generate app.py --style NumPy -o app_documented.py

  # Process every Python file under a directory
  docsmith generate ./src
`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&styleFlag, "style", "s", "", "docstring style: Google, NumPy, or reST")
	generateCmd.Flags().StringVarP(&modelFlag, "model", "m", "", "model identifier passed to the service")
	generateCmd.Flags().StringVar(&apiKeyFlag, "api-key", "", "Gemini API key (overrides config and GEMINI_API_KEY)")
	generateCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output path (single-file targets only)")
	generateCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "disable progress bars and non-error output")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlagOverrides(cfg)

	style, err := generator.ParseStyle(cfg.Style)
	if err != nil {
		return err
	}

	var client llm.Completer
	if cfg.Gemini.APIKey == "" {
		fmt.Fprintln(os.Stderr, "Warning: no API key configured; every unit will be reported as an error")
	} else {
		gemini, err := llm.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		client = gemini
	}
	gen := generator.New(client)

	info, err := os.Stat(args[0])
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return generateFile(ctx, gen, style, args[0], outputFlag)
	}

	if outputFlag != "" {
		return fmt.Errorf("--output applies to single-file targets only")
	}
	fd, err := discovery.New(args[0], cfg.Paths.Include, cfg.Paths.Ignore)
	if err != nil {
		return fmt.Errorf("invalid path patterns: %w", err)
	}
	files, err := fd.Discover()
	if err != nil {
		return fmt.Errorf("file discovery failed: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no Python files found under %s", args[0])
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := generateFile(ctx, gen, style, file, ""); err != nil {
			// One bad file must not abort the rest of the run.
			log.Printf("%s: %v", file, err)
		}
	}
	return nil
}

// applyFlagOverrides lets command-line flags win over file and env config.
func applyFlagOverrides(cfg *config.Config) {
	if styleFlag != "" {
		cfg.Style = styleFlag
	}
	if modelFlag != "" {
		cfg.Gemini.Model = modelFlag
	}
	if apiKeyFlag != "" {
		cfg.Gemini.APIKey = apiKeyFlag
	}
}

// generateFile runs the full pipeline for one source file.
func generateFile(ctx context.Context, gen *generator.Generator, style generator.Style, path, outPath string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	ext, err := extractor.Extract(source)
	if err != nil {
		if errors.Is(err, extractor.ErrSyntax) {
			return fmt.Errorf("skipping: %w", err)
		}
		return err
	}
	if len(ext.Units) == 0 {
		if !quietFlag {
			fmt.Printf("%s: no documentable units\n", path)
		}
		return nil
	}

	if !quietFlag {
		stats := extractor.Coverage(ext.Units)
		fmt.Printf("%s: %d units, %d missing docstrings\n", path, stats.Total, stats.WithoutDocstring)
	}

	reporter := NewProgressReporter(quietFlag)
	reporter.Start(len(ext.Units))
	results := gen.GenerateBatch(ctx, ext.Units, style, reporter.OnProgress)
	reporter.Finish()

	printResultSummary(ext.Units, results)

	if outPath == "" {
		outPath = defaultOutputPath(path)
	}
	documented := generator.Apply(string(source), ext.Units, results)
	if err := os.WriteFile(outPath, []byte(documented), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if !quietFlag {
		fmt.Printf("Wrote %s\n", outPath)
	}

	report := validator.Validate(string(source), results)
	printSummary(report.Summary)
	return nil
}

// printResultSummary reports per-status counts and any flagged errors.
func printResultSummary(units []extractor.Unit, results map[string]generator.Result) {
	if quietFlag {
		return
	}
	var generated, existing, failed int
	for _, u := range units {
		r, ok := results[u.QualifiedName]
		if !ok {
			continue
		}
		switch r.Status {
		case generator.StatusGenerated:
			generated++
		case generator.StatusExisting:
			existing++
		case generator.StatusError:
			failed++
			fmt.Printf("  ✗ %s: %s\n", u.QualifiedName, strings.Join(r.Errors, "; "))
		}
		if verbose && len(r.Errors) > 0 && r.Status == generator.StatusGenerated {
			fmt.Printf("  ! %s flagged: %s\n", u.QualifiedName, strings.Join(r.Errors, "; "))
		}
	}
	fmt.Printf("Generated: %d  existing: %d  errors: %d\n", generated, existing, failed)
}

func printSummary(s validator.Summary) {
	if quietFlag {
		return
	}
	fmt.Printf("Validation: %d compliant, %d errors, %d warnings (%d issues)\n",
		s.Compliant, s.Errors, s.Warnings, s.TotalIssues)
}

// defaultOutputPath derives "<name>_documented.py" next to the source file.
func defaultOutputPath(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, stem+"_documented"+ext)
}
