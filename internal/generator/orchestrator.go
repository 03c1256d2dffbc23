// Package generator drives docstring generation: it builds deterministic
// prompts for documentable units, sends them to a completion service one at
// a time, and interprets the free-form responses tolerantly. A unit that
// fails never aborts the batch; it is recorded with an error status and the
// batch moves on.
package generator

import (
	"context"

	"github.com/docsmith-dev/docsmith/internal/extractor"
	"github.com/docsmith-dev/docsmith/internal/llm"
	"github.com/docsmith-dev/docsmith/internal/splice"
)

// noKeyMessage is returned for every unit when no credential is configured.
const noKeyMessage = "no API key configured"

// ProgressFunc is called after each unit of a batch completes.
type ProgressFunc func(completed, total int)

// Generator orchestrates per-unit generation calls. The client is an
// explicit dependency; a nil client means no credential is configured and
// every request short-circuits to an error result without network traffic.
type Generator struct {
	client llm.Completer
}

// New creates a Generator backed by client, which may be nil.
func New(client llm.Completer) *Generator {
	return &Generator{client: client}
}

// GenerateOne produces documentation for a single unit. Units that already
// carry a docstring are returned as-is with StatusExisting and no service
// call. Any service failure is captured in the result, never propagated.
func (g *Generator) GenerateOne(ctx context.Context, unit extractor.Unit, style Style) Result {
	if g.client == nil {
		return Result{
			Docstring: "Error: " + noKeyMessage,
			Errors:    []string{noKeyMessage},
			Status:    StatusError,
		}
	}

	if unit.HasDocstring {
		return Result{
			Docstring: unit.Docstring,
			Errors:    []string{},
			Status:    StatusExisting,
		}
	}

	prompt := BuildPrompt(unit, style)
	raw, err := g.client.Complete(ctx, prompt)
	if err != nil {
		return Result{
			Docstring: "Error generating docstring: " + err.Error(),
			Errors:    []string{err.Error()},
			Status:    StatusError,
		}
	}

	resp := ParseResponse(raw)
	return Result{
		Docstring:  resp.Docstring,
		FixedCode:  resp.FixedCode,
		Errors:     resp.Errors,
		Status:     StatusGenerated,
		Structured: resp.Structured,
	}
}

// GenerateBatch processes units strictly in input order and returns results
// keyed by qualified unit name. onProgress, when non-nil, fires after each
// unit with the completed and total counts.
func (g *Generator) GenerateBatch(ctx context.Context, units []extractor.Unit, style Style, onProgress ProgressFunc) map[string]Result {
	results := make(map[string]Result, len(units))
	total := len(units)

	for i, unit := range units {
		results[unit.QualifiedName] = g.GenerateOne(ctx, unit, style)
		if onProgress != nil {
			onProgress(i+1, total)
		}
	}
	return results
}

// Apply splices the generated docstrings from results into source and
// returns the new source text. Only StatusGenerated results are inserted;
// existing docstrings are never overwritten.
func Apply(source string, units []extractor.Unit, results map[string]Result) string {
	docs := make(map[string]string, len(results))
	for name, r := range results {
		if r.Status == StatusGenerated && r.Docstring != "" {
			docs[name] = r.Docstring
		}
	}
	return splice.Insert(source, units, docs)
}
