package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsmith-dev/docsmith/internal/extractor"
	"github.com/docsmith-dev/docsmith/internal/llm"
)

// Test Plan for Generator:
// - No credential: every result is StatusError and zero service calls happen
// - Existing docstrings short-circuit to StatusExisting without a call
// - Service failures are isolated per unit; the batch continues
// - Batch results are keyed by qualified name, processed in input order
// - Progress callback fires once per unit with running counts
// - Apply splices only generated docstrings into the source

const conformingResponse = "DOCSTRING:\nDo the thing.\n\nFIXED_CODE:\nNo fixes needed\n\nERRORS_FOUND:\nNone"

func extractUnits(t *testing.T, source string) []extractor.Unit {
	t.Helper()
	ext, err := extractor.Extract([]byte(source))
	require.NoError(t, err)
	return ext.Units
}

func TestGenerateOne_NoCredential(t *testing.T) {
	t.Parallel()

	gen := New(nil)
	units := extractUnits(t, "def f(x):\n    return x\n")
	require.Len(t, units, 1)

	result := gen.GenerateOne(context.Background(), units[0], StyleGoogle)

	assert.Equal(t, StatusError, result.Status)
	assert.NotEmpty(t, result.Errors)
}

func TestGenerateOne_ExistingDocstring(t *testing.T) {
	t.Parallel()

	mock := llm.NewMockCompleter(conformingResponse)
	gen := New(mock)
	units := extractUnits(t, "def f():\n    \"\"\"Does nothing.\"\"\"\n    pass\n")
	require.Len(t, units, 1)

	result := gen.GenerateOne(context.Background(), units[0], StyleGoogle)

	assert.Equal(t, StatusExisting, result.Status)
	assert.Equal(t, "Does nothing.", result.Docstring)
	assert.Zero(t, mock.Calls(), "existing docstrings must not trigger a service call")
}

func TestGenerateOne_ServiceFailure(t *testing.T) {
	t.Parallel()

	mock := &llm.MockCompleter{Err: errors.New("quota exceeded")}
	gen := New(mock)
	units := extractUnits(t, "def f(x):\n    return x\n")

	result := gen.GenerateOne(context.Background(), units[0], StyleGoogle)

	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, []string{"quota exceeded"}, result.Errors)
	assert.Equal(t, 1, mock.Calls())
}

func TestGenerateOne_Generated(t *testing.T) {
	t.Parallel()

	mock := llm.NewMockCompleter(conformingResponse)
	gen := New(mock)
	units := extractUnits(t, "def f(x):\n    return x\n")

	result := gen.GenerateOne(context.Background(), units[0], StyleGoogle)

	assert.Equal(t, StatusGenerated, result.Status)
	assert.True(t, result.Structured)
	assert.Equal(t, "Do the thing.", result.Docstring)
	assert.Equal(t, 1, mock.Calls())
}

func TestGenerateBatch_NoCredentialMakesNoCalls(t *testing.T) {
	t.Parallel()

	gen := New(nil)
	units := extractUnits(t, "def a():\n    pass\n\n\ndef b():\n    pass\n")
	require.Len(t, units, 2)

	results := gen.GenerateBatch(context.Background(), units, StyleGoogle, nil)

	require.Len(t, results, 2)
	for name, r := range results {
		assert.Equal(t, StatusError, r.Status, name)
	}
}

func TestGenerateBatch_MixedOutcomes(t *testing.T) {
	t.Parallel()

	source := `def documented():
    """Already done."""
    pass


def missing():
    pass
`
	mock := llm.NewMockCompleter(conformingResponse)
	gen := New(mock)
	units := extractUnits(t, source)
	require.Len(t, units, 2)

	var progress [][2]int
	results := gen.GenerateBatch(context.Background(), units, StyleGoogle, func(done, total int) {
		progress = append(progress, [2]int{done, total})
	})

	require.Len(t, results, 2)
	assert.Equal(t, StatusExisting, results["documented"].Status)
	assert.Equal(t, StatusGenerated, results["missing"].Status)
	assert.Equal(t, 1, mock.Calls(), "only the undocumented unit needs a call")
	assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, progress)
}

func TestGenerateBatch_ResultCountNeverExceedsInput(t *testing.T) {
	t.Parallel()

	source := `class A:
    def run(self):
        pass


class B:
    def run(self):
        pass
`
	gen := New(llm.NewMockCompleter(conformingResponse))
	units := extractUnits(t, source)
	require.Len(t, units, 4)

	results := gen.GenerateBatch(context.Background(), units, StyleGoogle, nil)

	// Qualified names keep same-named methods on different classes apart.
	assert.Len(t, results, 4)
	assert.Contains(t, results, "A.run")
	assert.Contains(t, results, "B.run")
	assert.LessOrEqual(t, len(results), len(units))
}

func TestApply_SplicesGeneratedOnly(t *testing.T) {
	t.Parallel()

	source := `def documented():
    """Already done."""
    pass


def missing():
    pass
`
	units := extractUnits(t, source)
	results := map[string]Result{
		"documented": {Status: StatusExisting, Docstring: "Already done."},
		"missing":    {Status: StatusGenerated, Docstring: "Fill the gap."},
	}

	merged := Apply(source, units, results)

	assert.Contains(t, merged, `    """Fill the gap."""`)
	// The existing docstring appears exactly once.
	assert.Equal(t, 1, strings.Count(merged, "Already done."))

	// Re-extracting the merged source shows the gap closed.
	mergedUnits := extractUnits(t, merged)
	for _, u := range mergedUnits {
		assert.True(t, u.HasDocstring, u.QualifiedName)
	}
}
