package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsmith-dev/docsmith/internal/extractor"
)

// Test Plan for BuildPrompt:
// - Byte-identical output for identical inputs (purity)
// - Parameter list rendering with and without annotations
// - Explicit "None" marker for an absent return type
// - Style name and section markers embedded in the request

func sampleUnit() extractor.Unit {
	return extractor.Unit{
		Name:          "create_user",
		QualifiedName: "create_user",
		Kind:          extractor.KindFunction,
		Params: []extractor.Param{
			{Name: "name", Type: "str"},
			{Name: "email"},
		},
		Returns: "Optional[User]",
		Line:    10,
		Body:    "def create_user(name: str, email):\n    return User(name, email)",
	}
}

func TestBuildPrompt_Pure(t *testing.T) {
	t.Parallel()

	unit := sampleUnit()
	first := BuildPrompt(unit, StyleGoogle)
	second := BuildPrompt(unit, StyleGoogle)
	assert.Equal(t, first, second)

	// A different style must change the request.
	assert.NotEqual(t, first, BuildPrompt(unit, StyleNumPy))
}

func TestBuildPrompt_Contents(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt(sampleUnit(), StyleGoogle)

	assert.Contains(t, prompt, "Google style docstring")
	assert.Contains(t, prompt, "Name: create_user")
	assert.Contains(t, prompt, "Arguments: name: str, email")
	assert.Contains(t, prompt, "Return Type: Optional[User]")
	assert.Contains(t, prompt, "def create_user")
	assert.Contains(t, prompt, markerDocstring)
	assert.Contains(t, prompt, markerFixedCode)
	assert.Contains(t, prompt, markerErrors)
}

func TestBuildPrompt_NoReturnType(t *testing.T) {
	t.Parallel()

	unit := sampleUnit()
	unit.Returns = ""
	prompt := BuildPrompt(unit, StyleRest)

	assert.Contains(t, prompt, "Return Type: None")
	assert.Contains(t, prompt, "reST style docstring")
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{in: "Google", want: StyleGoogle},
		{in: "google", want: StyleGoogle},
		{in: "NUMPY", want: StyleNumPy},
		{in: "rest", want: StyleRest},
		{in: "sphinx", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
