package generator

import (
	"fmt"
	"strings"
)

// Style selects the documentation formatting convention embedded in the
// generation prompt.
type Style string

const (
	StyleGoogle Style = "Google"
	StyleNumPy  Style = "NumPy"
	StyleRest   Style = "reST"
)

// Styles lists every supported style in display order.
func Styles() []Style {
	return []Style{StyleGoogle, StyleNumPy, StyleRest}
}

// ParseStyle resolves a user-supplied style name, case-insensitively.
func ParseStyle(name string) (Style, error) {
	for _, s := range Styles() {
		if strings.EqualFold(name, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown docstring style %q (expected Google, NumPy, or reST)", name)
}

// Status classifies the outcome of one unit's generation.
type Status string

const (
	// StatusExisting means the unit already carried a docstring and no
	// generation call was made.
	StatusExisting Status = "existing"
	// StatusGenerated means the service produced new documentation text.
	StatusGenerated Status = "generated"
	// StatusError means the call failed or no credential was configured.
	StatusError Status = "error"
)

// Result is the outcome of generating documentation for one unit.
type Result struct {
	Docstring string
	FixedCode string // corrected source suggested by the service, empty when none
	Errors    []string
	Status    Status

	// Structured is true when the service response followed the
	// three-section contract; false means the fallback interpretation
	// (whole response treated as documentation text) was used.
	Structured bool
}

// Response is the interpreter's best-effort view of one raw completion.
type Response struct {
	Docstring  string
	FixedCode  string
	Errors     []string
	Structured bool
}
