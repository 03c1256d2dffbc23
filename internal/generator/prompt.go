package generator

import (
	"fmt"
	"strings"

	"github.com/docsmith-dev/docsmith/internal/extractor"
)

// Section markers the prompt mandates and the interpreter splits on.
const (
	markerDocstring = "DOCSTRING:"
	markerFixedCode = "FIXED_CODE:"
	markerErrors    = "ERRORS_FOUND:"

	sentinelNoFixes = "No fixes needed"
	sentinelNone    = "None"
)

// BuildPrompt renders the generation request for one unit. It is pure:
// identical (unit, style) inputs always produce byte-identical text, so the
// pipeline is testable without the remote service.
func BuildPrompt(unit extractor.Unit, style Style) string {
	params := make([]string, 0, len(unit.Params))
	for _, p := range unit.Params {
		if p.Type == "" {
			params = append(params, p.Name)
		} else {
			params = append(params, p.Name+": "+p.Type)
		}
	}

	returns := unit.Returns
	if returns == "" {
		returns = "None"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %s style docstring for this Python %s.\n\n", style, unit.Kind)
	fmt.Fprintf(&b, "Name: %s\n", unit.Name)
	fmt.Fprintf(&b, "Arguments: %s\n", strings.Join(params, ", "))
	fmt.Fprintf(&b, "Return Type: %s\n\n", returns)
	fmt.Fprintf(&b, "Code:\n%s\n\n", unit.Body)
	fmt.Fprintf(&b, `Requirements:
1. Follow %s style docstring format strictly
2. Include the purpose of the %s
3. Describe all parameters with their types
4. Describe the return type and value
5. Add inline comments for complex logic if needed
6. Follow PEP 257 conventions
7. First line must be a brief imperative summary ending with a period
8. If multi-line, leave a blank line after the summary

Also, if you find any obvious errors in the code (syntax, logic), provide a fixed version.

Respond in this format:
%s
[Your generated docstring here]

%s
[Fixed code if any errors found, otherwise write "%s"]

%s
[List any errors you found, otherwise write "%s"]
`, style, unit.Kind, markerDocstring, markerFixedCode, sentinelNoFixes, markerErrors, sentinelNone)

	return b.String()
}
