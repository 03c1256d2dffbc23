package validator

import "strings"

// CodeInternal is the synthetic finding code used when validation itself
// fails; it is always error severity and forces the compliant count to zero.
const CodeInternal = "DOC000"

// Severity of a finding, a pure function of its rule code.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// SeverityFor maps a rule code to its severity: missing-docstring codes
// (D1xx) and the synthetic internal code are errors, every formatting,
// quoting, and content rule is a warning.
func SeverityFor(code string) Severity {
	if code == CodeInternal || strings.HasPrefix(code, "D1") {
		return SeverityError
	}
	return SeverityWarning
}

// ruleMessages is the fixed PEP 257 rule catalog keyed by code. The engine
// enforces a subset; the full table keeps reporting readable for any code.
var ruleMessages = map[string]string{
	"D100": "Missing docstring in public module",
	"D101": "Missing docstring in public class",
	"D102": "Missing docstring in public method",
	"D103": "Missing docstring in public function",
	"D200": "One-line docstring should fit on one line",
	"D201": "No blank lines allowed before function docstring",
	"D202": "No blank lines allowed after function docstring",
	"D203": "One blank line required before class docstring",
	"D204": "One blank line required after class docstring",
	"D205": "One blank line required between summary and description",
	"D206": "Docstring should be indented with spaces, not tabs",
	"D207": "Docstring is under-indented",
	"D208": "Docstring is over-indented",
	"D209": "Multi-line docstring closing quotes should be on a separate line",
	"D210": "No whitespaces allowed surrounding docstring text",
	"D211": "No blank lines allowed before class docstring",
	"D212": "Multi-line docstring summary should start at the first line",
	"D213": "Multi-line docstring summary should start at the second line",
	"D300": "Use triple double quotes for docstrings",
	"D301": `Use r""" if any backslashes in a docstring`,
	"D400": "First line should end with a period",
	"D401": "First line should be in imperative mood",
	"D402": "First line should not be the function signature",
	"D403": "First word of the first line should be capitalized",
	"D404": `First word of the docstring should not be "This"`,
	"D405": "Section name should be properly capitalized",
	"D406": "Section name should end with a newline",
	"D407": "Missing dashed underline after section",
	"D408": "Section underline should be on the line after the section name",
	"D409": "Section underline should match the length of its name",
	"D410": "Missing blank line after section",
	"D411": "Missing blank line before section",
	"D412": "No blank lines allowed between section header and content",
	"D413": "Missing blank line after last section",
	"D414": "Section has no content",
	"D415": "First line should end with a period, question mark, or exclamation point",
	"D416": "Section name should end with a colon",
	"D417": "Missing argument descriptions in the docstring",
}

// MessageFor returns the catalog message for a rule code.
func MessageFor(code string) string {
	if msg, ok := ruleMessages[code]; ok {
		return msg
	}
	return "PEP 257 violation: " + code
}
