package validator

import (
	"strings"
	"unicode"

	"github.com/docsmith-dev/docsmith/internal/extractor"
)

// check runs the enforced rule subset over an extraction and returns
// findings in source order.
func check(ext *extractor.Extraction) []Finding {
	var findings []Finding

	add := func(code string, line int, definition string) {
		findings = append(findings, Finding{
			Code:       code,
			Message:    MessageFor(code),
			Line:       line,
			Definition: definition,
			Severity:   SeverityFor(code),
		})
	}

	if !ext.HasModuleDoc {
		add("D100", 1, "module")
	} else {
		checkContent(ext.ModuleDoc, ext.ModuleRaw, 1, "module", add)
	}

	for _, u := range ext.Units {
		if !u.HasDocstring {
			switch u.Kind {
			case extractor.KindClass:
				add("D101", u.Line, u.QualifiedName)
			case extractor.KindMethod:
				add("D102", u.Line, u.QualifiedName)
			default:
				add("D103", u.Line, u.QualifiedName)
			}
			continue
		}
		checkContent(u.Docstring, u.RawDocstring, u.BodyLine, u.QualifiedName, add)
	}

	return findings
}

// checkContent applies the formatting and content rules to one docstring.
func checkContent(doc, raw string, line int, definition string, add func(code string, line int, definition string)) {
	if doc == "" {
		return
	}

	cleanLines := strings.Split(doc, "\n")
	summary := strings.TrimSpace(cleanLines[0])

	// Quote and layout rules need the verbatim literal.
	if raw != "" {
		inner := raw
		for len(inner) > 0 && inner[0] != '"' && inner[0] != '\'' {
			inner = inner[1:]
		}
		if !strings.HasPrefix(inner, `"""`) {
			add("D300", line, definition)
		}

		rawLines := strings.Split(raw, "\n")
		if len(rawLines) > 1 && len(cleanLines) == 1 {
			add("D200", line, definition)
		}
		if len(cleanLines) > 1 {
			last := strings.TrimSpace(rawLines[len(rawLines)-1])
			if last != `"""` && last != `'''` {
				add("D209", line, definition)
			}
		}

		content := stripDelimiters(inner)
		firstLine := strings.SplitN(content, "\n", 2)[0]
		if strings.HasPrefix(content, " ") || strings.HasPrefix(content, "\t") ||
			strings.HasSuffix(firstLine, " ") || strings.HasSuffix(firstLine, "\t") {
			add("D210", line, definition)
		}
	}

	if !strings.HasSuffix(summary, ".") {
		add("D400", line, definition)
		if !strings.HasSuffix(summary, "!") && !strings.HasSuffix(summary, "?") {
			add("D415", line, definition)
		}
	}

	if first := firstWord(summary); first != "" {
		r := []rune(first)[0]
		if unicode.IsLetter(r) && unicode.IsLower(r) {
			add("D403", line, definition)
		}
		if first == "This" {
			add("D404", line, definition)
		}
	}

	if len(cleanLines) > 1 && strings.TrimSpace(cleanLines[1]) != "" {
		add("D205", line, definition)
	}
}

// stripDelimiters removes the quote delimiters from a string literal body,
// leaving interior whitespace intact.
func stripDelimiters(s string) string {
	switch {
	case len(s) >= 6 && (strings.HasPrefix(s, `"""`) || strings.HasPrefix(s, "'''")):
		return s[3 : len(s)-3]
	case len(s) >= 2 && (s[0] == '"' || s[0] == '\''):
		return s[1 : len(s)-1]
	}
	return s
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimRight(fields[0], ".,:;!?")
}
