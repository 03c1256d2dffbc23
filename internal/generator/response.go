package generator

import "strings"

// ParseResponse interprets a raw completion. It never fails: when the
// three-section contract is not honored, the whole response is treated as
// documentation text and Structured is left false, so callers can tell a
// conforming response from a fallback.
func ParseResponse(raw string) Response {
	resp := Response{Errors: []string{}}

	sections := strings.SplitN(raw, markerFixedCode, 2)
	if len(sections) < 2 {
		resp.Docstring = CleanDocstring(raw)
		return resp
	}

	docPart := strings.Replace(sections[0], markerDocstring, "", 1)

	rest := strings.SplitN(sections[1], markerErrors, 2)
	if len(rest) < 2 {
		resp.Docstring = CleanDocstring(docPart)
		return resp
	}

	resp.Structured = true
	resp.Docstring = CleanDocstring(docPart)

	// The sentinels signal absence of the field, not literal content.
	if fixed := strings.TrimSpace(rest[0]); fixed != "" && !strings.Contains(fixed, sentinelNoFixes) {
		resp.FixedCode = CleanCode(fixed)
	}
	if errs := strings.TrimSpace(rest[1]); errs != "" && !strings.Contains(errs, sentinelNone) {
		resp.Errors = append(resp.Errors, errs)
	}
	return resp
}

// CleanDocstring strips markdown code fences and enclosing triple-quote
// delimiters from documentation text, then trims surrounding whitespace.
func CleanDocstring(text string) string {
	text = stripFences(text)
	text = strings.TrimSpace(text)

	for _, q := range []string{`"""`, "'''"} {
		text = strings.TrimPrefix(text, q)
		text = strings.TrimSuffix(text, q)
	}
	return strings.TrimSpace(text)
}

// CleanCode strips markdown code fences from a code block.
func CleanCode(text string) string {
	return strings.TrimSpace(stripFences(text))
}

// stripFences removes ``` fence lines, tolerating a language tag after the
// opening fence.
func stripFences(text string) string {
	if !strings.Contains(text, "```") {
		return text
	}
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			continue
		}
		out = append(out, line)
	}
	// Fences that share a line with content survive the line filter.
	return strings.ReplaceAll(strings.Join(out, "\n"), "```", "")
}
