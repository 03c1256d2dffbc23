package extractor

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// nodeText extracts the text content of a tree-sitter node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// extractLines extracts source lines from startLine to endLine (1-indexed,
// inclusive).
func extractLines(lines []string, startLine, endLine int) string {
	if startLine < 1 || endLine < 1 || startLine > len(lines) {
		return ""
	}
	end := endLine
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[startLine-1:end], "\n")
}

// cleanDocstring turns a raw string literal into docstring text: the quote
// delimiters and any literal prefix (r, b, f, u) are stripped, the common
// indentation of continuation lines is removed, and surrounding blank space
// is trimmed.
func cleanDocstring(raw string) string {
	s := raw
	for len(s) > 0 && s[0] != '"' && s[0] != '\'' {
		s = s[1:]
	}
	switch {
	case len(s) >= 6 && (strings.HasPrefix(s, `"""`) || strings.HasPrefix(s, "'''")):
		s = s[3 : len(s)-3]
	case len(s) >= 2 && (s[0] == '"' || s[0] == '\''):
		s = s[1 : len(s)-1]
	}
	return cleandoc(s)
}

// cleandoc removes the uniform indentation of every line after the first,
// the way Python's inspect.cleandoc normalizes docstrings.
func cleandoc(s string) string {
	lines := strings.Split(s, "\n")
	indent := -1
	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		n := len(line) - len(trimmed)
		if indent == -1 || n < indent {
			indent = n
		}
	}
	out := []string{strings.TrimLeft(lines[0], " \t")}
	for _, line := range lines[1:] {
		if indent > 0 && len(line) >= indent {
			line = line[indent:]
		} else {
			line = strings.TrimLeft(line, " \t")
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
