// Package splice inserts docstring text into Python source. Insertion
// points come from the extractor's tree-sitter positions (definition column
// and first body-statement line), never from re-scanning the text for
// keywords, so identifier substrings can't produce bogus matches.
package splice

import (
	"sort"
	"strings"

	"github.com/docsmith-dev/docsmith/internal/extractor"
)

// indentStep is the indentation added to a definition's column for its body.
const indentStep = 4

// Insert returns a copy of source with a triple-quoted docstring block
// inserted for every unit that has an entry in docs, keyed by qualified
// name. Units already carrying a docstring are left untouched. The input
// source is never modified.
func Insert(source string, units []extractor.Unit, docs map[string]string) string {
	type insertion struct {
		beforeLine int // 1-based line the block is inserted before
		block      []string
	}

	var insertions []insertion
	for _, u := range units {
		if u.HasDocstring {
			continue
		}
		doc, ok := docs[u.QualifiedName]
		if !ok || doc == "" {
			continue
		}
		insertions = append(insertions, insertion{
			beforeLine: u.BodyLine,
			block:      Block(doc, u.Col+indentStep),
		})
	}
	if len(insertions) == 0 {
		return source
	}

	// Apply bottom-up so earlier insertions don't shift later line numbers.
	sort.Slice(insertions, func(i, j int) bool {
		return insertions[i].beforeLine > insertions[j].beforeLine
	})

	lines := strings.Split(source, "\n")
	for _, ins := range insertions {
		at := ins.beforeLine - 1
		if at < 0 {
			at = 0
		}
		if at > len(lines) {
			at = len(lines)
		}
		lines = append(lines[:at], append(ins.block, lines[at:]...)...)
	}
	return strings.Join(lines, "\n")
}

// Block renders docstring text as an indented triple-quoted block, one
// source line per element.
func Block(doc string, indent int) []string {
	pad := strings.Repeat(" ", indent)
	docLines := strings.Split(doc, "\n")

	if len(docLines) == 1 {
		return []string{pad + `"""` + docLines[0] + `"""`}
	}

	block := make([]string, 0, len(docLines)+2)
	block = append(block, pad+`"""`)
	for _, line := range docLines {
		if line == "" {
			block = append(block, "")
		} else {
			block = append(block, pad+line)
		}
	}
	block = append(block, pad+`"""`)
	return block
}
