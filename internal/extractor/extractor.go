// Package extractor parses Python source text with tree-sitter and produces
// the documentable units (functions, methods, classes) the rest of the
// pipeline operates on. Each extraction pass is a pure function of the
// source snapshot; nothing is retained between passes.
package extractor

import (
	"errors"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// ErrSyntax reports that the source text did not parse. The extraction
// result carries no units and a zero accuracy score.
var ErrSyntax = errors.New("extractor: source is not valid Python")

// fallbackBodyLines is the window used when a definition has no body
// statements to measure: declaration line plus this many lines.
const fallbackBodyLines = 10

var pyLanguage = sitter.NewLanguage(python.Language())

// Extract parses source and returns every function, method, and class
// definition in document order, nested definitions included. A source that
// fails to parse yields ErrSyntax with an empty unit list and Accuracy 0.
func Extract(source []byte) (*Extraction, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(pyLanguage)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return &Extraction{Units: []Unit{}}, ErrSyntax
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return &Extraction{Units: []Unit{}}, ErrSyntax
	}

	p := &pass{
		source: source,
		lines:  strings.Split(string(source), "\n"),
	}
	p.collect(root, nil, false)

	accuracy := 100.0
	if p.anomalies > 0 {
		accuracy = 95.0
	}
	out := &Extraction{Units: p.units, Accuracy: accuracy}
	if first, _ := firstLastStatements(root); first != nil {
		if doc, raw, ok := p.docstringOf(first); ok {
			out.ModuleDoc = doc
			out.ModuleRaw = raw
			out.HasModuleDoc = true
		}
	}
	return out, nil
}

// pass holds the state of one extraction walk.
type pass struct {
	source    []byte
	lines     []string
	units     []Unit
	anomalies int
}

// collect walks node's children in document order, tracking the enclosing
// scope path so nested and same-named definitions stay distinguishable.
func (p *pass) collect(node *sitter.Node, scope []string, inClass bool) {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "function_definition":
			p.collectFunction(child, scope, inClass)
		case "class_definition":
			p.collectClass(child, scope)
		default:
			// Covers decorated_definition too: the definition is a child of
			// the decorator wrapper, so the unit's line stays on the
			// def/class keyword.
			p.collect(child, scope, inClass)
		}
	}
}

func (p *pass) collectFunction(node *sitter.Node, scope []string, inClass bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		p.anomalies++
		return
	}
	name := nodeText(nameNode, p.source)

	kind := KindFunction
	if inClass {
		kind = KindMethod
	}

	unit := Unit{
		Name:          name,
		QualifiedName: qualify(scope, name),
		Kind:          kind,
		Params:        p.extractParams(node.ChildByFieldName("parameters")),
		Line:          int(node.StartPosition().Row) + 1,
		Col:           int(node.StartPosition().Column),
	}

	if ret := node.ChildByFieldName("return_type"); ret != nil {
		unit.Returns = nodeText(ret, p.source)
	}

	body := node.ChildByFieldName("body")
	p.fillBody(&unit, body)
	p.units = append(p.units, unit)

	if body != nil {
		p.collect(body, append(scope, name), false)
	}
}

func (p *pass) collectClass(node *sitter.Node, scope []string) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		p.anomalies++
		return
	}
	name := nodeText(nameNode, p.source)

	unit := Unit{
		Name:          name,
		QualifiedName: qualify(scope, name),
		Kind:          KindClass,
		Line:          int(node.StartPosition().Row) + 1,
		Col:           int(node.StartPosition().Column),
	}

	body := node.ChildByFieldName("body")
	p.fillBody(&unit, body)
	p.units = append(p.units, unit)

	if body != nil {
		p.collect(body, append(scope, name), true)
	}
}

// fillBody sets BodyLine, EndLine, Body, and the existing docstring from the
// unit's body block. A definition with no measurable body falls back to a
// fixed window below the declaration line.
func (p *pass) fillBody(unit *Unit, body *sitter.Node) {
	unit.BodyLine = unit.Line + 1
	unit.EndLine = unit.Line + fallbackBodyLines
	if unit.EndLine > len(p.lines) {
		unit.EndLine = len(p.lines)
	}

	first, last := firstLastStatements(body)
	if first != nil {
		unit.BodyLine = int(first.StartPosition().Row) + 1
		unit.EndLine = int(last.EndPosition().Row) + 1

		if doc, raw, ok := p.docstringOf(first); ok {
			unit.Docstring = doc
			unit.RawDocstring = raw
			unit.HasDocstring = true
		}
	}

	unit.Body = extractLines(p.lines, unit.Line, unit.EndLine)
}

// firstLastStatements returns a block's first and last statement nodes,
// skipping comments, which tree-sitter reports as named children.
func firstLastStatements(body *sitter.Node) (first, last *sitter.Node) {
	if body == nil {
		return nil, nil
	}
	for i := uint(0); i < body.NamedChildCount(); i++ {
		child := body.NamedChild(i)
		if child.Kind() == "comment" {
			continue
		}
		if first == nil {
			first = child
		}
		last = child
	}
	return first, last
}

// docstringOf recognizes the canonical docstring position: the body's first
// statement is a bare string literal.
func (p *pass) docstringOf(stmt *sitter.Node) (doc, raw string, ok bool) {
	if stmt.Kind() != "expression_statement" || stmt.NamedChildCount() == 0 {
		return "", "", false
	}
	expr := stmt.NamedChild(0)
	if expr.Kind() != "string" {
		return "", "", false
	}
	raw = nodeText(expr, p.source)
	return cleanDocstring(raw), raw, true
}

// extractParams reads the parameter list, keeping annotation text verbatim
// and never guessing a type for an unannotated parameter.
func (p *pass) extractParams(params *sitter.Node) []Param {
	if params == nil {
		return nil
	}
	var out []Param
	for i := uint(0); i < params.NamedChildCount(); i++ {
		child := params.NamedChild(i)
		switch child.Kind() {
		case "identifier":
			out = append(out, Param{Name: nodeText(child, p.source)})
		case "typed_parameter":
			param := Param{}
			if child.NamedChildCount() > 0 {
				param.Name = nodeText(child.NamedChild(0), p.source)
			}
			if tn := child.ChildByFieldName("type"); tn != nil {
				param.Type = nodeText(tn, p.source)
			}
			out = append(out, param)
		case "default_parameter", "typed_default_parameter":
			param := Param{}
			if nn := child.ChildByFieldName("name"); nn != nil {
				param.Name = nodeText(nn, p.source)
			}
			if tn := child.ChildByFieldName("type"); tn != nil {
				param.Type = nodeText(tn, p.source)
			}
			out = append(out, param)
		case "list_splat_pattern", "dictionary_splat_pattern":
			// *args / **kwargs, star included in the node text.
			out = append(out, Param{Name: nodeText(child, p.source)})
		case "positional_separator", "keyword_separator":
			// bare / and * markers carry no name
		default:
			out = append(out, Param{Name: nodeText(child, p.source)})
		}
	}
	return out
}

func qualify(scope []string, name string) string {
	if len(scope) == 0 {
		return name
	}
	return strings.Join(scope, ".") + "." + name
}
