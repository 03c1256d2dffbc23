package extractor

// UnitKind classifies a documentable unit.
type UnitKind string

const (
	KindFunction UnitKind = "function"
	KindMethod   UnitKind = "method"
	KindClass    UnitKind = "class"
)

// Param is one parameter of a function or method. Type is the verbatim
// annotation text, empty when the parameter carries no annotation.
type Param struct {
	Name string
	Type string
}

// Unit describes one documentable definition found in a source file.
// Units are immutable after extraction; a new extraction pass replaces them.
type Unit struct {
	Name          string
	QualifiedName string // scope path joined with ".", e.g. "User.validate"
	Kind          UnitKind
	Params        []Param
	Returns       string // verbatim return annotation, empty when absent

	Line     int // 1-based line of the def/class keyword
	Col      int // 0-based column of the def/class keyword
	BodyLine int // 1-based line of the first body statement
	EndLine  int // 1-based line of the last body statement

	Docstring    string // cleaned existing docstring
	RawDocstring string // verbatim docstring literal, quotes included
	HasDocstring bool
	Body         string // verbatim source slice from Line through EndLine
}

// Extraction is the result of one extraction pass over a source snapshot.
type Extraction struct {
	Units []Unit

	// ModuleDoc is the module-level docstring, when the source opens with
	// one in the canonical first-statement position. ModuleRaw is the
	// verbatim literal.
	ModuleDoc    string
	ModuleRaw    string
	HasModuleDoc bool

	// Accuracy is an advisory confidence score: 100 when every definition
	// was extracted cleanly, 95 when at least one anomaly was skipped,
	// 0 when the source did not parse.
	Accuracy float64
}

// CoverageStats summarizes existing docstring coverage for a unit set.
type CoverageStats struct {
	Total            int
	WithDocstring    int
	WithoutDocstring int
	Percentage       float64
}

// Coverage computes docstring coverage over the extracted units.
func Coverage(units []Unit) CoverageStats {
	stats := CoverageStats{Total: len(units)}
	if stats.Total == 0 {
		return stats
	}
	for _, u := range units {
		if u.HasDocstring {
			stats.WithDocstring++
		}
	}
	stats.WithoutDocstring = stats.Total - stats.WithDocstring
	stats.Percentage = float64(stats.WithDocstring) / float64(stats.Total) * 100
	return stats
}
