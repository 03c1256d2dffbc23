package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docsmith-dev/docsmith/internal/extractor"
)

func TestDefaultOutputPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "app_documented.py", defaultOutputPath("app.py"))
	assert.Equal(t, "src/util_documented.py", defaultOutputPath("src/util.py"))
}

func TestSignature(t *testing.T) {
	t.Parallel()

	fn := extractor.Unit{
		QualifiedName: "User.validate",
		Kind:          extractor.KindMethod,
		Params:        []extractor.Param{{Name: "self"}, {Name: "strict", Type: "bool"}},
		Returns:       "bool",
	}
	assert.Equal(t, "User.validate(self, strict: bool) -> bool", signature(fn))

	cls := extractor.Unit{QualifiedName: "User", Kind: extractor.KindClass}
	assert.Equal(t, "User", signature(cls))
}
