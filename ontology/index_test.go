package ontology

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex()
	require.NoError(t, err)
	return idx
}

func TestMatchExact(t *testing.T) {
	idx := newTestIndex(t)

	results := idx.Match("person", AllTemplates)
	require.NotEmpty(t, results)
	assert.Equal(t, ":Person", results[0].Class)
	assert.Equal(t, 100, results[0].Score)
	assert.Equal(t, TemplateExact, results[0].Template)

	// Synonyms hit exact too.
	results = idx.Match("attorney", AllTemplates)
	require.NotEmpty(t, results)
	assert.Equal(t, ":Person", results[0].Class)
	assert.Equal(t, 100, results[0].Score)
}

func TestMatchCaseInsensitive(t *testing.T) {
	idx := newTestIndex(t)
	results := idx.Match("  PERSON ", AllTemplates)
	require.NotEmpty(t, results)
	assert.Equal(t, ":Person", results[0].Class)
}

func TestMatchApproximateScoresLower(t *testing.T) {
	idx := newTestIndex(t)

	// "governments" is not an exact label or synonym but contains "government".
	results := idx.Match("governments", AllTemplates)
	require.NotEmpty(t, results)
	assert.Less(t, results[0].Score, 100)
	found := false
	for _, r := range results {
		if r.Class == ":GovernmentalEntity" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestMatchTemplateRestriction(t *testing.T) {
	idx := newTestIndex(t)

	// Restricted to exact, an approximate-only query misses.
	results := idx.Match("governments", []QueryTemplate{TemplateExact})
	assert.Empty(t, results)
}

func TestMatchMissReturnsEmpty(t *testing.T) {
	idx := newTestIndex(t)
	assert.Empty(t, idx.Match("xqzzyblorp", AllTemplates))
	assert.Empty(t, idx.Match("   ", AllTemplates))
}

func TestMatchDeterministic(t *testing.T) {
	idx := newTestIndex(t)
	first := idx.Match("place", AllTemplates)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, idx.Match("place", AllTemplates))
	}
}

func TestIsSubclassOf(t *testing.T) {
	idx := newTestIndex(t)

	assert.True(t, idx.IsSubclassOf(":Person", ":Agent"))
	assert.True(t, idx.IsSubclassOf(":GovernmentalEntity", ":Agent"), "transitive ancestry")
	assert.True(t, idx.IsSubclassOf(":Person", ":Person"), "a class is its own subclass")
	assert.False(t, idx.IsSubclassOf(":Agent", ":Person"), "ancestry is directional")
	assert.False(t, idx.IsSubclassOf(":Martian", ":Agent"), "unknown classes are nobody's subclass")
}

func TestLocalName(t *testing.T) {
	assert.Equal(t, "Person", LocalName(":Person"))
	assert.Equal(t, "Person", LocalName("Person"))
}

func TestNewIndexFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
classes:
  - name: ":Widget"
    parents: []
    label: "widget"
    synonyms: [gadget]
  - name: ":Sprocket"
    parents: [":Widget"]
    label: "sprocket"
`), 0o644))

	idx, err := NewIndexFromFile(path)
	require.NoError(t, err)

	results := idx.Match("gadget", AllTemplates)
	require.NotEmpty(t, results)
	assert.Equal(t, ":Widget", results[0].Class)
	assert.True(t, idx.IsSubclassOf(":Sprocket", ":Widget"))

	_, err = NewIndexFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCatalogValidation(t *testing.T) {
	cases := map[string]string{
		"empty":      `classes: []`,
		"unprefixed": "classes:\n  - name: Widget\n    label: widget",
		"duplicate":  "classes:\n  - name: \":Widget\"\n    label: widget\n  - name: \":Widget\"\n    label: widget",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := newIndexFromYAML([]byte(src))
			assert.Error(t, err)
		})
	}
}
