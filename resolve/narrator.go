package resolve

import (
	"sort"
	"strings"
)

// NarratorRegistry unifies narrator identities across narratives processed in
// the same run. Two narrators are the same person when their normalized
// label sets coincide; identity never spans runs.
type NarratorRegistry struct {
	byKey map[string]string // normalized label-set key -> canonical ID
	ids   *minter
}

// NewNarratorRegistry creates an empty registry.
func NewNarratorRegistry() *NarratorRegistry {
	return &NarratorRegistry{
		byKey: make(map[string]string),
		ids:   newMinter(),
	}
}

// Canonical returns the canonical identifier for a narrator with the given
// label set, minting one on first sight. The second return reports whether
// the narrator unified with a previously seen one.
func (r *NarratorRegistry) Canonical(labels []string) (string, bool) {
	key := labelKey(labels)
	if key == "" {
		key = "narrator"
	}
	if id, ok := r.byKey[key]; ok {
		return id, true
	}
	label := "Narrator"
	if len(labels) > 0 {
		label = labels[0]
	}
	id := r.ids.mint(label)
	r.byKey[key] = id
	return id, false
}

func labelKey(labels []string) string {
	norm := make([]string, 0, len(labels))
	for _, l := range labels {
		n := normalize(l)
		if n != "" && n != "narrator" {
			norm = append(norm, n)
		}
	}
	sort.Strings(norm)
	return strings.Join(norm, "|")
}

// RenameNarrator rewrites the context's narrator identifier to the canonical
// one, so statements emitted afterwards carry the unified identity.
func (c *Context) RenameNarrator(canonicalID string) {
	c.narrator.ID = canonicalID
}
