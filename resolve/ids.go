package resolve

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// minter produces stable, unique, IRI-safe identifiers. The first entity for
// a given label gets the clean form (":Mary"); later distinct entities with
// the same label get a UUID suffix so identifiers never collide within a
// process.
type minter struct {
	taken map[string]bool
}

func newMinter() *minter {
	return &minter{taken: map[string]bool{NarratorID: true}}
}

func (m *minter) mint(label string) string {
	id := ":" + sanitizeLabel(label)
	if id == ":" {
		id = ":Entity"
	}
	if !m.taken[id] {
		m.taken[id] = true
		return id
	}
	id = id + "_" + uuid.NewString()[:8]
	m.taken[id] = true
	return id
}

// sanitizeLabel keeps letters and digits, title-casing word starts, so
// "the iron guard" becomes "TheIronGuard".
func sanitizeLabel(label string) string {
	var sb strings.Builder
	wordStart := true
	for _, r := range label {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if wordStart && unicode.IsLetter(r) {
				r = unicode.ToUpper(r)
			}
			sb.WriteRune(r)
			wordStart = false
		case r == '_':
			sb.WriteRune(r)
			wordStart = true
		default:
			wordStart = true
		}
	}
	return sb.String()
}
