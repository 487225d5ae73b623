// Package resolve implements coreference resolution over a narrative: it
// maps noun phrases and pronouns, in context, to canonical entity identities.
//
// State is split in two, mirroring how antecedents actually behave in prose:
// agents, locations, events, and times are tracked for the whole narrative,
// while noun and event mentions are additionally tracked per paragraph and
// reset at paragraph boundaries. Pronoun antecedents rarely survive a
// paragraph break; named entities do.
package resolve

import "strings"

// Entity is the uniform role tuple passed between resolution and assembly.
// Subjects, objects, and prepositional objects are each lists of Entity.
type Entity struct {
	// Text is the surface string as it appeared in this mention.
	Text string
	// TypeTag is the composite number/gender/category tag.
	TypeTag string
	// Classes is the ordered ontology class list; never empty after
	// resolution (owl:Thing is the sentinel).
	Classes []string
	// ID is the canonical identifier, reused for all compatible references.
	ID string
}

// Record is a canonical entity tracked in narrative scope.
type Record struct {
	// Texts is the alternate-name set; any of them refers to this entity.
	Texts   []string
	TypeTag string
	Classes []string
	ID      string
}

// Entity returns a role tuple for a fresh mention of the record.
func (r *Record) Entity(text string) Entity {
	return Entity{Text: text, TypeTag: r.TypeTag, Classes: r.Classes, ID: r.ID}
}

// HasText reports whether any alternate name matches the text, either
// verbatim or by containment in whichever direction. The loose containment
// accommodates "Mary"/"Mary Smith" equivalence. Names of three or more words
// additionally require a word-boundary match to avoid substring accidents.
func (r *Record) HasText(text string) bool {
	needle := normalize(text)
	if needle == "" {
		return false
	}
	for _, alt := range r.Texts {
		have := normalize(alt)
		if have == needle {
			return true
		}
		longer, shorter := have, needle
		if len(shorter) > len(longer) {
			longer, shorter = shorter, longer
		}
		if strings.Count(shorter, " ") >= 2 {
			if containsWordBounded(longer, shorter) {
				return true
			}
			continue
		}
		if strings.Contains(longer, shorter) {
			return true
		}
	}
	return false
}

// AddText records a new alternate name if not already present.
func (r *Record) AddText(text string) {
	needle := normalize(text)
	for _, alt := range r.Texts {
		if normalize(alt) == needle {
			return
		}
	}
	r.Texts = append(r.Texts, text)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsWordBounded(text, phrase string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], phrase)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(phrase)
		beforeOK := start == 0 || text[start-1] == ' '
		afterOK := end == len(text) || text[end] == ' '
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

// tagsCompatible implements the loose type-tag match: the tags overlap when
// one is a substring of the other in either direction.
func tagsCompatible(a, b string) bool {
	if a == "" || b == "" {
		return true
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
