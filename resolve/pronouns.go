package resolve

import (
	"strings"

	"github.com/c360studio/narragraph/lexicon"
)

// matchCriteria constrain antecedent selection. Empty gender and nil
// singular mean unconstrained; person is a tri-state.
type matchCriteria struct {
	gender   string // "FEMALE", "MALE", or ""
	singular *bool  // nil = any number
	person   *bool  // nil = any
}

func boolPtr(b bool) *bool { return &b }

// ResolvePronoun resolves a personal or possessive pronoun against the
// paragraph-scoped noun history. Plural pronouns may return several
// antecedents; an unknown pronoun or empty history returns nil.
func (c *Context) ResolvePronoun(text string) []Entity {
	switch lexicon.ClassifyPronoun(text) {
	case lexicon.PronounFirstSingular:
		return []Entity{c.narrator.Entity(text)}

	case lexicon.PronounFirstPlural:
		// Any person noun from history; the narrator is implicitly part of
		// "we" and is always included.
		found := c.scanHistory(matchCriteria{person: boolPtr(true)}, true)
		return append(found, c.narrator.Entity(text))

	case lexicon.PronounThirdPlural:
		if found := c.scanHistory(matchCriteria{person: boolPtr(true)}, true); len(found) > 0 {
			return found
		}
		return c.scanHistory(matchCriteria{person: boolPtr(false)}, true)

	case lexicon.PronounFemale:
		return c.scanHistory(matchCriteria{gender: "FEMALE", singular: boolPtr(true), person: boolPtr(true)}, false)

	case lexicon.PronounMale:
		return c.scanHistory(matchCriteria{gender: "MALE", singular: boolPtr(true), person: boolPtr(true)}, false)

	case lexicon.PronounNeuter:
		return c.scanHistory(matchCriteria{singular: boolPtr(true), person: boolPtr(false)}, false)

	default:
		return nil
	}
}

// scanHistory walks the paragraph history most-recent-first. Scanning stops
// at the first paragraph boundary unless nothing at all has matched, in which
// case it continues into the prior paragraph. Candidates satisfying both the
// gender and number criteria beat partial matches; with no full match,
// singular pronouns take the single most recent partial match and plural
// pronouns take all of them.
func (c *Context) scanHistory(criteria matchCriteria, plural bool) []Entity {
	var full, partial []Entity
	seen := make(map[string]bool)

	for i := len(c.lastNouns) - 1; i >= 0; i-- {
		m := c.lastNouns[i]
		if m.boundary {
			if len(full) > 0 || len(partial) > 0 {
				break
			}
			continue
		}
		if seen[m.ent.ID] {
			continue
		}

		switch gradeMatch(m.ent, criteria) {
		case matchFull:
			seen[m.ent.ID] = true
			full = append(full, m.ent)
			if !plural {
				return full
			}
		case matchPartial:
			seen[m.ent.ID] = true
			partial = append(partial, m.ent)
		}
	}

	if len(full) > 0 {
		return full
	}
	if len(partial) == 0 {
		return nil
	}
	if !plural {
		return partial[:1]
	}
	return partial
}

type matchGrade int

const (
	matchNone matchGrade = iota
	matchPartial
	matchFull
)

// gradeMatch grades an entity against the criteria. The person criterion is
// a hard gate; gender and number admit partial satisfaction.
func gradeMatch(ent Entity, criteria matchCriteria) matchGrade {
	np := tagFacts(ent.TypeTag)

	if criteria.person != nil && np.person != *criteria.person {
		return matchNone
	}

	genderOK := criteria.gender == "" || np.gender == criteria.gender
	numberOK := criteria.singular == nil || np.singular == *criteria.singular

	switch {
	case genderOK && numberOK:
		return matchFull
	case genderOK || numberOK:
		return matchPartial
	default:
		return matchNone
	}
}

type tagInfo struct {
	gender   string
	singular bool
	person   bool
}

func tagFacts(typeTag string) tagInfo {
	info := tagInfo{singular: true}
	switch {
	case containsTag(typeTag, "FEMALE"):
		info.gender = "FEMALE"
	case containsTag(typeTag, "MALE"):
		info.gender = "MALE"
	}
	if containsTag(typeTag, "PLURAL") {
		info.singular = false
	}
	info.person = containsTag(typeTag, "PERSON")
	return info
}

func containsTag(tag, fragment string) bool {
	// FEMALE contains MALE; guard the male check.
	if fragment == "MALE" {
		return strings.Contains(tag, "MALE") && !strings.Contains(tag, "FEMALE")
	}
	return strings.Contains(tag, fragment)
}
