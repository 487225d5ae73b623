// Package parse defines the typed input model for narrative processing.
//
// Dependency parsing and named-entity recognition happen outside this
// repository; an external parser emits one JSON document per narrative in the
// shape decoded here. The engine consumes these structures read-only.
package parse

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParagraphBreak is the sentinel sentence text marking a paragraph boundary.
// Paragraph-scoped coreference state is reset when it is seen.
const ParagraphBreak = "new_line"

// Narrative is one parsed document.
type Narrative struct {
	Title     string     `json:"title"`
	Source    string     `json:"source"`
	Biography bool       `json:"biography"`
	Sentences []Sentence `json:"sentences"`
}

// Sentence is one parsed sentence, or the paragraph-break sentinel.
type Sentence struct {
	Text       string      `json:"text"`
	Offset     int         `json:"offset"`
	Clauses    []Clause    `json:"clauses"`
	Quotations []Quotation `json:"quotations"`
}

// IsParagraphBreak reports whether the sentence is the boundary sentinel.
func (s Sentence) IsParagraphBreak() bool {
	return s.Text == ParagraphBreak
}

// Quotation is a quoted span attributed to a speaker noun phrase.
type Quotation struct {
	Text    string `json:"text"`
	Speaker string `json:"speaker"`
}

// Clause carries one verb group and its grammatical roles.
type Clause struct {
	Subjects []NounPhrase `json:"subjects"`
	Verbs    []Verb       `json:"verbs"`
}

// Verb is a parsed verb with its dependents.
type Verb struct {
	Lemma        string        `json:"lemma"`
	Text         string        `json:"text"`
	Tense        string        `json:"tense"` // "past", "present", "future"
	Negated      bool          `json:"negated"`
	Particle     string        `json:"particle,omitempty"` // prt dependency ("up" in "gave up")
	Auxiliary    bool          `json:"auxiliary"`          // copula or aux-only root
	Modal        string        `json:"modal,omitempty"`    // "can", "must", ...
	Objects      []NounPhrase  `json:"objects"`
	Complements  []NounPhrase  `json:"complements"` // adjectival/nominal complements of copulas
	Prepositions []Preposition `json:"prepositions"`
	Xcomp        *Verb         `json:"xcomp,omitempty"`
}

// FullLemma returns the lemma with any phrasal particle folded in, so that
// "give up" classifies as a unit distinct from "give".
func (v Verb) FullLemma() string {
	if v.Particle == "" {
		return v.Lemma
	}
	return v.Lemma + " " + v.Particle
}

// Preposition is a preposition and its object noun phrases.
type Preposition struct {
	Word    string       `json:"word"`
	Objects []NounPhrase `json:"objects"`
}

// NounPhrase is a noun phrase with its NER-derived type tag.
type NounPhrase struct {
	Text         string        `json:"text"`
	TypeTag      string        `json:"type"` // composite, e.g. "FEMALESINGPERSON"
	Negated      bool          `json:"negated"`
	Prepositions []Preposition `json:"prepositions,omitempty"` // e.g. "of the band" under "one"
}

// Type tag fragments. A tag is built by concatenating modifiers, so
// membership is tested by substring, not equality.
const (
	TagSingular = "SING"
	TagPlural   = "PLURAL"
	TagFemale   = "FEMALE"
	TagMale     = "MALE"
	TagPerson   = "PERSON"
	TagCardinal = "CARDINAL"
)

// IsPlural reports whether the tag carries the plural marker.
func (n NounPhrase) IsPlural() bool { return strings.Contains(n.TypeTag, TagPlural) }

// IsPerson reports whether the tag carries the person marker.
func (n NounPhrase) IsPerson() bool { return strings.Contains(n.TypeTag, TagPerson) }

// IsCardinal reports whether the phrase is headed by a cardinal number.
func (n NounPhrase) IsCardinal() bool { return strings.Contains(n.TypeTag, TagCardinal) }

// Gender returns "FEMALE", "MALE", or "" when unmarked.
func (n NounPhrase) Gender() string {
	switch {
	case strings.Contains(n.TypeTag, TagFemale):
		return TagFemale
	case strings.Contains(n.TypeTag, TagMale):
		return TagMale
	default:
		return ""
	}
}

// Category returns the coarse NER category at the end of the tag, with
// number and gender modifiers stripped.
func (n NounPhrase) Category() string {
	tag := n.TypeTag
	for _, mod := range []string{TagFemale, TagMale, TagSingular, TagPlural} {
		tag = strings.ReplaceAll(tag, mod, "")
	}
	return tag
}

// DecodeNarrative decodes one parsed narrative document.
func DecodeNarrative(data []byte) (*Narrative, error) {
	var n Narrative
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("decode narrative: %w", err)
	}
	if len(n.Sentences) == 0 {
		return nil, fmt.Errorf("decode narrative: no sentences")
	}
	return &n, nil
}
