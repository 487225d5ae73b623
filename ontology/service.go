// Package ontology provides the ontology lookup service consumed by the
// mapping cascade: ranked text-to-class matching and transitive subclass
// queries.
//
// The default implementation is an in-process Index built from an embedded
// class catalog. The contract is lookup-miss friendly: a query that matches
// nothing returns an empty slice, never an error, and callers fall through to
// their next strategy.
package ontology

// QueryTemplate names one matching strategy, in descending confidence order.
type QueryTemplate string

const (
	// TemplateExact matches the text against a label, synonym, or example
	// verbatim.
	TemplateExact QueryTemplate = "exact"
	// TemplateSynonymContainsText matches when a synonym contains the text.
	TemplateSynonymContainsText QueryTemplate = "synonym_contains_text"
	// TemplateTextContainsSynonym matches when the text contains a synonym.
	TemplateTextContainsSynonym QueryTemplate = "text_contains_synonym"
	// TemplateLabelContainsText matches when a class label contains the text.
	TemplateLabelContainsText QueryTemplate = "label_contains_text"
	// TemplateTextContainsLabel matches when the text contains a class label.
	TemplateTextContainsLabel QueryTemplate = "text_contains_label"
	// TemplateExampleContainsText matches when a usage example contains the
	// text.
	TemplateExampleContainsText QueryTemplate = "example_contains_text"
)

// AllTemplates is the full cascade order.
var AllTemplates = []QueryTemplate{
	TemplateExact,
	TemplateSynonymContainsText,
	TemplateTextContainsSynonym,
	TemplateLabelContainsText,
	TemplateTextContainsLabel,
	TemplateExampleContainsText,
}

// Scores per template. Exact is the only full-confidence template; the
// approximate templates step down from there.
var templateScores = map[QueryTemplate]int{
	TemplateExact:               100,
	TemplateSynonymContainsText: 85,
	TemplateTextContainsSynonym: 80,
	TemplateLabelContainsText:   75,
	TemplateTextContainsLabel:   70,
	TemplateExampleContainsText: 65,
}

// Result is one ranked match.
type Result struct {
	// Class is the prefixed local name, e.g. ":MovementTravelAndTransportation".
	Class string
	// Score is the confidence in [0, 100].
	Score int
	// Template identifies which strategy produced the match.
	Template QueryTemplate
}

// Service answers class-matching and subclass queries.
type Service interface {
	// Match returns ranked results for the text using the given templates,
	// confidence descending. An empty slice means no match; Match never
	// fails.
	Match(text string, templates []QueryTemplate) []Result

	// IsSubclassOf reports whether class is ancestor or a transitive
	// descendant of it. Unknown classes are nobody's subclass.
	IsSubclassOf(class, ancestor string) bool
}
