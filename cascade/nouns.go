package cascade

import (
	"strings"

	"github.com/c360studio/narragraph/lexicon"
	"github.com/c360studio/narragraph/vocabulary/onto"
)

// ClassifyNoun maps a noun phrase to an ordered list of class mappings.
// Returns nil when the cascade finds nothing; the caller supplies the
// sentinel. Implements resolve.NounClassifier.
func (m *Mapper) ClassifyNoun(text, typeTag, sentence string) []string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return nil
	}

	if classes, ok := m.lex.NounOverride(lower); ok {
		return []string{m.refine(JoinMulti(classes), true)}
	}
	if classes, ok := m.lex.NounOverride(headWord(lower)); ok {
		return []string{m.refine(JoinMulti(classes), true)}
	}

	if mapping := m.nounIdiom(lower, sentence); mapping != "" {
		return []string{m.refine(mapping, true)}
	}

	// A named-entity category is more trustworthy than an approximate
	// string match, so it wins over the fuzzy lookups.
	if category := nerCategory(typeTag); category != "" {
		if cls := lexicon.ClassForCategory(category); cls != onto.OwlThing {
			return []string{m.refine(cls, true)}
		}
	}

	if cls := m.lookupWithFallbacks(lower); cls != "" {
		return []string{m.refine(cls, true)}
	}

	m.logger.Debug("noun unmapped", "text", text, "type", typeTag)
	return nil
}

// nounIdiom returns the first noun idiom whose conditions hold in the
// sentence, or "".
func (m *Mapper) nounIdiom(lower, sentence string) string {
	rules, ok := m.lex.NounIdioms[lower]
	if !ok {
		rules, ok = m.lex.NounIdioms[headWord(lower)]
	}
	if !ok {
		return ""
	}
	for _, rule := range rules {
		if rule.Matches(sentence, false, nil) {
			return JoinMulti(rule.Classes)
		}
	}
	return ""
}

// nerCategoryOrder fixes the tag scan order so tags carrying more than one
// category fragment resolve the same way every run.
var nerCategoryOrder = []string{
	"PERSON", "NORP", "ORG", "GPE", "LOC", "FAC", "EVENT",
	"DATE", "TIME", "LAW", "LANGUAGE", "MONEY", "PRODUCT", "WORK_OF_ART",
}

// nerCategory extracts the named-entity category from a type tag, if any.
func nerCategory(typeTag string) string {
	for _, category := range nerCategoryOrder {
		if strings.Contains(typeTag, category) {
			return category
		}
	}
	return ""
}
