package cascade

import (
	"strings"

	"github.com/c360studio/narragraph/lexicon"
	"github.com/c360studio/narragraph/parse"
	"github.com/c360studio/narragraph/vocabulary/onto"
)

// VerbResult is a classified verb: its ordered class mappings plus any
// idiom that matched, since the idiom carries role predicates the graph
// assembler needs.
type VerbResult struct {
	Mappings []string
	Idiom    *lexicon.IdiomRule
	Env      []lexicon.IdiomRule
	Modal    string
}

// ClassifyVerb maps a verb to its class mappings. narratorSubject shifts
// obligation modals toward intention when the narrator is among the
// subjects. Always returns at least the :EventAndState sentinel.
func (m *Mapper) ClassifyVerb(v parse.Verb, sentence string, narratorSubject bool) VerbResult {
	result := VerbResult{}
	if v.Modal != "" {
		if cls, ok := lexicon.ModalClass(v.Modal, v.Tense, narratorSubject); ok {
			result.Modal = cls
		}
	}

	full := strings.ToLower(v.FullLemma())
	lemma := strings.ToLower(v.Lemma)
	hasObj := len(v.Objects) > 0
	var preps []string
	for _, p := range v.Prepositions {
		preps = append(preps, strings.ToLower(p.Word))
	}

	if classes, ok := m.lex.VerbOverride(full); ok {
		result.Mappings = []string{m.refine(JoinMulti(classes), false)}
		return result
	}
	if full != lemma {
		if classes, ok := m.lex.VerbOverride(lemma); ok {
			result.Mappings = []string{m.refine(JoinMulti(classes), false)}
			return result
		}
	}

	if rule, env := m.verbIdiom(full, lemma, preps, sentence, hasObj); rule != nil || len(env) > 0 {
		result.Env = env
		if rule != nil {
			result.Idiom = rule
			result.Mappings = []string{m.refine(JoinMulti(rule.Classes), false)}
			return result
		}
	}

	if cls := m.lookupWithFallbacks(full); cls != "" {
		result.Mappings = []string{m.refine(cls, false)}
		return result
	}
	if full != lemma {
		if cls := m.lookupWithFallbacks(lemma); cls != "" {
			result.Mappings = []string{m.refine(cls, false)}
			return result
		}
	}

	m.logger.Debug("verb unmapped", "lemma", full)
	result.Mappings = []string{onto.EventAndState}
	return result
}

// verbIdiom checks verb-preposition idioms first, then plain verb idioms.
// Env rules match alongside a structural rule rather than instead of one.
func (m *Mapper) verbIdiom(full, lemma string, preps []string, sentence string, hasObj bool) (*lexicon.IdiomRule, []lexicon.IdiomRule) {
	var winner *lexicon.IdiomRule
	var env []lexicon.IdiomRule

	consider := func(rules []lexicon.IdiomRule) {
		for i := range rules {
			rule := rules[i]
			if !rule.Matches(sentence, hasObj, preps) {
				continue
			}
			if rule.Env {
				env = append(env, rule)
				continue
			}
			if winner == nil {
				winner = &rules[i]
			}
		}
	}

	for _, prep := range preps {
		consider(m.lex.VerbPrepIdioms[lemma+" "+prep])
	}
	consider(m.lex.VerbIdioms[full])
	if full != lemma {
		consider(m.lex.VerbIdioms[lemma])
	}
	return winner, env
}

// aspectual classes take their meaning from what they continue, start, or
// end, so a bare one is folded together with the class of its topic event.
var aspectual = map[string]bool{
	onto.Continuation: true,
	onto.Start:        true,
	onto.End:          true,
	onto.Success:      true,
	onto.Failure:      true,
	onto.Attempt:      true,
}

// FoldTopic merges the topic event's leading class into a bare aspectual
// mapping. Mappings that already carry multiple inheritance, and
// non-aspectual mappings, pass through unchanged.
func FoldTopic(mapping, topicMapping string) string {
	if mapping == "" || topicMapping == "" || IsMulti(mapping) || !aspectual[mapping] {
		return mapping
	}
	topic := SplitMulti(topicMapping)[0]
	if topic == "" || topic == mapping || topic == onto.EventAndState {
		return mapping
	}
	return mapping + "+" + topic
}
