// Package cascade maps noun and verb text onto ontology classes using a
// fixed fallback order: override table, idiom match, exact match, approximate
// matches in descending confidence, head-word/lemma/synonym retries, and
// finally a sentinel class. Lookup misses are normal; the cascade never
// fails.
package cascade

import (
	"log/slog"
	"strings"

	"github.com/c360studio/narragraph/lexicon"
	"github.com/c360studio/narragraph/ontology"
	"github.com/c360studio/narragraph/vocabulary/onto"
)

// minTextLen guards the approximate-match paths: texts shorter than this
// never classify approximately, and candidate classes whose local name is
// this short or shorter are rejected ("End" must not fire on "friend").
const minTextLen = 5

// Mapper runs the cascade. Immutable after construction.
type Mapper struct {
	lex    *lexicon.Lexicon
	svc    ontology.Service
	logger *slog.Logger
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mapper) { m.logger = logger }
}

// New creates a Mapper over the given lexicon and ontology service.
func New(lex *lexicon.Lexicon, svc ontology.Service, opts ...Option) *Mapper {
	m := &Mapper{lex: lex, svc: svc, logger: slog.Default()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// JoinMulti encodes a multiple-inheritance class list as one mapping entry.
func JoinMulti(classes []string) string {
	return strings.Join(classes, "+")
}

// SplitMulti decodes a mapping entry back into its classes.
func SplitMulti(mapping string) []string {
	return strings.Split(mapping, "+")
}

// IsMulti reports whether a mapping entry encodes multiple inheritance.
func IsMulti(mapping string) bool {
	return strings.Contains(mapping, "+")
}

// subclassOfAny reports whether any class in the mapping entry is a
// transitive subclass of ancestor.
func (m *Mapper) subclassOfAny(mapping, ancestor string) bool {
	for _, cls := range SplitMulti(mapping) {
		if m.svc.IsSubclassOf(cls, ancestor) {
			return true
		}
	}
	return false
}

// lookup runs exact-then-approximate ontology matching for a single text,
// applying the anti-false-positive guards. Returns "" on no acceptable
// match.
func (m *Mapper) lookup(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	// Exact match carries full confidence and skips the length guards.
	if results := m.svc.Match(text, []ontology.QueryTemplate{ontology.TemplateExact}); len(results) > 0 {
		return results[0].Class
	}

	// Short text short-circuits to "no match" before any approximate query.
	if len(text) < minTextLen {
		return ""
	}

	approx := []ontology.QueryTemplate{
		ontology.TemplateSynonymContainsText,
		ontology.TemplateTextContainsSynonym,
		ontology.TemplateLabelContainsText,
		ontology.TemplateTextContainsLabel,
		ontology.TemplateExampleContainsText,
	}
	for _, result := range m.svc.Match(text, approx) {
		if len(ontology.LocalName(result.Class)) > minTextLen {
			return result.Class
		}
	}
	return ""
}

// lookupWithFallbacks tries the text, then its head word, then a crude
// lemma, then a more common synonym from the built-in dictionary.
func (m *Mapper) lookupWithFallbacks(text string) string {
	if cls := m.lookup(text); cls != "" {
		return cls
	}

	head := headWord(text)
	if head != text {
		if cls := m.lookup(head); cls != "" {
			return cls
		}
	}

	if lemma := crudeLemma(head); lemma != head {
		if cls := m.lookup(lemma); cls != "" {
			return cls
		}
	}

	if syn, ok := commonSynonym(head); ok {
		if cls := m.lookup(syn); cls != "" {
			return cls
		}
	}

	return ""
}

// headWord returns the final word of a phrase, determiners aside.
func headWord(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	return words[len(words)-1]
}

// crudeLemma strips common inflectional suffixes. Good enough for retry
// lookups; the exact-match path already saw the raw form.
func crudeLemma(word string) string {
	lower := strings.ToLower(word)
	switch {
	case strings.HasSuffix(lower, "ies") && len(lower) > 4:
		return lower[:len(lower)-3] + "y"
	case strings.HasSuffix(lower, "ing") && len(lower) > 5:
		return lower[:len(lower)-3]
	case strings.HasSuffix(lower, "ed") && len(lower) > 4:
		return lower[:len(lower)-2]
	case strings.HasSuffix(lower, "es") && len(lower) > 4:
		return lower[:len(lower)-2]
	case strings.HasSuffix(lower, "s") && len(lower) > 3 && !strings.HasSuffix(lower, "ss"):
		return lower[:len(lower)-1]
	}
	return lower
}

// refine applies the post-processing tags to a mapping entry: movement and
// location ancestry are folded in as extra inheritance, and emotional
// responses are tagged with their polarity subtype. Simplifies downstream
// origin/location logic.
func (m *Mapper) refine(mapping string, noun bool) string {
	classes := SplitMulti(mapping)
	out := make([]string, 0, len(classes)+1)
	tags := make(map[string]bool)
	out = append(out, classes...)

	add := func(tag string) {
		if !tags[tag] && !contains(out, tag) {
			tags[tag] = true
			out = append(out, tag)
		}
	}

	for _, cls := range classes {
		if cls != onto.MovementTravelAndTransportation && m.svc.IsSubclassOf(cls, onto.MovementTravelAndTransportation) {
			add(onto.MovementTravelAndTransportation)
		}
		if noun && cls != onto.Location && m.svc.IsSubclassOf(cls, onto.Location) {
			add(onto.Location)
		}
		if cls != onto.PositiveEmotion && m.svc.IsSubclassOf(cls, onto.PositiveEmotion) {
			add(onto.PositiveEmotion)
		}
		if cls != onto.NegativeEmotion && m.svc.IsSubclassOf(cls, onto.NegativeEmotion) {
			add(onto.NegativeEmotion)
		}
	}
	return JoinMulti(out)
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
