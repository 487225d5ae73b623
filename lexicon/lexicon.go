// Package lexicon holds the static lexical tables consulted during entity
// resolution, ontology mapping, and graph assembly: the NER-to-class map,
// pronoun sets, family-role genders, the modal auxiliary map, the
// multiple-inheritance override tables, the preposition-to-predicate rules,
// and the idiom grammar.
//
// Everything is parsed once by Load and never mutated afterwards. Components
// receive the *Lexicon by reference and treat it as read-only.
package lexicon

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed data/idioms.ngl
var defaultIdiomGrammar string

//go:embed data/prepositions.ngl
var defaultPrepositionRules string

// Lexicon bundles every lexical table. Construct with Load.
type Lexicon struct {
	// NounOverrides and VerbOverrides map a lowercased lemma directly to its
	// class list, bypassing the ontology service. Multi-class entries encode
	// multiple inheritance.
	NounOverrides map[string][]string
	VerbOverrides map[string][]string

	// Idioms are consulted before literal word-sense mapping.
	NounIdioms     map[string][]IdiomRule
	VerbIdioms     map[string][]IdiomRule
	VerbPrepIdioms map[string][]IdiomRule // keyed "lemma prep"

	// Prepositions maps a lowercased preposition to its predicate rule.
	Prepositions map[string]PrepRule

	// Revisions are the post-hoc predicate rewrite rules applied after all
	// verb processing for a clause completes.
	Revisions []RevisionRule
}

// Load parses the embedded tables. idiomPath and prepPath optionally override
// the embedded grammar files with on-disk copies (used with Watcher reloads);
// pass "" to use the defaults.
func Load(idiomPath, prepPath string) (*Lexicon, error) {
	idiomSrc := defaultIdiomGrammar
	if idiomPath != "" {
		data, err := os.ReadFile(idiomPath)
		if err != nil {
			return nil, fmt.Errorf("read idiom grammar: %w", err)
		}
		idiomSrc = string(data)
	}

	prepSrc := defaultPrepositionRules
	if prepPath != "" {
		data, err := os.ReadFile(prepPath)
		if err != nil {
			return nil, fmt.Errorf("read preposition rules: %w", err)
		}
		prepSrc = string(data)
	}

	lex := &Lexicon{
		NounOverrides: nounOverrides,
		VerbOverrides: verbOverrides,
	}

	noun, verb, vprep, err := parseIdiomGrammar(idiomSrc)
	if err != nil {
		return nil, fmt.Errorf("parse idiom grammar: %w", err)
	}
	lex.NounIdioms = noun
	lex.VerbIdioms = verb
	lex.VerbPrepIdioms = vprep

	preps, revisions, err := parsePrepositionRules(prepSrc)
	if err != nil {
		return nil, fmt.Errorf("parse preposition rules: %w", err)
	}
	lex.Prepositions = preps
	lex.Revisions = revisions

	return lex, nil
}

// MustLoad is Load with the embedded defaults, panicking on parse failure.
// The embedded grammars are covered by tests, so a panic here means a build
// shipped with a broken data file.
func MustLoad() *Lexicon {
	lex, err := Load("", "")
	if err != nil {
		panic(err)
	}
	return lex
}
