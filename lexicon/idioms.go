package lexicon

import (
	"fmt"
	"strings"
)

// IdiomRule is one parsed idiom clause. Idioms override literal word-sense
// mapping: when a rule's keyword and role preconditions hold, its classes
// replace whatever the cascade would otherwise produce.
type IdiomRule struct {
	// Classes is the ontology class list; >1 entry encodes multiple
	// inheritance.
	Classes []string

	// Keyword, when set, must appear literally in the sentence.
	Keyword string

	// NeedsObj requires a direct object; ObjPredicate attaches it.
	NeedsObj     bool
	ObjPredicate string

	// PrepWord, when set, requires a prepositional object of that
	// preposition; PrepPredicate attaches it.
	PrepWord      string
	PrepPredicate string

	// SubjPredicate overrides the default subject predicate when set.
	SubjPredicate string

	// XcompClass is folded into the clause's xcomp slot when set.
	XcompClass string

	// Env marks an EnvironmentAndCondition-type clause. Every matching env
	// rule applies; for all other rules the first match wins.
	Env bool
}

// Matches reports whether the rule's preconditions hold for a sentence with
// the given role availability.
func (r IdiomRule) Matches(sentence string, hasObj bool, preps []string) bool {
	if r.Keyword != "" && !containsWord(sentence, r.Keyword) {
		return false
	}
	if r.NeedsObj && !hasObj {
		return false
	}
	if r.PrepWord != "" {
		found := false
		for _, p := range preps {
			if strings.EqualFold(p, r.PrepWord) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// containsWord checks for a word-boundary occurrence, case-insensitively.
func containsWord(text, word string) bool {
	text = strings.ToLower(text)
	word = strings.ToLower(word)
	idx := 0
	for {
		i := strings.Index(text[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isWordByte(text[start-1])
		afterOK := end == len(text) || !isWordByte(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '\''
}

// parseIdiomGrammar parses the idiom grammar source into the three lexical
// dictionaries. See data/idioms.ngl for the grammar.
func parseIdiomGrammar(src string) (noun, verb, vprep map[string][]IdiomRule, err error) {
	noun = make(map[string][]IdiomRule)
	verb = make(map[string][]IdiomRule)
	vprep = make(map[string][]IdiomRule)

	for lineNo, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		section, rest, ok := strings.Cut(line, " ")
		if !ok {
			return nil, nil, nil, fmt.Errorf("line %d: malformed entry", lineNo+1)
		}

		var dict map[string][]IdiomRule
		switch section {
		case "noun":
			dict = noun
		case "verb":
			dict = verb
		case "vprep":
			dict = vprep
		default:
			return nil, nil, nil, fmt.Errorf("line %d: unknown section %q", lineNo+1, section)
		}

		lemma, ruleSrc, err := splitEntry(rest)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("line %d: %w", lineNo+1, err)
		}

		for _, clause := range strings.Split(ruleSrc, ";") {
			rule, err := parseIdiomRule(clause)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("line %d: %w", lineNo+1, err)
			}
			dict[lemma] = append(dict[lemma], rule)
		}
	}

	return noun, verb, vprep, nil
}

// splitEntry separates the quoted lemma from the rule body.
func splitEntry(src string) (lemma, rule string, err error) {
	src = strings.TrimSpace(src)
	if !strings.HasPrefix(src, `"`) {
		return "", "", fmt.Errorf("lemma must be quoted")
	}
	end := strings.Index(src[1:], `"`)
	if end < 0 {
		return "", "", fmt.Errorf("unterminated lemma")
	}
	lemma = strings.ToLower(src[1 : 1+end])
	rest := strings.TrimSpace(src[end+2:])
	body, ok := strings.CutPrefix(rest, ":=")
	if !ok {
		return "", "", fmt.Errorf("missing ':='")
	}
	return lemma, strings.TrimSpace(body), nil
}

func parseIdiomRule(src string) (IdiomRule, error) {
	var rule IdiomRule
	for _, tok := range tokenizeRule(src) {
		switch {
		case strings.HasPrefix(tok, ":"):
			// class_list: "+"-joined prefixed names
			for _, cls := range strings.Split(tok, "+") {
				if !strings.HasPrefix(cls, ":") {
					return IdiomRule{}, fmt.Errorf("class %q must be prefixed", cls)
				}
				rule.Classes = append(rule.Classes, cls)
			}
		case strings.HasPrefix(tok, "keyword("):
			rule.Keyword = argOf(tok, "keyword")
		case strings.HasPrefix(tok, "obj("):
			rule.NeedsObj = true
			rule.ObjPredicate = argOf(tok, "obj")
		case strings.HasPrefix(tok, "subj("):
			rule.SubjPredicate = argOf(tok, "subj")
		case strings.HasPrefix(tok, "xcomp("):
			rule.XcompClass = argOf(tok, "xcomp")
		case strings.HasPrefix(tok, "prep("):
			arg := argOf(tok, "prep")
			word, pred, ok := strings.Cut(arg, " ")
			if !ok || !strings.HasPrefix(pred, ":") {
				return IdiomRule{}, fmt.Errorf("malformed prep rule %q", tok)
			}
			rule.PrepWord = strings.ToLower(word)
			rule.PrepPredicate = pred
		case tok == "env":
			rule.Env = true
		default:
			return IdiomRule{}, fmt.Errorf("unknown item %q", tok)
		}
	}
	if len(rule.Classes) == 0 {
		return IdiomRule{}, fmt.Errorf("rule has no classes")
	}
	return rule, nil
}

// tokenizeRule splits on whitespace but keeps parenthesized arguments, which
// may themselves contain spaces, attached to their item.
func tokenizeRule(src string) []string {
	var toks []string
	var cur strings.Builder
	depth := 0
	for _, r := range src {
		switch {
		case r == '(':
			depth++
			cur.WriteRune(r)
		case r == ')':
			depth--
			cur.WriteRune(r)
		case (r == ' ' || r == '\t') && depth == 0:
			if cur.Len() > 0 {
				toks = append(toks, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		toks = append(toks, cur.String())
	}
	return toks
}

func argOf(tok, name string) string {
	return strings.TrimSuffix(strings.TrimPrefix(tok, name+"("), ")")
}
