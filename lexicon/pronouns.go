package lexicon

import "strings"

// PronounClass partitions the closed pronoun set by resolution strategy.
type PronounClass int

const (
	// PronounNone marks text that is not a personal or possessive pronoun.
	PronounNone PronounClass = iota
	// PronounFirstSingular resolves to the fixed Narrator entity.
	PronounFirstSingular
	// PronounFirstPlural resolves to person nouns from history plus the Narrator.
	PronounFirstPlural
	// PronounThirdPlural prefers person matches, falling back to non-person.
	PronounThirdPlural
	// PronounFemale requires female + singular + person agreement.
	PronounFemale
	// PronounMale requires male + singular + person agreement.
	PronounMale
	// PronounNeuter ("it") requires singular + non-person.
	PronounNeuter
)

var pronounClasses = map[string]PronounClass{
	"i": PronounFirstSingular, "me": PronounFirstSingular,
	"my": PronounFirstSingular, "mine": PronounFirstSingular,
	"myself": PronounFirstSingular,

	"we": PronounFirstPlural, "us": PronounFirstPlural,
	"our": PronounFirstPlural, "ours": PronounFirstPlural,
	"ourselves": PronounFirstPlural,

	"they": PronounThirdPlural, "them": PronounThirdPlural,
	"their": PronounThirdPlural, "theirs": PronounThirdPlural,
	"themselves": PronounThirdPlural,

	"she": PronounFemale, "her": PronounFemale,
	"hers": PronounFemale, "herself": PronounFemale,

	"he": PronounMale, "him": PronounMale,
	"his": PronounMale, "himself": PronounMale,

	"it": PronounNeuter, "its": PronounNeuter, "itself": PronounNeuter,
}

// ClassifyPronoun returns the pronoun class for text, or PronounNone.
func ClassifyPronoun(text string) PronounClass {
	cls, ok := pronounClasses[strings.ToLower(strings.TrimSpace(text))]
	if !ok {
		return PronounNone
	}
	return cls
}

// IsPronoun reports whether text is in the closed pronoun set.
func IsPronoun(text string) bool {
	return ClassifyPronoun(text) != PronounNone
}

var possessivePronouns = map[string]bool{
	"my": true, "mine": true, "our": true, "ours": true,
	"their": true, "theirs": true, "her": true, "hers": true,
	"his": true, "its": true,
}

// IsPossessivePronoun reports whether text is a possessive pronoun form.
func IsPossessivePronoun(text string) bool {
	return possessivePronouns[strings.ToLower(strings.TrimSpace(text))]
}
