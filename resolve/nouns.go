package resolve

import (
	"strconv"
	"strings"

	"github.com/c360studio/narragraph/lexicon"
	"github.com/c360studio/narragraph/parse"
	"github.com/c360studio/narragraph/vocabulary/onto"
)

// Resolve maps a noun phrase to one or more canonical entities. Pronouns may
// resolve to several antecedents ("they"); everything else resolves to
// exactly one entity, minting a new one as the last resort. Resolve never
// fails: an unresolvable noun degenerates to a generic entity.
func (c *Context) Resolve(np parse.NounPhrase, sentence string) []Entity {
	if lexicon.IsPronoun(np.Text) {
		if found := c.ResolvePronoun(np.Text); len(found) > 0 {
			for _, ent := range found {
				c.recordNoun(ent)
			}
			return found
		}
		// No antecedent; fall through and treat the pronoun as a plain noun.
	}

	if np.IsCardinal() {
		if ent, ok := c.resolveCardinal(np, sentence); ok {
			c.recordNoun(ent)
			return []Entity{ent}
		}
	}

	ent := c.resolveNoun(np, sentence)
	c.recordNoun(ent)
	return []Entity{ent}
}

// resolveNoun runs the search cascade for a single noun phrase.
func (c *Context) resolveNoun(np parse.NounPhrase, sentence string) Entity {
	text := np.Text
	typeTag := np.TypeTag

	// Possessives: "Mary's father" resolves the possessed head with its own
	// tag so the owner's semantics don't corrupt it.
	if _, owned, ok := SplitPossessive(text); ok {
		text = owned
	}

	// 1. Paragraph-scoped history, most recent first: same normalized text
	// and loosely overlapping type tags.
	for i := len(c.lastNouns) - 1; i >= 0; i-- {
		m := c.lastNouns[i]
		if m.boundary {
			continue
		}
		if textsEquivalent(m.ent.Text, text) && tagsCompatible(m.ent.TypeTag, typeTag) {
			return Entity{Text: np.Text, TypeTag: m.ent.TypeTag, Classes: m.ent.Classes, ID: m.ent.ID}
		}
	}

	// 2. Narrative-scoped records by alternate-name containment. Agents
	// additionally require gender/type compatibility.
	for _, rec := range c.agents {
		if rec.HasText(text) && genderCompatible(rec.TypeTag, typeTag) {
			rec.AddText(text)
			ent := rec.Entity(np.Text)
			return ent
		}
	}
	for _, lists := range [][]*Record{c.locations, c.times, c.events} {
		for _, rec := range lists {
			if rec.HasText(text) {
				rec.AddText(text)
				return rec.Entity(np.Text)
			}
		}
	}

	// 3. Family-role reference: "her father" binds only when exactly one
	// narrative agent matches the role.
	if role, ok := lexicon.FamilyRole(text); ok {
		if rec, unique := c.uniqueAgentForRole(role); unique {
			rec.AddText(text)
			return rec.Entity(np.Text)
		}
	}

	// 4. Deverbal reference: "the attack" refers back to a previously
	// narrated event sharing the noun's resolved class.
	classes := c.classify(text, typeTag, sentence)
	for i := len(c.lastEvents) - 1; i >= 0; i-- {
		ev := c.lastEvents[i]
		if classListsOverlap(ev.Classes, classes) {
			return Entity{Text: np.Text, TypeTag: typeTag, Classes: ev.Classes, ID: ev.ID}
		}
	}

	// 5. Mint.
	rec := &Record{
		Texts:   []string{text},
		TypeTag: typeTag,
		Classes: classes,
		ID:      c.ids.mint(text),
	}
	c.register(rec)
	return rec.Entity(np.Text)
}

// resolveCardinal handles "one of the band": the head noun's prepositional
// object is resolved instead of the cardinal itself, plurality is adjusted
// from the cardinal's value, and the result is relabeled with the literal
// phrase while reusing the resolved mapping and identifier.
func (c *Context) resolveCardinal(np parse.NounPhrase, sentence string) (Entity, bool) {
	var inner *parse.NounPhrase
	for _, prep := range np.Prepositions {
		if strings.EqualFold(prep.Word, "of") && len(prep.Objects) > 0 {
			inner = &prep.Objects[0]
			break
		}
	}
	if inner == nil {
		return Entity{}, false
	}

	resolved := c.resolveNoun(*inner, sentence)

	tag := resolved.TypeTag
	if cardinalValue(np.Text) < 2 {
		tag = strings.ReplaceAll(tag, parse.TagPlural, parse.TagSingular)
	} else if !strings.Contains(tag, parse.TagPlural) {
		tag = parse.TagPlural + tag
	}

	return Entity{Text: np.Text, TypeTag: tag, Classes: resolved.Classes, ID: resolved.ID}, true
}

// cardinalValue extracts the numeric value of the leading cardinal word.
func cardinalValue(text string) int {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 1
	}
	if n, err := strconv.Atoi(words[0]); err == nil {
		return n
	}
	small := map[string]int{
		"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
		"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
		"both": 2, "several": 3, "many": 3, "few": 3,
	}
	if n, ok := small[words[0]]; ok {
		return n
	}
	return 1
}

// uniqueAgentForRole finds the single agent whose alternate names carry the
// family role. Ambiguous references (several candidates) fall through.
func (c *Context) uniqueAgentForRole(role string) (*Record, bool) {
	var found *Record
	for _, rec := range c.agents {
		for _, alt := range rec.Texts {
			if r, ok := lexicon.FamilyRole(alt); ok && r == role {
				if found != nil && found != rec {
					return nil, false
				}
				found = rec
				break
			}
		}
	}
	return found, found != nil
}

func (c *Context) classify(text, typeTag, sentence string) []string {
	if c.classifier != nil {
		if classes := c.classifier.ClassifyNoun(text, typeTag, sentence); len(classes) > 0 {
			return classes
		}
	}
	if cls := lexicon.ClassForCategory(categoryOf(typeTag)); cls != onto.OwlThing {
		return []string{cls}
	}
	return []string{onto.OwlThing}
}

// SplitPossessive splits "Mary's father" into owner "Mary" and owned
// "father". The third return is false for phrases without a possessive
// marker.
func SplitPossessive(text string) (owner, owned string, ok bool) {
	for _, marker := range []string{"'s ", "s' "} {
		if i := strings.Index(text, marker); i > 0 {
			cut := i
			if marker == "s' " {
				cut = i + 1
			}
			owner = strings.TrimSpace(text[:cut])
			owned = strings.TrimSpace(text[i+len(marker):])
			if owner != "" && owned != "" {
				return owner, owned, true
			}
		}
	}
	// Possessive-pronoun modifier: "her father".
	words := strings.Fields(text)
	if len(words) >= 2 && lexicon.IsPossessivePronoun(words[0]) {
		return words[0], strings.Join(words[1:], " "), true
	}
	return "", "", false
}

func textsEquivalent(a, b string) bool {
	na, nb := normalize(a), normalize(b)
	if na == nb {
		return true
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

// genderCompatible requires agreement only when both tags mark a gender.
func genderCompatible(a, b string) bool {
	ga, gb := tagFacts(a).gender, tagFacts(b).gender
	return ga == "" || gb == "" || ga == gb
}

func classListsOverlap(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y && x != onto.OwlThing && x != onto.EventAndState {
				return true
			}
		}
	}
	return false
}
