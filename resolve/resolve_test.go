package resolve

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/narragraph/parse"
	"github.com/c360studio/narragraph/vocabulary/onto"
)

// stubClassifier returns canned class lists keyed by lowercased text.
type stubClassifier struct {
	classes map[string][]string
}

func (s stubClassifier) ClassifyNoun(text, typeTag, sentence string) []string {
	return s.classes[strings.ToLower(text)]
}

func newTestContext() *Context {
	return NewContext(stubClassifier{classes: map[string][]string{
		"mary":       {onto.Person},
		"joe":        {onto.Person},
		"band":       {onto.OrganizationalEntity, onto.GroupOfAgents},
		"attack":     {onto.AggressiveCriminalOrHostileAct},
		"the attack": {onto.AggressiveCriminalOrHostileAct},
		"prague":     {onto.PopulatedPlace},
	}}, nil)
}

func np(text, tag string) parse.NounPhrase {
	return parse.NounPhrase{Text: text, TypeTag: tag}
}

func TestResolveMintsNewEntity(t *testing.T) {
	c := newTestContext()
	ents := c.Resolve(np("Mary", "FEMALESINGPERSON"), "Mary sang.")
	require.Len(t, ents, 1)
	assert.Equal(t, ":Mary", ents[0].ID)
	assert.Equal(t, []string{onto.Person}, ents[0].Classes)
}

func TestResolveReusesIDForRepeatedMention(t *testing.T) {
	c := newTestContext()
	first := c.Resolve(np("Mary", "FEMALESINGPERSON"), "")
	second := c.Resolve(np("Mary", "FEMALESINGPERSON"), "")
	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestResolveAlternateNameContainment(t *testing.T) {
	c := newTestContext()
	first := c.Resolve(np("Mary Smith", "FEMALESINGPERSON"), "")
	second := c.Resolve(np("Mary", "FEMALESINGPERSON"), "")
	assert.Equal(t, first[0].ID, second[0].ID, "shorter name binds to the longer one")
}

func TestResolveFemalePronoun(t *testing.T) {
	c := newTestContext()
	mary := c.Resolve(np("Mary", "FEMALESINGPERSON"), "")
	c.Resolve(np("Joe", "MALESINGPERSON"), "")

	ents := c.Resolve(np("she", ""), "")
	require.Len(t, ents, 1)
	assert.Equal(t, mary[0].ID, ents[0].ID)
}

func TestResolveMalePronounSkipsFemale(t *testing.T) {
	c := newTestContext()
	c.Resolve(np("Mary", "FEMALESINGPERSON"), "")
	joe := c.Resolve(np("Joe", "MALESINGPERSON"), "")

	ents := c.Resolve(np("he", ""), "")
	require.Len(t, ents, 1)
	assert.Equal(t, joe[0].ID, ents[0].ID)
}

func TestPronounStopsAtParagraphBoundary(t *testing.T) {
	c := newTestContext()
	c.Resolve(np("Mary", "FEMALESINGPERSON"), "")
	c.NewParagraph()
	anna := c.Resolve(np("Anna", "FEMALESINGPERSON"), "")

	ents := c.Resolve(np("she", ""), "")
	require.Len(t, ents, 1)
	assert.Equal(t, anna[0].ID, ents[0].ID, "boundary hides the earlier paragraph")
}

func TestPronounCrossesBoundaryWhenParagraphIsEmpty(t *testing.T) {
	c := newTestContext()
	mary := c.Resolve(np("Mary", "FEMALESINGPERSON"), "")
	c.NewParagraph()

	ents := c.Resolve(np("she", ""), "")
	require.Len(t, ents, 1)
	assert.Equal(t, mary[0].ID, ents[0].ID, "empty paragraph falls back to the previous one")
}

func TestFirstSingularResolvesToNarrator(t *testing.T) {
	c := newTestContext()
	ents := c.Resolve(np("I", ""), "")
	require.Len(t, ents, 1)
	assert.Equal(t, NarratorID, ents[0].ID)
}

func TestFirstPluralIncludesNarrator(t *testing.T) {
	c := newTestContext()
	mary := c.Resolve(np("Mary", "FEMALESINGPERSON"), "")

	ents := c.Resolve(np("we", ""), "")
	ids := make(map[string]bool)
	for _, e := range ents {
		ids[e.ID] = true
	}
	assert.True(t, ids[NarratorID])
	assert.True(t, ids[mary[0].ID])
}

func TestThirdPluralPrefersPersons(t *testing.T) {
	c := newTestContext()
	c.Resolve(np("the train", "SINGPRODUCT"), "")
	mary := c.Resolve(np("Mary", "FEMALESINGPERSON"), "")
	joe := c.Resolve(np("Joe", "MALESINGPERSON"), "")

	ents := c.Resolve(np("they", ""), "")
	require.Len(t, ents, 2)
	ids := map[string]bool{ents[0].ID: true, ents[1].ID: true}
	assert.True(t, ids[mary[0].ID])
	assert.True(t, ids[joe[0].ID])
}

func TestNeuterPronounPicksNonPerson(t *testing.T) {
	c := newTestContext()
	c.Resolve(np("Mary", "FEMALESINGPERSON"), "")
	train := c.Resolve(np("the train", "SINGPRODUCT"), "")

	ents := c.Resolve(np("it", ""), "")
	require.Len(t, ents, 1)
	assert.Equal(t, train[0].ID, ents[0].ID)
}

func TestPronounWithoutAntecedentMints(t *testing.T) {
	c := newTestContext()
	ents := c.Resolve(np("it", "SING"), "")
	require.Len(t, ents, 1)
	assert.NotEmpty(t, ents[0].ID)
}

func TestResolveCardinalOfGroup(t *testing.T) {
	c := newTestContext()
	band := c.Resolve(np("the band", "PLURALORG"), "")

	one := parse.NounPhrase{
		Text:    "one of the band",
		TypeTag: "SINGCARDINAL",
		Prepositions: []parse.Preposition{
			{Word: "of", Objects: []parse.NounPhrase{np("the band", "PLURALORG")}},
		},
	}
	ents := c.Resolve(one, "")
	require.Len(t, ents, 1)
	assert.Equal(t, band[0].ID, ents[0].ID, "cardinal reuses the group identity")
	assert.Equal(t, band[0].Classes, ents[0].Classes)
	assert.Equal(t, "one of the band", ents[0].Text)
	assert.NotContains(t, ents[0].TypeTag, parse.TagPlural, "a count of one reads singular")
}

func TestResolveCardinalPluralCount(t *testing.T) {
	c := newTestContext()
	c.Resolve(np("the band", "SINGORG"), "")

	two := parse.NounPhrase{
		Text:    "two of the band",
		TypeTag: "SINGCARDINAL",
		Prepositions: []parse.Preposition{
			{Word: "of", Objects: []parse.NounPhrase{np("the band", "SINGORG")}},
		},
	}
	ents := c.Resolve(two, "")
	require.Len(t, ents, 1)
	assert.Contains(t, ents[0].TypeTag, parse.TagPlural)
}

func TestCardinalWithoutOfPhraseFallsThrough(t *testing.T) {
	c := newTestContext()
	ents := c.Resolve(np("one", "SINGCARDINAL"), "")
	require.Len(t, ents, 1)
	assert.NotEmpty(t, ents[0].ID)
}

func TestSplitPossessive(t *testing.T) {
	owner, owned, ok := SplitPossessive("Mary's father")
	require.True(t, ok)
	assert.Equal(t, "Mary", owner)
	assert.Equal(t, "father", owned)

	owner, owned, ok = SplitPossessive("her father")
	require.True(t, ok)
	assert.Equal(t, "her", owner)
	assert.Equal(t, "father", owned)

	owner, owned, ok = SplitPossessive("the soldiers' camp")
	require.True(t, ok)
	assert.Equal(t, "the soldiers", owner)
	assert.Equal(t, "camp", owned)

	_, _, ok = SplitPossessive("Mary")
	assert.False(t, ok)
}

func TestFamilyRoleResolvesUniqueAgent(t *testing.T) {
	c := newTestContext()
	father := c.Resolve(np("her father", "MALESINGPERSON"), "")

	again := c.Resolve(np("my father", "MALESINGPERSON"), "")
	assert.Equal(t, father[0].ID, again[0].ID, "a single role holder binds the reference")
}

func TestUniqueAgentForRole(t *testing.T) {
	c := newTestContext()
	c.agents = append(c.agents,
		&Record{Texts: []string{"Anna", "my sister"}, ID: ":Anna"},
		&Record{Texts: []string{"Joe"}, ID: ":Joe"},
	)

	rec, ok := c.uniqueAgentForRole("sister")
	require.True(t, ok)
	assert.Equal(t, ":Anna", rec.ID)

	_, ok = c.uniqueAgentForRole("brother")
	assert.False(t, ok)

	// A second role holder makes the reference ambiguous.
	c.agents = append(c.agents, &Record{Texts: []string{"Eva", "his sister"}, ID: ":Eva"})
	_, ok = c.uniqueAgentForRole("sister")
	assert.False(t, ok)
}

func TestDeverbalNounRefersToEvent(t *testing.T) {
	c := newTestContext()
	c.RecordEvent("attack", ":Event_attack", []string{onto.AggressiveCriminalOrHostileAct})

	ents := c.Resolve(np("the attack", "SING"), "")
	require.Len(t, ents, 1)
	assert.Equal(t, ":Event_attack", ents[0].ID)
	assert.Equal(t, []string{onto.AggressiveCriminalOrHostileAct}, ents[0].Classes)
}

func TestDeverbalNounByClassOverlap(t *testing.T) {
	c := newTestContext()
	c.RecordEvent("storm", ":Event_storm", []string{onto.AggressiveCriminalOrHostileAct})

	// "the attack" never appeared as text; it binds through its resolved
	// class overlapping the narrated event's.
	ents := c.Resolve(np("the attack", "SING"), "")
	require.Len(t, ents, 1)
	assert.Equal(t, ":Event_storm", ents[0].ID)
}

func TestMinterCollisionGetsSuffix(t *testing.T) {
	m := newMinter()
	first := m.mint("Mary")
	second := m.mint("Mary")
	assert.Equal(t, ":Mary", first)
	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(second, ":Mary_"))
}

func TestMintSanitizesLabel(t *testing.T) {
	m := newMinter()
	assert.Equal(t, ":TheIronGuard", m.mint("the iron guard"))
	assert.Equal(t, ":Entity", m.mint("!!!"))
}

func TestRegisterRoutesByCategory(t *testing.T) {
	c := newTestContext()
	c.Resolve(np("Prague", "SINGGPE"), "")
	c.Resolve(np("Mary", "FEMALESINGPERSON"), "")

	require.Len(t, c.Locations(), 1)
	assert.Equal(t, "Prague", c.Locations()[0].Texts[0])
	// Narrator plus Mary.
	assert.Len(t, c.Agents(), 2)
}

func TestNarratorRegistryUnifiesByLabelSet(t *testing.T) {
	r := NewNarratorRegistry()

	id1, unified := r.Canonical([]string{"Narrator", "Mary", "Mary Smith"})
	assert.False(t, unified)

	id2, unified := r.Canonical([]string{"Mary Smith", "Mary", "Narrator"})
	assert.True(t, unified, "label order does not matter")
	assert.Equal(t, id1, id2)

	id3, unified := r.Canonical([]string{"Eva"})
	assert.False(t, unified)
	assert.NotEqual(t, id1, id3)
}

func TestNarratorRegistryAnonymous(t *testing.T) {
	r := NewNarratorRegistry()
	id1, _ := r.Canonical(nil)
	id2, unified := r.Canonical([]string{"Narrator"})
	assert.True(t, unified, "the bare narrator label is not identifying")
	assert.Equal(t, id1, id2)
}

func TestRenameNarrator(t *testing.T) {
	c := newTestContext()
	c.RenameNarrator(":Mary")
	assert.Equal(t, ":Mary", c.Narrator().ID)

	ents := c.Resolve(np("I", ""), "")
	assert.Equal(t, ":Mary", ents[0].ID)
}
