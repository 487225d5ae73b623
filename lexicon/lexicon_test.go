package lexicon

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/narragraph/vocabulary/onto"
)

func TestMustLoadEmbeddedGrammars(t *testing.T) {
	lex := MustLoad()

	assert.NotEmpty(t, lex.VerbIdioms, "embedded idiom grammar should parse")
	assert.NotEmpty(t, lex.Prepositions, "embedded preposition rules should parse")
	assert.NotEmpty(t, lex.Revisions)
	assert.Contains(t, lex.VerbIdioms, "give birth")
	assert.Contains(t, lex.Prepositions, "to")
}

func TestParseIdiomGrammar(t *testing.T) {
	src := `
# comment
verb "give birth" := :Birth obj(:has_affected_agent)
verb "break out" := :Start keyword(war) ; :EscapeEvent
noun "iron curtain" := :PoliticalEvent
vprep "look after" := :BodilyAct prep(after :has_affected_agent)
verb "fall ill" := :HealthAndDiseaseRelated subj(:has_affected_agent) env
verb "plan" := :IntentionAndGoal xcomp(:IntentionAndGoal)
`
	noun, verb, vprep, err := parseIdiomGrammar(src)
	require.NoError(t, err)

	require.Len(t, verb["give birth"], 1)
	rule := verb["give birth"][0]
	assert.Equal(t, []string{":Birth"}, rule.Classes)
	assert.True(t, rule.NeedsObj)
	assert.Equal(t, ":has_affected_agent", rule.ObjPredicate)

	require.Len(t, verb["break out"], 2, "semicolon separates alternative rules")
	assert.Equal(t, "war", verb["break out"][0].Keyword)
	assert.Equal(t, []string{":EscapeEvent"}, verb["break out"][1].Classes)

	require.Len(t, noun["iron curtain"], 1)

	require.Len(t, vprep["look after"], 1)
	assert.Equal(t, "after", vprep["look after"][0].PrepWord)
	assert.Equal(t, ":has_affected_agent", vprep["look after"][0].PrepPredicate)

	require.Len(t, verb["fall ill"], 1)
	assert.True(t, verb["fall ill"][0].Env)
	assert.Equal(t, ":has_affected_agent", verb["fall ill"][0].SubjPredicate)

	require.Len(t, verb["plan"], 1)
	assert.Equal(t, ":IntentionAndGoal", verb["plan"][0].XcompClass)
}

func TestParseIdiomGrammarMultiClass(t *testing.T) {
	_, verb, _, err := parseIdiomGrammar(`verb "flee" := :EscapeEvent+:MovementTravelAndTransportation`)
	require.NoError(t, err)
	require.Len(t, verb["flee"], 1)
	assert.Equal(t, []string{":EscapeEvent", ":MovementTravelAndTransportation"}, verb["flee"][0].Classes)
}

func TestParseIdiomGrammarErrors(t *testing.T) {
	cases := map[string]string{
		"unknown section":  `adverb "quickly" := :EventAndState`,
		"unquoted lemma":   `verb flee := :EscapeEvent`,
		"missing assign":   `verb "flee" :EscapeEvent`,
		"no classes":       `verb "flee" := keyword(war)`,
		"unprefixed class": `verb "flee" := EscapeEvent`,
		"unknown item":     `verb "flee" := :EscapeEvent frobnicate`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, _, err := parseIdiomGrammar(src)
			assert.Error(t, err)
		})
	}
}

func TestIdiomRuleMatches(t *testing.T) {
	rule := IdiomRule{Classes: []string{":Start"}, Keyword: "war"}
	assert.True(t, rule.Matches("Then the war broke out.", false, nil))
	assert.False(t, rule.Matches("Then the warble began.", false, nil), "keyword must match on word boundary")

	objRule := IdiomRule{Classes: []string{":Birth"}, NeedsObj: true}
	assert.True(t, objRule.Matches("", true, nil))
	assert.False(t, objRule.Matches("", false, nil))

	prepRule := IdiomRule{Classes: []string{":Start"}, PrepWord: "for"}
	assert.True(t, prepRule.Matches("", false, []string{"For"}))
	assert.False(t, prepRule.Matches("", false, []string{"from"}))
}

func TestParsePrepositionRules(t *testing.T) {
	src := `
# comment
at => Location :has_location | Time :has_time | :has_topic
by => Agent obj+:has_active_agent | :has_instrument
revise :MovementTravelAndTransportation to :has_topic => :has_destination
`
	rules, revisions, err := parsePrepositionRules(src)
	require.NoError(t, err)

	at := rules["at"]
	require.Len(t, at.Clauses, 3)

	clause, ok := at.Select(KindLocation)
	require.True(t, ok)
	assert.Equal(t, ":has_location", clause.Predicate)

	clause, ok = at.Select(KindTime)
	require.True(t, ok)
	assert.Equal(t, ":has_time", clause.Predicate)

	clause, ok = at.Select(KindAgent)
	require.True(t, ok, "default clause catches unmatched kinds")
	assert.Equal(t, ":has_topic", clause.Predicate)

	by := rules["by"]
	clause, ok = by.Select(KindAgent)
	require.True(t, ok)
	assert.True(t, clause.Reversed, "obj+ reverses the triple")
	assert.Equal(t, ":has_active_agent", clause.Predicate)

	require.Len(t, revisions, 1)
	rev := revisions[0]
	assert.Equal(t, ":MovementTravelAndTransportation", rev.EventClass)
	assert.Equal(t, "to", rev.Preposition)
	assert.Equal(t, ":has_topic", rev.From)
	assert.Equal(t, ":has_destination", rev.To)
}

func TestParsePrepositionRuleErrors(t *testing.T) {
	cases := map[string]string{
		"missing arrow":        `at :has_location`,
		"unknown kind":         `at => Widget :has_location`,
		"unprefixed predicate": `at => has_location`,
		"clause after default": `at => :has_topic | Location :has_location`,
		"duplicate":            "at => :has_topic\nat => :has_location",
		"bad revision":         `revise :Foo to => :has_destination`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := parsePrepositionRules(src)
			assert.Error(t, err)
		})
	}
}

func TestSelectNoDefault(t *testing.T) {
	rules, _, err := parsePrepositionRules(`aboard => Location :has_location`)
	require.NoError(t, err)
	_, ok := rules["aboard"].Select(KindAgent)
	assert.False(t, ok)
}

func TestClassifyPronoun(t *testing.T) {
	cases := []struct {
		text string
		want PronounClass
	}{
		{"I", PronounFirstSingular},
		{"my", PronounFirstSingular},
		{"we", PronounFirstPlural},
		{"They", PronounThirdPlural},
		{"she", PronounFemale},
		{"her", PronounFemale},
		{"him", PronounMale},
		{"it", PronounNeuter},
		{"Mary", PronounNone},
		{"the", PronounNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyPronoun(tc.text), tc.text)
	}

	assert.True(t, IsPronoun("herself"))
	assert.False(t, IsPronoun("horse"))
	assert.True(t, IsPossessivePronoun("Their"))
	assert.False(t, IsPossessivePronoun("them"))
}

func TestModalClass(t *testing.T) {
	cls, ok := ModalClass("must", "present", false)
	require.True(t, ok)
	assert.Equal(t, onto.RequirementAndDependence, cls)

	// Narrator-inclusive obligation reads as intention.
	cls, ok = ModalClass("must", "present", true)
	require.True(t, ok)
	assert.Equal(t, onto.IntentionAndGoal, cls)

	// Future tense shifts possibility toward intention.
	cls, ok = ModalClass("could", "future", false)
	require.True(t, ok)
	assert.Equal(t, onto.IntentionAndGoal, cls)

	cls, ok = ModalClass("can", "present", false)
	require.True(t, ok)
	assert.Equal(t, onto.ReadinessAndAbility, cls)

	_, ok = ModalClass("quickly", "present", false)
	assert.False(t, ok)
}

func TestFamilyRole(t *testing.T) {
	role, ok := FamilyRole("her father")
	require.True(t, ok)
	assert.Equal(t, "father", role)

	role, ok = FamilyRole("Mother")
	require.True(t, ok)
	assert.Equal(t, "mother", role)

	_, ok = FamilyRole("the mayor")
	assert.False(t, ok)

	assert.Equal(t, "FEMALE", FamilyRoles["sister"])
	assert.Equal(t, "MALE", FamilyRoles["uncle"])
	assert.Equal(t, "", FamilyRoles["cousin"])
}

func TestOverrides(t *testing.T) {
	lex := MustLoad()

	classes, ok := lex.VerbOverride("Win")
	require.True(t, ok)
	assert.Equal(t, []string{onto.AchievementAndAccomplishment, onto.EndOfConflict}, classes)

	classes, ok = lex.NounOverride("war")
	require.True(t, ok)
	assert.Equal(t, []string{onto.ViolenceAndWar}, classes)

	_, ok = lex.VerbOverride("saunter")
	assert.False(t, ok)
}

func TestClassForCategory(t *testing.T) {
	assert.Equal(t, onto.Person, ClassForCategory("PERSON"))
	assert.Equal(t, onto.GeopoliticalEntity, ClassForCategory("gpe"))
	assert.Equal(t, onto.OwlThing, ClassForCategory("MYSTERY"))
}

func TestIsAgentTag(t *testing.T) {
	assert.True(t, IsAgentTag("FEMALESINGPERSON"))
	assert.True(t, IsAgentTag("PLURALORG"))
	assert.False(t, IsAgentTag("SINGDATE"))
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	idiomPath := dir + "/idioms.ngl"
	prepPath := dir + "/preps.ngl"
	require.NoError(t, os.WriteFile(idiomPath, []byte(`verb "test drive" := :Assessment`), 0o644))
	require.NoError(t, os.WriteFile(prepPath, []byte(`aboard => Location :has_location`), 0o644))

	lex, err := Load(idiomPath, prepPath)
	require.NoError(t, err)
	assert.Contains(t, lex.VerbIdioms, "test drive")
	assert.Contains(t, lex.Prepositions, "aboard")
	assert.NotContains(t, lex.Prepositions, "at", "on-disk rules replace the embedded set")

	_, err = Load(dir+"/missing.ngl", "")
	assert.Error(t, err)
}
