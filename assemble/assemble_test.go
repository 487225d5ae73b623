package assemble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/narragraph/cascade"
	"github.com/c360studio/narragraph/lexicon"
	"github.com/c360studio/narragraph/ontology"
	"github.com/c360studio/narragraph/parse"
	"github.com/c360studio/narragraph/resolve"
	"github.com/c360studio/narragraph/vocabulary/onto"
)

func newTestAssembler(t *testing.T) (*Assembler, *cascade.Mapper) {
	t.Helper()
	idx, err := ontology.NewIndex()
	require.NoError(t, err)
	lex := lexicon.MustLoad()
	mapper := cascade.New(lex, idx)
	return New(mapper, lex, idx), mapper
}

func newTestSession(t *testing.T, biography bool) (*Assembler, *Session) {
	t.Helper()
	a, mapper := newTestAssembler(t)
	ctx := resolve.NewContext(mapper, nil)
	return a, a.NewSession(ctx, biography)
}

func np(text, tag string) parse.NounPhrase {
	return parse.NounPhrase{Text: text, TypeTag: tag}
}

func sentence(text string, clauses ...parse.Clause) parse.Sentence {
	return parse.Sentence{Text: text, Clauses: clauses}
}

func clauseOf(subjects []parse.NounPhrase, verbs ...parse.Verb) parse.Clause {
	return parse.Clause{Subjects: subjects, Verbs: verbs}
}

func TestSentenceEmitsEventWithRoles(t *testing.T) {
	a, s := newTestSession(t, false)

	sent := sentence("Mary sang.",
		clauseOf([]parse.NounPhrase{np("Mary", "FEMALESINGPERSON")},
			parse.Verb{Lemma: "sing", Text: "sang", Tense: "past"}))

	sentenceID := a.Sentence(s, sent)
	assert.Equal(t, ":Sentence_1", sentenceID)
	assert.True(t, s.Graph.Has(sentenceID, onto.PredDescribes))

	eventID := ":Event_Sing"
	assert.Contains(t, s.Graph.ObjectsOf(sentenceID, onto.PredDescribes), eventID)
	assert.Contains(t, s.Graph.ObjectsOf(eventID, "a"), onto.ArtAndEntertainmentEvent)
	assert.Equal(t, []any{":Mary"}, s.Graph.ObjectsOf(eventID, onto.PredHasActiveAgent))
	assert.Equal(t, []any{"sang"}, s.Graph.ObjectsOf(eventID, onto.PredText))
	assert.Equal(t, []any{"past"}, s.Graph.ObjectsOf(eventID, onto.PredTense))

	// The entity carries its types and label.
	assert.Contains(t, s.Graph.ObjectsOf(":Mary", "a"), onto.Person)
	assert.Equal(t, []any{"Mary"}, s.Graph.ObjectsOf(":Mary", onto.PredLabel))
}

func TestParagraphBreak(t *testing.T) {
	a, s := newTestSession(t, false)
	id := a.Sentence(s, parse.Sentence{Text: parse.ParagraphBreak})
	assert.Equal(t, "", id)
	assert.Empty(t, s.Graph.Statements())
}

func TestNegationPropagates(t *testing.T) {
	a, s := newTestSession(t, false)
	a.Sentence(s, sentence("Joe did not die.",
		clauseOf([]parse.NounPhrase{np("Joe", "MALESINGPERSON")},
			parse.Verb{Lemma: "die", Text: "did not die", Tense: "past", Negated: true})))

	assert.Equal(t, []any{true}, s.Graph.ObjectsOf(":Event_Die", onto.PredNegation))
	assert.Contains(t, s.Graph.ObjectsOf(":Event_Die", "a"), onto.Death)
}

func TestCopulaDescribesEntity(t *testing.T) {
	a, s := newTestSession(t, false)
	a.Sentence(s, sentence("Joe was an attorney.",
		clauseOf([]parse.NounPhrase{np("Joe", "MALESINGPERSON")},
			parse.Verb{Lemma: "be", Text: "was", Tense: "past", Auxiliary: true,
				Complements: []parse.NounPhrase{np("an attorney", "SINGPERSON")}})))

	eventID := ":Event_Was"
	assert.Contains(t, s.Graph.ObjectsOf(eventID, "a"), onto.EnvironmentAndCondition)
	assert.Equal(t, []any{":Joe"}, s.Graph.ObjectsOf(eventID, onto.PredHasDescribedEntity))
	require.Len(t, s.Graph.ObjectsOf(eventID, onto.PredHasAspect), 1)
}

func TestXcompFoldsEmotionIntoSingleEvent(t *testing.T) {
	a, s := newTestSession(t, false)
	sentenceID := a.Sentence(s, sentence("Mary loved to sing.",
		clauseOf([]parse.NounPhrase{np("Mary", "FEMALESINGPERSON")},
			parse.Verb{Lemma: "love", Text: "loved", Tense: "past",
				Xcomp: &parse.Verb{Lemma: "sing", Text: "to sing"}})))

	events := s.Graph.ObjectsOf(sentenceID, onto.PredDescribes)
	require.Len(t, events, 1, "emotion matrix verb folds into its complement")

	eventID := events[0].(string)
	types := s.Graph.ObjectsOf(eventID, "a")
	assert.Contains(t, types, onto.ArtAndEntertainmentEvent)
	assert.Contains(t, types, onto.PositiveEmotion)
	assert.Equal(t, []any{":Mary"}, s.Graph.ObjectsOf(eventID, onto.PredHasActiveAgent))
}

func TestXcompWithInnerObjectStaysSeparate(t *testing.T) {
	a, s := newTestSession(t, false)
	sentenceID := a.Sentence(s, sentence("Mary loved to buy books.",
		clauseOf([]parse.NounPhrase{np("Mary", "FEMALESINGPERSON")},
			parse.Verb{Lemma: "love", Text: "loved", Tense: "past",
				Xcomp: &parse.Verb{Lemma: "buy", Text: "to buy",
					Objects: []parse.NounPhrase{np("books", "PLURAL")}}})))

	events := s.Graph.ObjectsOf(sentenceID, onto.PredDescribes)
	require.Len(t, events, 2)
	assert.Contains(t, s.Graph.ObjectsOf(":Event_Love", onto.PredHasTopic), ":Event_Buy")
	assert.Contains(t, s.Graph.ObjectsOf(":Event_Buy", "a"), onto.AcquisitionPossessionAndTransfer)
}

func TestXcompIdiomClassOnComplement(t *testing.T) {
	a, s := newTestSession(t, false)
	sentenceID := a.Sentence(s, sentence("Mary planned to return.",
		clauseOf([]parse.NounPhrase{np("Mary", "FEMALESINGPERSON")},
			parse.Verb{Lemma: "plan", Text: "planned", Tense: "past",
				Xcomp: &parse.Verb{Lemma: "return", Text: "to return"}})))

	events := s.Graph.ObjectsOf(sentenceID, onto.PredDescribes)
	require.Len(t, events, 2)
	assert.Contains(t, s.Graph.ObjectsOf(":Event_Plan", onto.PredHasTopic), ":Event_Return")

	// The planned act is an intention, not an occurrence.
	types := s.Graph.ObjectsOf(":Event_Return", "a")
	assert.Contains(t, types, onto.MovementTravelAndTransportation)
	assert.Contains(t, types, onto.IntentionAndGoal)
}

func livedIn(place string) parse.Sentence {
	return sentence("They lived in "+place+".",
		clauseOf([]parse.NounPhrase{np("the family", "PLURALPERSON")},
			parse.Verb{Lemma: "live", Text: "lived", Tense: "past",
				Prepositions: []parse.Preposition{
					{Word: "in", Objects: []parse.NounPhrase{np(place, "SINGGPE")}},
				}}))
}

func TestMovementOriginInferredFromCarriedLocation(t *testing.T) {
	a, s := newTestSession(t, false)
	a.Sentence(s, livedIn("Stanesti"))
	a.Sentence(s, sentence("They moved to Bucharest.",
		clauseOf([]parse.NounPhrase{np("they", "")},
			parse.Verb{Lemma: "move", Text: "moved", Tense: "past",
				Prepositions: []parse.Preposition{
					{Word: "to", Objects: []parse.NounPhrase{np("Bucharest", "SINGGPE")}},
				}})))

	eventID := ":Event_Move"
	assert.Equal(t, []any{":Bucharest"}, s.Graph.ObjectsOf(eventID, onto.PredHasDestination))
	assert.Equal(t, []any{":Stanesti"}, s.Graph.ObjectsOf(eventID, onto.PredHasOrigin))
}

func TestMovementOriginSkippedWhenSameAsDestination(t *testing.T) {
	a, s := newTestSession(t, false)
	a.Sentence(s, livedIn("Stanesti"))
	a.Sentence(s, sentence("They returned to Stanesti.",
		clauseOf([]parse.NounPhrase{np("they", "")},
			parse.Verb{Lemma: "return", Text: "returned", Tense: "past",
				Prepositions: []parse.Preposition{
					{Word: "to", Objects: []parse.NounPhrase{np("Stanesti", "SINGGPE")}},
				}})))

	assert.False(t, s.Graph.Has(":Event_Return", onto.PredHasOrigin))
}

func TestBiographyDefaultLocation(t *testing.T) {
	a, s := newTestSession(t, true)
	a.Sentence(s, livedIn("Stanesti"))
	a.Sentence(s, sentence("Mary sang.",
		clauseOf([]parse.NounPhrase{np("Mary", "FEMALESINGPERSON")},
			parse.Verb{Lemma: "sing", Text: "sang", Tense: "past"})))

	assert.Equal(t, []any{":Stanesti"}, s.Graph.ObjectsOf(":Event_Sing", onto.PredHasLocation))
}

func TestBiographyDefaultTime(t *testing.T) {
	a, s := newTestSession(t, true)
	a.Sentence(s, sentence("Mary sang in 1940.",
		clauseOf([]parse.NounPhrase{np("Mary", "FEMALESINGPERSON")},
			parse.Verb{Lemma: "sing", Text: "sang", Tense: "past",
				Prepositions: []parse.Preposition{
					{Word: "in", Objects: []parse.NounPhrase{np("1940", "SINGDATE")}},
				}})))
	a.Sentence(s, sentence("Joe died.",
		clauseOf([]parse.NounPhrase{np("Joe", "MALESINGPERSON")},
			parse.Verb{Lemma: "die", Text: "died", Tense: "past"})))

	// The last mentioned time carries forward to events without their own.
	times := s.Graph.ObjectsOf(":Event_Sing", onto.PredHasTime)
	require.Len(t, times, 1)
	assert.Equal(t, times, s.Graph.ObjectsOf(":Event_Die", onto.PredHasTime))
}

func TestNoDefaultLocationOutsideBiography(t *testing.T) {
	a, s := newTestSession(t, false)
	a.Sentence(s, livedIn("Stanesti"))
	a.Sentence(s, sentence("Mary sang.",
		clauseOf([]parse.NounPhrase{np("Mary", "FEMALESINGPERSON")},
			parse.Verb{Lemma: "sing", Text: "sang", Tense: "past"})))

	assert.False(t, s.Graph.Has(":Event_Sing", onto.PredHasLocation))
}

func TestRevisionRewritesTopicToDestination(t *testing.T) {
	a, s := newTestSession(t, false)
	// The destination has no location-typed class, so the "to" rule first
	// emits the generic topic predicate; the movement class then revises it.
	a.Sentence(s, sentence("They emigrated to Marah.",
		clauseOf([]parse.NounPhrase{np("the family", "PLURALPERSON")},
			parse.Verb{Lemma: "emigrate", Text: "emigrated", Tense: "past",
				Prepositions: []parse.Preposition{
					{Word: "to", Objects: []parse.NounPhrase{np("Marah", "")}},
				}})))

	eventID := ":Event_Emigrate"
	assert.Equal(t, []any{":Marah"}, s.Graph.ObjectsOf(eventID, onto.PredHasDestination))
	assert.Empty(t, s.Graph.ObjectsOf(eventID, onto.PredHasTopic))
}

func TestAgentByPhraseReversesTriple(t *testing.T) {
	a, s := newTestSession(t, false)
	a.Sentence(s, sentence("Joe was arrested by the soldiers.",
		clauseOf([]parse.NounPhrase{np("Joe", "MALESINGPERSON")},
			parse.Verb{Lemma: "arrest", Text: "was arrested", Tense: "past",
				Prepositions: []parse.Preposition{
					{Word: "by", Objects: []parse.NounPhrase{np("the soldiers", "PLURALPERSON")}},
				}})))

	// The agent of a "by" phrase becomes the subject of the triple.
	assert.Contains(t, s.Graph.ObjectsOf(":TheSoldiers", onto.PredHasActiveAgent), ":Event_Arrest")
}

func TestAffectedAgentObject(t *testing.T) {
	a, s := newTestSession(t, false)
	a.Sentence(s, sentence("The soldiers arrested Joe.",
		clauseOf([]parse.NounPhrase{np("the soldiers", "PLURALPERSON")},
			parse.Verb{Lemma: "arrest", Text: "arrested", Tense: "past",
				Objects: []parse.NounPhrase{np("Joe", "MALESINGPERSON")}})))

	assert.Equal(t, []any{":Joe"}, s.Graph.ObjectsOf(":Event_Arrest", onto.PredHasAffectedAgent))
}

func TestAffiliationShiftsAgentPredicates(t *testing.T) {
	a, s := newTestSession(t, false)
	a.Sentence(s, sentence("Mary married Joe.",
		clauseOf([]parse.NounPhrase{np("Mary", "FEMALESINGPERSON")},
			parse.Verb{Lemma: "marry", Text: "married", Tense: "past",
				Objects: []parse.NounPhrase{np("Joe", "MALESINGPERSON")}})))

	eventID := ":Event_Marry"
	assert.Equal(t, []any{":Mary"}, s.Graph.ObjectsOf(eventID, onto.PredAffiliatedAgent))
	assert.Equal(t, []any{":Joe"}, s.Graph.ObjectsOf(eventID, onto.PredAffiliatedWith))
}

func TestQuotationNode(t *testing.T) {
	a, s := newTestSession(t, false)
	a.Sentence(s, sentence("Mary arrived.",
		clauseOf([]parse.NounPhrase{np("Mary", "FEMALESINGPERSON")},
			parse.Verb{Lemma: "arrive", Text: "arrived", Tense: "past"})))

	sent := parse.Sentence{
		Text:       `"We have nothing left," said Mary.`,
		Quotations: []parse.Quotation{{Text: "We have nothing left", Speaker: "Mary"}},
	}
	sentenceID := a.Sentence(s, sent)

	assert.Equal(t, []any{":Quotation_1"}, s.Graph.ObjectsOf(sentenceID, onto.PredHasQuotation))
	assert.Equal(t, []any{"We have nothing left"}, s.Graph.ObjectsOf(":Quotation_1", onto.PredText))
	assert.Equal(t, []any{":Mary"}, s.Graph.ObjectsOf(":Quotation_1", onto.PredHasActiveAgent))
}

func TestClauseWithoutEventsStillDescribes(t *testing.T) {
	a, s := newTestSession(t, false)
	sentenceID := a.Sentence(s, sentence("The winter.",
		parse.Clause{Subjects: []parse.NounPhrase{np("the winter", "SING")}}))

	events := s.Graph.ObjectsOf(sentenceID, onto.PredDescribes)
	require.Len(t, events, 1)
	assert.Contains(t, s.Graph.ObjectsOf(events[0].(string), "a"), onto.EventAndState)
}

func TestModalNarratorIntention(t *testing.T) {
	a, s := newTestSession(t, false)
	a.Sentence(s, sentence("I must leave.",
		clauseOf([]parse.NounPhrase{np("I", "")},
			parse.Verb{Lemma: "leave", Text: "must leave", Modal: "must"})))

	types := s.Graph.ObjectsOf(":Event_Leave", "a")
	assert.Contains(t, types, onto.IntentionAndGoal)
	assert.Contains(t, types, onto.MovementTravelAndTransportation)
	assert.Equal(t, []any{resolve.NarratorID}, s.Graph.ObjectsOf(":Event_Leave", onto.PredHasActiveAgent))
}

func TestSerializedGraphIsValidShape(t *testing.T) {
	a, s := newTestSession(t, false)
	a.Sentence(s, sentence("Mary sang.",
		clauseOf([]parse.NounPhrase{np("Mary", "FEMALESINGPERSON")},
			parse.Verb{Lemma: "sing", Text: "sang", Tense: "past"})))

	out := s.Graph.Serialize()
	assert.True(t, strings.HasPrefix(out, "@prefix"))
	assert.Contains(t, out, ":Mary")
	assert.Contains(t, out, "a "+onto.ArtAndEntertainmentEvent)
}
