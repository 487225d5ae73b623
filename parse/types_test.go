package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNarrative(t *testing.T) {
	data := []byte(`{
		"title": "A Childhood",
		"biography": true,
		"sentences": [
			{
				"text": "Mary sang.",
				"offset": 0,
				"clauses": [
					{
						"subjects": [{"text": "Mary", "type": "FEMALESINGPERSON"}],
						"verbs": [{"lemma": "sing", "text": "sang", "tense": "past"}]
					}
				]
			},
			{"text": "new_line", "offset": 1}
		]
	}`)

	n, err := DecodeNarrative(data)
	require.NoError(t, err)
	assert.Equal(t, "A Childhood", n.Title)
	assert.True(t, n.Biography)
	require.Len(t, n.Sentences, 2)
	assert.False(t, n.Sentences[0].IsParagraphBreak())
	assert.True(t, n.Sentences[1].IsParagraphBreak())

	clause := n.Sentences[0].Clauses[0]
	require.Len(t, clause.Subjects, 1)
	assert.Equal(t, "FEMALESINGPERSON", clause.Subjects[0].TypeTag)
	assert.Equal(t, "past", clause.Verbs[0].Tense)
}

func TestDecodeNarrativeErrors(t *testing.T) {
	_, err := DecodeNarrative([]byte(`{`))
	assert.Error(t, err)

	_, err = DecodeNarrative([]byte(`{"title": "Empty", "sentences": []}`))
	assert.Error(t, err)
}

func TestFullLemma(t *testing.T) {
	assert.Equal(t, "give", Verb{Lemma: "give"}.FullLemma())
	assert.Equal(t, "give up", Verb{Lemma: "give", Particle: "up"}.FullLemma())
}

func TestNounPhraseTagHelpers(t *testing.T) {
	np := NounPhrase{TypeTag: "FEMALESINGPERSON"}
	assert.False(t, np.IsPlural())
	assert.True(t, np.IsPerson())
	assert.Equal(t, TagFemale, np.Gender())
	assert.Equal(t, "PERSON", np.Category())

	np = NounPhrase{TypeTag: "PLURALPERSON"}
	assert.True(t, np.IsPlural())
	assert.Equal(t, "", np.Gender())
	assert.Equal(t, "PERSON", np.Category())

	np = NounPhrase{TypeTag: "SINGCARDINAL"}
	assert.True(t, np.IsCardinal())
	assert.Equal(t, "CARDINAL", np.Category())

	np = NounPhrase{TypeTag: "SINGGPE"}
	assert.False(t, np.IsPerson())
	assert.Equal(t, "GPE", np.Category())
}
