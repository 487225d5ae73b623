package resolve

import (
	"log/slog"
	"strings"

	"github.com/c360studio/narragraph/lexicon"
	"github.com/c360studio/narragraph/vocabulary/onto"
)

// NounClassifier classifies a noun phrase into ontology classes. Implemented
// by the mapping cascade; injected here so minting a new entity can classify
// it without an import cycle.
type NounClassifier interface {
	ClassifyNoun(text, typeTag, sentence string) []string
}

// NarratorID is the fixed identifier for the first-person narrator before
// unification assigns a canonical one.
const NarratorID = ":Narrator"

// mention is one paragraph-scoped noun occurrence. A zero mention with
// boundary=true marks a paragraph break.
type mention struct {
	ent      Entity
	boundary bool
}

// eventMention is one paragraph-scoped event occurrence.
type eventMention struct {
	Text    string
	Classes []string
	ID      string
}

// Context is the per-narrative resolution state, threaded explicitly through
// the processing chain. It is not safe for concurrent use; sentences are
// processed strictly in order.
type Context struct {
	classifier NounClassifier
	logger     *slog.Logger

	// Narrative scope.
	agents    []*Record
	locations []*Record
	events    []*Record
	times     []*Record

	// Paragraph scope, most recent last. Boundary markers separate
	// paragraphs; ResolvePronoun walks this most-recent-first.
	lastNouns  []mention
	lastEvents []eventMention

	narrator *Record
	ids      *minter
}

// NewContext creates resolution state for one narrative.
func NewContext(classifier NounClassifier, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.Default()
	}
	ctx := &Context{
		classifier: classifier,
		logger:     logger,
		ids:        newMinter(),
	}
	ctx.narrator = &Record{
		Texts:   []string{"Narrator"},
		TypeTag: "SINGPERSON",
		Classes: []string{onto.Person},
		ID:      NarratorID,
	}
	ctx.agents = append(ctx.agents, ctx.narrator)
	return ctx
}

// Narrator returns the fixed first-person entity.
func (c *Context) Narrator() *Record { return c.narrator }

// NewParagraph marks a paragraph boundary in the paragraph-scoped history.
func (c *Context) NewParagraph() {
	c.lastNouns = append(c.lastNouns, mention{boundary: true})
	c.lastEvents = nil
}

// Agents returns the narrative-scoped agent records, narrator included.
func (c *Context) Agents() []*Record { return c.agents }

// Locations returns the narrative-scoped location records.
func (c *Context) Locations() []*Record { return c.locations }

// RecordEvent registers a minted event in narrative and paragraph scope so
// deverbal nouns ("the attack") can refer back to it.
func (c *Context) RecordEvent(text, id string, classes []string) {
	rec := &Record{Texts: []string{text}, Classes: classes, ID: id}
	c.events = append(c.events, rec)
	c.lastEvents = append(c.lastEvents, eventMention{Text: text, Classes: classes, ID: id})
}

// MintEventID mints a fresh identifier for an event described by text.
func (c *Context) MintEventID(text string) string {
	return c.ids.mint("Event_" + text)
}

// recordNoun registers a resolved noun in paragraph scope (and narrative
// scope when new).
func (c *Context) recordNoun(ent Entity) {
	c.lastNouns = append(c.lastNouns, mention{ent: ent})
}

// register adds a freshly minted record to the proper narrative-scoped list
// based on its type tag and classes.
func (c *Context) register(rec *Record) {
	category := categoryOf(rec.TypeTag)
	switch {
	case lexicon.TimeCategories[category]:
		c.times = append(c.times, rec)
	case lexicon.LocationCategories[category] || hasClass(rec.Classes, onto.Location):
		c.locations = append(c.locations, rec)
	case lexicon.AgentCategories[category] || hasClass(rec.Classes, onto.Person) || hasClass(rec.Classes, onto.GroupOfAgents):
		c.agents = append(c.agents, rec)
	default:
		// Plain non-agent nouns stay paragraph-scoped only.
	}
}

func categoryOf(typeTag string) string {
	tag := typeTag
	for _, mod := range []string{"FEMALE", "MALE", "SING", "PLURAL"} {
		tag = strings.ReplaceAll(tag, mod, "")
	}
	return tag
}

func hasClass(classes []string, want string) bool {
	for _, cls := range classes {
		for _, part := range strings.Split(cls, "+") {
			if part == want {
				return true
			}
		}
	}
	return false
}
