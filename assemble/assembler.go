// Package assemble turns resolved clauses into knowledge-graph statements.
//
// Assembly consumes one sentence at a time: subjects, objects, and
// prepositional objects are resolved to canonical entities, the verb is
// classified, and role predicates are emitted onto a minted event node.
// Assembly never aborts a sentence; a clause with no resolvable semantics
// still yields a generically classed event so consumers see one event per
// clause.
package assemble

import (
	"fmt"
	"log/slog"

	"github.com/c360studio/narragraph/cascade"
	"github.com/c360studio/narragraph/lexicon"
	"github.com/c360studio/narragraph/ontology"
	"github.com/c360studio/narragraph/parse"
	"github.com/c360studio/narragraph/resolve"
	"github.com/c360studio/narragraph/turtle"
	"github.com/c360studio/narragraph/vocabulary/onto"
)

// Assembler holds the immutable dependencies shared by all sessions.
type Assembler struct {
	mapper *cascade.Mapper
	lex    *lexicon.Lexicon
	svc    ontology.Service
	logger *slog.Logger
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) { a.logger = logger }
}

// New creates an Assembler.
func New(mapper *cascade.Mapper, lex *lexicon.Lexicon, svc ontology.Service, opts ...Option) *Assembler {
	a := &Assembler{mapper: mapper, lex: lex, svc: svc, logger: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Session is the per-narrative assembly state. Sentences must be fed in
// order; location and time carry forward across clauses within it.
type Session struct {
	Ctx   *resolve.Context
	Graph *turtle.Graph

	// Biography forces a default location onto events that lack one.
	Biography bool

	lastLocation string
	lastTime     string
	sentenceSeq  int
	quoteSeq     int
	emitted      map[string]bool
}

// NewSession creates assembly state for one narrative.
func (a *Assembler) NewSession(ctx *resolve.Context, biography bool) *Session {
	return &Session{
		Ctx:       ctx,
		Graph:     turtle.NewGraph(onto.Prefixes),
		Biography: biography,
		emitted:   make(map[string]bool),
	}
}

// Sentence processes one sentence and returns the sentence node identifier,
// or "" for a paragraph break.
func (a *Assembler) Sentence(s *Session, sent parse.Sentence) string {
	if sent.IsParagraphBreak() {
		s.Ctx.NewParagraph()
		return ""
	}

	s.sentenceSeq++
	sentenceID := fmt.Sprintf(":Sentence_%d", s.sentenceSeq)
	s.Graph.AddType(sentenceID, ":Sentence")
	s.Graph.Add(sentenceID, onto.PredText, sent.Text)
	if sent.Offset > 0 {
		s.Graph.Add(sentenceID, onto.PredOffset, sent.Offset)
	}

	for _, clause := range sent.Clauses {
		subjects := a.resolveAll(s, clause.Subjects, sent.Text)
		events := 0
		for _, verb := range clause.Verbs {
			for _, eventID := range a.clause(s, sent.Text, subjects, verb) {
				s.Graph.Add(sentenceID, onto.PredDescribes, eventID)
				events++
			}
		}
		if events == 0 {
			// No resolvable semantics; still one event per clause.
			eventID := s.Ctx.MintEventID("clause")
			s.Graph.AddType(eventID, onto.EventAndState)
			s.Graph.Add(sentenceID, onto.PredDescribes, eventID)
		}
	}

	for _, quotation := range sent.Quotations {
		a.quotation(s, sentenceID, quotation, sent.Text)
	}

	return sentenceID
}

// quotation emits a quotation node attributed to its resolved speaker.
func (a *Assembler) quotation(s *Session, sentenceID string, q parse.Quotation, sentence string) {
	s.quoteSeq++
	quoteID := fmt.Sprintf(":Quotation_%d", s.quoteSeq)
	s.Graph.AddType(quoteID, ":Quotation")
	s.Graph.Add(quoteID, onto.PredText, q.Text)
	s.Graph.Add(sentenceID, onto.PredHasQuotation, quoteID)

	if q.Speaker == "" {
		return
	}
	speaker := parse.NounPhrase{Text: q.Speaker, TypeTag: "PERSON"}
	for _, ent := range s.Ctx.Resolve(speaker, sentence) {
		a.emitEntity(s, ent)
		s.Graph.Add(quoteID, onto.PredHasActiveAgent, ent.ID)
	}
}

// resolveAll resolves a list of noun phrases, flattening plural pronouns.
func (a *Assembler) resolveAll(s *Session, phrases []parse.NounPhrase, sentence string) []resolve.Entity {
	var out []resolve.Entity
	for _, np := range phrases {
		out = append(out, s.Ctx.Resolve(np, sentence)...)
	}
	return out
}

// emitEntity asserts an entity's types and label once per session.
func (a *Assembler) emitEntity(s *Session, ent resolve.Entity) {
	if ent.ID == "" || s.emitted[ent.ID] {
		return
	}
	s.emitted[ent.ID] = true
	for _, mapping := range ent.Classes {
		s.Graph.AddType(ent.ID, mapping)
	}
	if ent.Text != "" {
		s.Graph.Add(ent.ID, onto.PredLabel, ent.Text)
	}
}
