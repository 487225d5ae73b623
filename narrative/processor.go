// Package narrative orchestrates end-to-end processing of one parsed
// narrative: sentence iteration, entity resolution, graph assembly,
// sentence-semantics analysis, enrichment, and narrator unification.
//
// Sentences are processed strictly in order because coreference state
// threads from one sentence to the next. Failure isolation is per sentence:
// one bad sentence is logged and skipped, never aborting the narrative.
package narrative

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/c360studio/narragraph/assemble"
	"github.com/c360studio/narragraph/enrich"
	"github.com/c360studio/narragraph/graph"
	"github.com/c360studio/narragraph/llm"
	"github.com/c360studio/narragraph/parse"
	"github.com/c360studio/narragraph/resolve"
	"github.com/c360studio/narragraph/turtle"
	"github.com/c360studio/narragraph/vocabulary/onto"
)

// SentenceError wraps a failure confined to one sentence.
type SentenceError struct {
	Index int
	Text  string
	Err   error
}

func (e *SentenceError) Error() string {
	return fmt.Sprintf("sentence %d: %v", e.Index, e.Err)
}

func (e *SentenceError) Unwrap() error { return e.Err }

// Result is the outcome of processing one narrative.
type Result struct {
	GraphName string
	Turtle    string
	Graph     *turtle.Graph
	Sentences int
	Skipped   int
}

// Processor runs narratives through the engine. Dependencies besides the
// assembler are optional; nil disables the corresponding stage.
type Processor struct {
	assembler *assemble.Assembler
	analyzer  *llm.Analyzer
	enricher  *enrich.Service
	publisher *graph.Publisher
	narrators *resolve.NarratorRegistry
	metrics   *Metrics
	logger    *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithAnalyzer enables sentence-semantics analysis.
func WithAnalyzer(a *llm.Analyzer) Option {
	return func(p *Processor) { p.analyzer = a }
}

// WithEnricher enables external entity enrichment.
func WithEnricher(e *enrich.Service) Option {
	return func(p *Processor) { p.enricher = e }
}

// WithPublisher enables graph-store publishing.
func WithPublisher(pub *graph.Publisher) Option {
	return func(p *Processor) { p.publisher = pub }
}

// WithMetrics enables processing metrics.
func WithMetrics(m *Metrics) Option {
	return func(p *Processor) { p.metrics = m }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) { p.logger = logger }
}

// NewProcessor creates a Processor around an assembler.
func NewProcessor(assembler *assemble.Assembler, opts ...Option) *Processor {
	p := &Processor{
		assembler: assembler,
		narrators: resolve.NewNarratorRegistry(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs one narrative through the engine and returns the assembled
// graph. The returned error covers only narrative-level failures; sentence
// failures are logged, counted in Result.Skipped, and skipped.
func (p *Processor) Process(ctx context.Context, n *parse.Narrative, rctx *resolve.Context) (*Result, error) {
	if n == nil || len(n.Sentences) == 0 {
		return nil, fmt.Errorf("narrative has no sentences")
	}
	start := time.Now()

	session := p.assembler.NewSession(rctx, n.Biography)
	result := &Result{GraphName: graph.GraphName(n.Title)}

	for i, sentence := range n.Sentences {
		if err := p.sentence(ctx, session, sentence); err != nil {
			result.Skipped++
			if p.metrics != nil {
				p.metrics.SentenceErrors.Inc()
			}
			p.logger.Warn("sentence skipped",
				"narrative", n.Title,
				"index", i,
				"error", err)
			continue
		}
		if !sentence.IsParagraphBreak() {
			result.Sentences++
			if p.metrics != nil {
				p.metrics.SentencesProcessed.Inc()
			}
		}
	}

	p.unifyNarrator(session)
	p.enrichEntities(ctx, session)

	result.Graph = session.Graph
	result.Turtle = session.Graph.Serialize()

	if p.publisher != nil {
		if err := p.publisher.Publish(ctx, result.GraphName, result.Turtle, true); err != nil {
			return nil, fmt.Errorf("publish narrative graph: %w", err)
		}
	}

	if p.metrics != nil {
		p.metrics.NarrativesProcessed.Inc()
		p.metrics.EntitiesResolved.Add(float64(len(rctx.Agents()) + len(rctx.Locations())))
		p.metrics.ProcessingSeconds.Observe(time.Since(start).Seconds())
	}
	p.logger.Info("narrative processed",
		"narrative", n.Title,
		"graph", result.GraphName,
		"sentences", result.Sentences,
		"skipped", result.Skipped,
		"duration", time.Since(start))
	return result, nil
}

// sentence processes a single sentence, converting panics from malformed
// parse shapes into errors at this boundary.
func (p *Processor) sentence(ctx context.Context, session *assemble.Session, sentence parse.Sentence) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &SentenceError{Text: sentence.Text, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	sentenceID := p.assembler.Sentence(session, sentence)
	if sentenceID == "" {
		return nil
	}

	if p.analyzer != nil {
		p.semantics(ctx, session, sentenceID, sentence.Text)
	}
	return nil
}

// semantics attaches the analyzer's sentence-level results to the sentence
// node. An empty analysis attaches nothing.
func (p *Processor) semantics(ctx context.Context, session *assemble.Session, sentenceID, text string) {
	sem := p.analyzer.Analyze(ctx, text)
	g := session.Graph

	if sem.Sentiment != "" {
		g.Add(sentenceID, onto.PredSentiment, sem.Sentiment)
	}
	if sem.Summary != "" {
		g.Add(sentenceID, onto.PredSummary, sem.Summary)
	}
	if sem.Tense != "" {
		g.Add(sentenceID, onto.PredTense, sem.Tense)
	}
	if sem.GradeLevel > 0 {
		g.Add(sentenceID, onto.PredGradeLevel, sem.GradeLevel)
	}
	for _, device := range sem.Devices {
		g.Add(sentenceID, onto.PredRhetoricalDevice, device.Device+": "+device.Evidence)
	}

	for i, cat := range sem.Categories {
		semID := fmt.Sprintf("%s_Semantic_%d", sentenceID, i+1)
		g.AddType(semID, cat.Class())
		g.Add(sentenceID, onto.PredHasSemantic, semID)
		pred := onto.PredAgreeTo
		if !cat.Agree {
			pred = onto.PredOpposeTo
		}
		for _, noun := range cat.Nouns {
			for _, ent := range session.Ctx.Resolve(parse.NounPhrase{Text: noun}, text) {
				g.Add(semID, pred, ent.ID)
			}
		}
	}
}

// unifyNarrator merges this narrative's first-person narrator with any
// previously seen narrator carrying the same normalized label set.
func (p *Processor) unifyNarrator(session *assemble.Session) {
	narrator := session.Ctx.Narrator()
	canonical, merged := p.narrators.Canonical(narrator.Texts)
	if canonical == "" || canonical == narrator.ID {
		return
	}
	session.Graph.RenameSubject(narrator.ID, canonical)
	session.Ctx.RenameNarrator(canonical)
	if merged {
		p.logger.Debug("narrator unified", "id", canonical)
	}
}

// enrichEntities runs the attempt-once external lookups over the
// narrative's agents and locations.
func (p *Processor) enrichEntities(ctx context.Context, session *assemble.Session) {
	if p.enricher == nil {
		return
	}
	g := session.Graph

	// The narrator may carry a unified ID by now; compare records, not IDs.
	narrator := session.Ctx.Narrator()
	for _, rec := range session.Ctx.Agents() {
		if rec == narrator || len(rec.Texts) == 0 {
			continue
		}
		if desc, ok := p.enricher.Wikidata(ctx, rec.Texts[0]); ok {
			p.applyDescription(g, rec.ID, desc)
		} else if desc, ok := p.enricher.Wikipedia(ctx, rec.Texts[0]); ok {
			p.applyDescription(g, rec.ID, desc)
		}
	}

	for _, rec := range session.Ctx.Locations() {
		if len(rec.Texts) == 0 {
			continue
		}
		hint, ok := p.enricher.GeoNames(ctx, rec.Texts[0])
		if !ok {
			continue
		}
		if hint.Class != "" {
			g.AddType(rec.ID, hint.Class)
		}
		if hint.Country != "" {
			g.Add(rec.ID, onto.PredCountry, hint.Country)
		}
		if hint.AdminLevel > 0 {
			g.Add(rec.ID, onto.PredAdminLevel, hint.AdminLevel)
		}
		if hint.ExternalID != "" {
			g.Add(rec.ID, onto.PredExternalID, hint.ExternalID)
		}
	}
}

func (p *Processor) applyDescription(g *turtle.Graph, id string, desc enrich.Description) {
	if desc.Text != "" {
		g.Add(id, onto.PredDescription, desc.Text)
	}
	for _, alt := range desc.AltNames {
		g.Add(id, onto.PredAltName, alt)
	}
	if desc.ExternalID != "" {
		g.Add(id, onto.PredExternalID, desc.ExternalID)
	}
	if desc.Link != "" {
		g.Add(id, onto.PredExternalLink, desc.Link)
	}
}
