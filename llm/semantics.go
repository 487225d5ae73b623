package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/c360studio/narragraph/vocabulary/onto"
)

// RhetoricalDevice is one detected device with its evidence span.
type RhetoricalDevice struct {
	Device   string `json:"device"`
	Evidence string `json:"evidence"`
}

// CategoryAssignment assigns a numbered semantic category to nouns in the
// sentence, with the sentence's stance toward it.
type CategoryAssignment struct {
	Category int      `json:"category"`
	Agree    bool     `json:"agree"`
	Nouns    []string `json:"nouns"`
}

// Class resolves the assignment's taxonomy number.
func (c CategoryAssignment) Class() string {
	return CategoryClass(c.Category)
}

// Semantics is the structured analysis of one sentence.
type Semantics struct {
	Sentiment  string               `json:"sentiment"` // "positive", "negative", "neutral"
	Tense      string               `json:"tense"`
	Summary    string               `json:"summary"`
	GradeLevel int                  `json:"grade_level"`
	Devices    []RhetoricalDevice   `json:"rhetorical_devices"`
	Categories []CategoryAssignment `json:"categories"`
}

// Analyzer classifies sentence-level semantics via a completion model.
type Analyzer struct {
	client *Client
	logger *slog.Logger
	prompt string
}

// NewAnalyzer creates an Analyzer. A nil client disables analysis; Analyze
// then returns empty semantics, which the engine treats as a lookup miss.
func NewAnalyzer(client *Client, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{client: client, logger: logger, prompt: buildSystemPrompt()}
}

// Analyze returns the sentence's semantics. All failures degrade to an
// empty result with a log line; Analyze never returns an error.
func (a *Analyzer) Analyze(ctx context.Context, sentence string) Semantics {
	if a.client == nil || strings.TrimSpace(sentence) == "" {
		return Semantics{}
	}

	content, err := a.client.Complete(ctx, []Message{
		{Role: "system", Content: a.prompt},
		{Role: "user", Content: sentence},
	})
	if err != nil {
		a.logger.Warn("sentence analysis failed", "error", err)
		return Semantics{}
	}

	raw := ExtractJSON(content)
	if raw == "" {
		a.logger.Warn("sentence analysis returned no JSON")
		return Semantics{}
	}

	var sem Semantics
	if err := json.Unmarshal([]byte(raw), &sem); err != nil {
		a.logger.Warn("sentence analysis parse failed", "error", err)
		return Semantics{}
	}
	return sem
}

// buildSystemPrompt renders the instruction with the numbered taxonomy so
// the model's category numbers line up with ours.
func buildSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("Analyze the sentence and reply with a single JSON object with keys: ")
	sb.WriteString(`"sentiment" (positive/negative/neutral), "tense" (past/present/future), `)
	sb.WriteString(`"summary" (under 12 words), "grade_level" (integer), `)
	sb.WriteString(`"rhetorical_devices" (array of {"device","evidence"}), and `)
	sb.WriteString(`"categories" (array of {"category","agree","nouns"}).` + "\n")
	sb.WriteString("Category numbers:\n")

	nums := make([]int, 0, len(Taxonomy))
	for n := range Taxonomy {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	for _, n := range nums {
		sb.WriteString(fmt.Sprintf("%d. %s\n", n, strings.TrimPrefix(Taxonomy[n], ":")))
	}
	sb.WriteString("Use " + onto.OwlThing + " entries only when nothing else fits.\n")
	return sb.String()
}
