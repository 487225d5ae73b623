package ingest

import (
	"regexp"
	"strings"

	"github.com/c360studio/narragraph/parse"
)

var (
	headingRe   = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	linkRe      = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	imageRe     = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	emphasisRe  = regexp.MustCompile(`[*_]{1,3}([^*_]+)[*_]{1,3}`)
	codeFenceRe = regexp.MustCompile("(?s)```.*?```")
	inlineCode  = regexp.MustCompile("`([^`]*)`")
)

// PlainText strips markdown syntax down to narrative prose.
func PlainText(markdown string) string {
	text := codeFenceRe.ReplaceAllString(markdown, "")
	text = imageRe.ReplaceAllString(text, "")
	text = linkRe.ReplaceAllString(text, "$1")
	text = headingRe.ReplaceAllString(text, "")
	text = emphasisRe.ReplaceAllString(text, "$1")
	text = inlineCode.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}

// Paragraphs splits prose into non-empty paragraphs.
func Paragraphs(text string) []string {
	var out []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(strings.ReplaceAll(block, "\n", " "))
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}

// sentenceEndRe finds sentence terminators followed by whitespace and an
// uppercase letter or quote. Abbreviations will occasionally split wrong;
// the downstream parser tolerates that.
var sentenceEndRe = regexp.MustCompile(`([.!?]["')\]]?)\s+(["'(\[]?[A-Z])`)

// Sentences splits one paragraph into sentences.
func Sentences(paragraph string) []string {
	marked := sentenceEndRe.ReplaceAllString(paragraph, "$1\x00$2")
	var out []string
	for _, s := range strings.Split(marked, "\x00") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Segment converts an article into the pre-parse document sent to the
// external dependency parser: sentences in order, with the paragraph
// boundary sentinel between paragraphs.
func Segment(article *Article, sourceURL string) *parse.Narrative {
	narrative := &parse.Narrative{
		Title:  article.Title,
		Source: sourceURL,
	}
	offset := 0
	paragraphs := Paragraphs(PlainText(article.Markdown))
	for i, paragraph := range paragraphs {
		if i > 0 {
			narrative.Sentences = append(narrative.Sentences, parse.Sentence{Text: parse.ParagraphBreak})
		}
		for _, sentence := range Sentences(paragraph) {
			narrative.Sentences = append(narrative.Sentences, parse.Sentence{Text: sentence, Offset: offset})
			offset++
		}
	}
	return narrative
}
