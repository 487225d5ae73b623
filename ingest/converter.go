package ingest

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

var excessiveLinesRe = regexp.MustCompile(`\n{4,}`)

// Article is extracted narrative content.
type Article struct {
	Title    string
	Byline   string
	Markdown string
}

// Converter extracts article content from HTML and converts it to markdown.
type Converter struct {
	converter *md.Converter
}

// NewConverter creates a converter.
func NewConverter() *Converter {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())
	return &Converter{converter: converter}
}

// Convert runs readability extraction over the page and converts the
// article body to markdown. pageURL resolves relative links.
func (c *Converter) Convert(htmlContent []byte, pageURL string) (*Article, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page URL: %w", err)
	}

	article, err := readability.FromReader(bytes.NewReader(htmlContent), u)
	if err != nil {
		return nil, fmt.Errorf("extract article: %w", err)
	}

	content := article.Content
	if strings.TrimSpace(content) == "" {
		content = string(htmlContent)
	}

	markdown, err := c.converter.ConvertString(content)
	if err != nil {
		return nil, fmt.Errorf("convert to markdown: %w", err)
	}
	markdown = cleanMarkdown(markdown)

	title := article.Title
	if title == "" {
		title = extractHTMLTitle(htmlContent)
	}
	if title == "" {
		title = extractMarkdownTitle(markdown)
	}

	return &Article{
		Title:    title,
		Byline:   article.Byline,
		Markdown: markdown,
	}, nil
}

// extractHTMLTitle pulls the <title> element from raw HTML.
func extractHTMLTitle(content []byte) string {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return ""
	}
	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			title = strings.TrimSpace(n.FirstChild.Data)
			return
		}
		for c := n.FirstChild; c != nil && title == ""; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title
}

// extractMarkdownTitle returns the first H1 heading.
func extractMarkdownTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}

// cleanMarkdown collapses excessive blank lines and trims trailing spaces.
func cleanMarkdown(content string) string {
	content = excessiveLinesRe.ReplaceAllString(content, "\n\n\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
