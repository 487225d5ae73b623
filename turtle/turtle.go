// Package turtle serializes knowledge-graph statements to Turtle.
package turtle

import (
	"fmt"
	"strings"
)

// Statement is one triple. Subject and Predicate are prefixed names or full
// IRIs; Object may be a prefixed name, IRI, or a Go literal value.
type Statement struct {
	Subject   string
	Predicate string
	Object    any
}

// Graph accumulates statements. Duplicate statements are dropped so repeated
// assembly passes over the same sentence stay idempotent.
type Graph struct {
	prefixes   []string
	statements []Statement
	seen       map[Statement]bool
}

// NewGraph creates an empty graph with the given prefix declarations, each a
// complete "@prefix p: <iri> ." line.
func NewGraph(prefixes []string) *Graph {
	return &Graph{
		prefixes: prefixes,
		seen:     make(map[Statement]bool),
	}
}

// Add appends a statement unless it is already present.
func (g *Graph) Add(subject, predicate string, object any) {
	stmt := Statement{Subject: subject, Predicate: predicate, Object: object}
	if g.seen[stmt] {
		return
	}
	g.seen[stmt] = true
	g.statements = append(g.statements, stmt)
}

// AddType asserts rdf:type statements for a class mapping. A "+"-joined
// mapping produces one type assertion per class.
func (g *Graph) AddType(subject, mapping string) {
	for _, cls := range strings.Split(mapping, "+") {
		if cls != "" {
			g.Add(subject, "a", cls)
		}
	}
}

// Statements returns the accumulated statements in insertion order.
func (g *Graph) Statements() []Statement {
	return g.statements
}

// RewritePredicate replaces the predicate on every statement of the given
// subject that currently uses from. Returns the number rewritten.
func (g *Graph) RewritePredicate(subject, from, to string) int {
	n := 0
	for i, stmt := range g.statements {
		if stmt.Subject != subject || stmt.Predicate != from {
			continue
		}
		delete(g.seen, stmt)
		stmt.Predicate = to
		if g.seen[stmt] {
			continue
		}
		g.seen[stmt] = true
		g.statements[i] = stmt
		n++
	}
	return n
}

// RenameSubject rewrites every occurrence of old, as subject or as object,
// to the new identifier.
func (g *Graph) RenameSubject(old, new string) {
	for i, stmt := range g.statements {
		changed := false
		if stmt.Subject == old {
			stmt.Subject = new
			changed = true
		}
		if obj, ok := stmt.Object.(string); ok && obj == old {
			stmt.Object = new
			changed = true
		}
		if changed {
			delete(g.seen, g.statements[i])
			g.seen[stmt] = true
			g.statements[i] = stmt
		}
	}
}

// Has reports whether the graph holds any statement with the given subject
// and predicate.
func (g *Graph) Has(subject, predicate string) bool {
	for _, stmt := range g.statements {
		if stmt.Subject == subject && stmt.Predicate == predicate {
			return true
		}
	}
	return false
}

// ObjectsOf returns the objects of all statements matching subject and
// predicate, in insertion order.
func (g *Graph) ObjectsOf(subject, predicate string) []any {
	var out []any
	for _, stmt := range g.statements {
		if stmt.Subject == subject && stmt.Predicate == predicate {
			out = append(out, stmt.Object)
		}
	}
	return out
}

// Serialize renders the prefix prologue followed by the statements, grouped
// by subject in order of first appearance.
func (g *Graph) Serialize() string {
	var sb strings.Builder
	for _, prefix := range g.prefixes {
		sb.WriteString(prefix)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	order := make([]string, 0)
	grouped := make(map[string][]Statement)
	for _, stmt := range g.statements {
		if _, ok := grouped[stmt.Subject]; !ok {
			order = append(order, stmt.Subject)
		}
		grouped[stmt.Subject] = append(grouped[stmt.Subject], stmt)
	}

	for _, subject := range order {
		stmts := grouped[subject]
		sb.WriteString(formatResource(subject))
		sb.WriteString("\n")
		for i, stmt := range stmts {
			sb.WriteString(fmt.Sprintf("    %s %s", formatPredicate(stmt.Predicate), FormatObject(stmt.Object)))
			if i < len(stmts)-1 {
				sb.WriteString(" ;\n")
			} else {
				sb.WriteString(" .\n")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatPredicate(pred string) string {
	if pred == "a" {
		return "a"
	}
	return formatResource(pred)
}

// formatResource renders a prefixed name as-is and a full IRI in angle
// brackets.
func formatResource(name string) string {
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return fmt.Sprintf("<%s>", name)
	}
	return name
}

// FormatObject formats an object value for Turtle output. Strings carrying
// a known prefix or scheme become resources; everything else becomes a
// literal.
func FormatObject(obj any) string {
	switch v := obj.(type) {
	case string:
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return fmt.Sprintf("<%s>", v)
		}
		if isPrefixedName(v) {
			return v
		}
		return "\"" + escapeString(v) + "\""
	case int, int32, int64:
		return fmt.Sprintf("\"%d\"^^xsd:integer", v)
	case float32, float64:
		return fmt.Sprintf("\"%v\"^^xsd:decimal", v)
	case bool:
		return fmt.Sprintf("\"%t\"^^xsd:boolean", v)
	default:
		return "\"" + escapeString(fmt.Sprintf("%v", v)) + "\""
	}
}

// isPrefixedName reports whether a string is a prefixed name rather than a
// literal. Graph identifiers never contain spaces.
func isPrefixedName(s string) bool {
	if strings.ContainsAny(s, " \t\n") {
		return false
	}
	colon := strings.Index(s, ":")
	if colon < 0 {
		return false
	}
	prefix := s[:colon]
	for _, r := range prefix {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_') {
			return false
		}
	}
	return len(s) > colon+1
}

// escapeString escapes special characters for Turtle string literals.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
