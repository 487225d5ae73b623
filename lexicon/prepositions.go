package lexicon

import (
	"fmt"
	"strings"
)

// Kind is the coarse kind of a prepositional object used to select a
// predicate clause.
type Kind string

const (
	// KindAny matches every object; used for default clauses.
	KindAny Kind = ""
	// KindAgent matches person/group/organization objects.
	KindAgent Kind = "Agent"
	// KindLocation matches location objects.
	KindLocation Kind = "Location"
	// KindTime matches temporal objects.
	KindTime Kind = "Time"
)

// PredicateClause is one alternative of a preposition rule.
type PredicateClause struct {
	Kind      Kind
	Predicate string
	// Reversed marks "obj+" predicates: the prepositional object becomes the
	// triple's subject and the event its object.
	Reversed bool
}

// PrepRule is the parsed rule for one preposition. Clauses are evaluated in
// order; the first whose Kind matches wins.
type PrepRule struct {
	Clauses []PredicateClause
}

// Select returns the predicate clause for an object of the given kind. The
// second return is false when no clause matches and the rule has no default.
func (r PrepRule) Select(kind Kind) (PredicateClause, bool) {
	for _, c := range r.Clauses {
		if c.Kind == KindAny || c.Kind == kind {
			return c, true
		}
	}
	return PredicateClause{}, false
}

// RevisionRule retroactively swaps an emitted predicate once the clause's
// event class is known.
type RevisionRule struct {
	EventClass  string
	Preposition string
	From        string
	To          string
}

// parsePrepositionRules parses the preposition rule source. The format is one
// rule per line; see data/prepositions.ngl for the grammar.
func parsePrepositionRules(src string) (map[string]PrepRule, []RevisionRule, error) {
	rules := make(map[string]PrepRule)
	var revisions []RevisionRule

	for lineNo, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "revise ") {
			rev, err := parseRevision(strings.TrimPrefix(line, "revise "))
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", lineNo+1, err)
			}
			revisions = append(revisions, rev)
			continue
		}

		prep, rest, ok := strings.Cut(line, "=>")
		if !ok {
			return nil, nil, fmt.Errorf("line %d: missing '=>'", lineNo+1)
		}
		prep = strings.ToLower(strings.TrimSpace(prep))
		if prep == "" {
			return nil, nil, fmt.Errorf("line %d: empty preposition", lineNo+1)
		}
		if _, dup := rules[prep]; dup {
			return nil, nil, fmt.Errorf("line %d: duplicate rule for %q", lineNo+1, prep)
		}

		rule, err := parseClauses(rest)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		rules[prep] = rule
	}

	return rules, revisions, nil
}

func parseClauses(src string) (PrepRule, error) {
	var rule PrepRule
	for _, part := range strings.Split(src, "|") {
		fields := strings.Fields(part)
		var clause PredicateClause
		switch len(fields) {
		case 1:
			clause.Predicate = fields[0]
		case 2:
			switch Kind(fields[0]) {
			case KindAgent, KindLocation, KindTime:
				clause.Kind = Kind(fields[0])
			default:
				return PrepRule{}, fmt.Errorf("unknown kind %q", fields[0])
			}
			clause.Predicate = fields[1]
		default:
			return PrepRule{}, fmt.Errorf("malformed clause %q", strings.TrimSpace(part))
		}

		if rest, ok := strings.CutPrefix(clause.Predicate, "obj+"); ok {
			clause.Reversed = true
			clause.Predicate = rest
		}
		if !strings.HasPrefix(clause.Predicate, ":") {
			return PrepRule{}, fmt.Errorf("predicate %q must be prefixed", clause.Predicate)
		}

		// A default clause ends the rule; anything after it is unreachable.
		if len(rule.Clauses) > 0 && rule.Clauses[len(rule.Clauses)-1].Kind == KindAny {
			return PrepRule{}, fmt.Errorf("clause after default")
		}
		rule.Clauses = append(rule.Clauses, clause)
	}
	return rule, nil
}

func parseRevision(src string) (RevisionRule, error) {
	old, to, ok := strings.Cut(src, "=>")
	if !ok {
		return RevisionRule{}, fmt.Errorf("revision missing '=>'")
	}
	fields := strings.Fields(old)
	if len(fields) != 3 {
		return RevisionRule{}, fmt.Errorf("revision needs class, preposition, and old predicate")
	}
	newPred := strings.TrimSpace(to)
	if !strings.HasPrefix(fields[0], ":") || !strings.HasPrefix(fields[2], ":") || !strings.HasPrefix(newPred, ":") {
		return RevisionRule{}, fmt.Errorf("revision terms must be prefixed")
	}
	return RevisionRule{
		EventClass:  fields[0],
		Preposition: strings.ToLower(fields[1]),
		From:        fields[2],
		To:          newPred,
	}, nil
}
