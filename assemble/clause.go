package assemble

import (
	"strings"

	"github.com/c360studio/narragraph/cascade"
	"github.com/c360studio/narragraph/lexicon"
	"github.com/c360studio/narragraph/parse"
	"github.com/c360studio/narragraph/resolve"
	"github.com/c360studio/narragraph/vocabulary/onto"
)

// clause processes one verb group and returns the minted event identifiers.
func (a *Assembler) clause(s *Session, sentence string, subjects []resolve.Entity, verb parse.Verb) []string {
	narrator := false
	for _, subj := range subjects {
		if subj.ID == s.Ctx.Narrator().ID {
			narrator = true
			break
		}
	}
	result := a.mapper.ClassifyVerb(verb, sentence, narrator)

	if verb.Auxiliary && result.Idiom == nil && isSentinel(result.Mappings) {
		return []string{a.copula(s, sentence, subjects, verb)}
	}

	if verb.Xcomp != nil {
		return a.xcomp(s, sentence, subjects, verb, result)
	}

	objects := a.resolveAll(s, verb.Objects, sentence)
	return []string{a.event(s, sentence, subjects, objects, verb, result)}
}

// isSentinel reports whether the cascade produced only the catch-all event
// class, meaning the verb itself carries no lexical sense.
func isSentinel(mappings []string) bool {
	if len(mappings) == 0 {
		return true
	}
	return len(mappings) == 1 && mappings[0] == onto.EventAndState
}

// copula handles auxiliary-only clauses ("Joe is an attorney"): the event is
// a described condition rather than a generic happening.
func (a *Assembler) copula(s *Session, sentence string, subjects []resolve.Entity, verb parse.Verb) string {
	eventID := s.Ctx.MintEventID(verb.Text)
	s.Graph.AddType(eventID, onto.EnvironmentAndCondition)
	s.Graph.Add(eventID, onto.PredText, verb.Text)
	if verb.Negated {
		s.Graph.Add(eventID, onto.PredNegation, true)
	}
	s.Ctx.RecordEvent(verb.Text, eventID, []string{onto.EnvironmentAndCondition})

	for _, subj := range subjects {
		a.emitEntity(s, subj)
		s.Graph.Add(eventID, onto.PredHasDescribedEntity, subj.ID)
	}
	for _, comp := range a.resolveAll(s, verb.Complements, sentence) {
		a.emitEntity(s, comp)
		s.Graph.Add(eventID, onto.PredHasAspect, comp.ID)
	}
	for _, obj := range a.resolveAll(s, verb.Objects, sentence) {
		a.emitEntity(s, obj)
		s.Graph.Add(eventID, onto.PredHasAspect, obj.ID)
	}
	a.prepositions(s, sentence, eventID, verb, nil)
	return eventID
}

// xcomp processes a matrix verb and its clausal complement. The matrix
// verb's objects become the complement's subjects; when the matrix reduces
// to an emotion or an aspectual sense and the complement has no object of
// its own, the two fold into a single event.
func (a *Assembler) xcomp(s *Session, sentence string, subjects []resolve.Entity, verb parse.Verb, root cascade.VerbResult) []string {
	inner := *verb.Xcomp
	objects := a.resolveAll(s, verb.Objects, sentence)

	innerSubjects := subjects
	if len(objects) > 0 {
		innerSubjects = objects
	}
	innerResult := a.mapper.ClassifyVerb(inner, sentence, false)
	// An idiom can assign the complement a class of its own ("planned to
	// return" marks the return as an intention, not an occurrence).
	if root.Idiom != nil && root.Idiom.XcompClass != "" {
		innerResult.Mappings = append(innerResult.Mappings, root.Idiom.XcompClass)
	}

	if a.foldable(root) && len(inner.Objects) == 0 {
		// Single event carrying both senses.
		innerObjects := a.resolveAll(s, inner.Objects, sentence)
		inner.Negated = inner.Negated || verb.Negated
		folded := innerResult
		folded.Mappings = append(folded.Mappings, root.Mappings...)
		eventID := a.event(s, sentence, subjects, innerObjects, inner, folded)
		return []string{eventID}
	}

	rootID := a.event(s, sentence, subjects, objects, verb, root)
	innerID := a.event(s, sentence, innerSubjects, a.resolveAll(s, inner.Objects, sentence), inner, innerResult)
	s.Graph.Add(rootID, onto.PredHasTopic, innerID)
	return []string{rootID, innerID}
}

// foldable reports whether a matrix verb's sense should merge into its
// complement instead of standing as its own event.
func (a *Assembler) foldable(root cascade.VerbResult) bool {
	for _, mapping := range root.Mappings {
		for _, cls := range cascade.SplitMulti(mapping) {
			if a.svc.IsSubclassOf(cls, onto.EmotionalResponse) {
				return true
			}
			switch cls {
			case onto.Attempt, onto.Continuation, onto.Start, onto.End, onto.Success, onto.Failure:
				return true
			}
		}
	}
	return false
}

// event mints and emits one event with all of its role predicates, then
// runs the revision pass.
func (a *Assembler) event(s *Session, sentence string, subjects, objects []resolve.Entity, verb parse.Verb, result cascade.VerbResult) string {
	mappings := result.Mappings
	if len(mappings) == 0 {
		mappings = []string{onto.EventAndState}
	}

	// Bare aspectual senses take their meaning from the subject: "the war
	// continued" carries the war's own class.
	if len(subjects) > 0 && len(mappings) == 1 {
		mappings = []string{cascade.FoldTopic(mappings[0], JoinEntityClasses(subjects[0]))}
	}

	eventID := s.Ctx.MintEventID(verb.FullLemma())
	classes := make([]string, 0, len(mappings))
	for _, mapping := range mappings {
		s.Graph.AddType(eventID, mapping)
		classes = append(classes, mapping)
	}
	if result.Modal != "" {
		s.Graph.AddType(eventID, result.Modal)
	}
	for _, env := range result.Env {
		s.Graph.AddType(eventID, cascade.JoinMulti(env.Classes))
	}
	s.Graph.Add(eventID, onto.PredText, verb.Text)
	if verb.Tense != "" {
		s.Graph.Add(eventID, onto.PredTense, verb.Tense)
	}
	if verb.Negated {
		s.Graph.Add(eventID, onto.PredNegation, true)
	}
	s.Ctx.RecordEvent(verb.FullLemma(), eventID, classes)

	affiliation := a.affiliationContext(result, mappings)
	for _, subj := range subjects {
		a.emitEntity(s, subj)
		pred := onto.PredHasActiveAgent
		if result.Idiom != nil && result.Idiom.SubjPredicate != "" {
			pred = result.Idiom.SubjPredicate
		} else if affiliation {
			pred = onto.PredAffiliatedAgent
		}
		s.Graph.Add(eventID, pred, subj.ID)
	}

	for _, obj := range objects {
		a.emitEntity(s, obj)
		pred := onto.PredHasTopic
		switch {
		case result.Idiom != nil && result.Idiom.ObjPredicate != "":
			pred = result.Idiom.ObjPredicate
		case a.agentLike(obj):
			if affiliation {
				pred = onto.PredAffiliatedWith
			} else {
				pred = onto.PredHasAffectedAgent
			}
		}
		s.Graph.Add(eventID, pred, obj.ID)
	}

	// The location carried in from earlier clauses, before this event's own
	// prepositions update it; origin inference needs the prior one.
	carried := s.lastLocation
	observed := a.prepositions(s, sentence, eventID, verb, result.Idiom)
	a.revise(s, eventID, mappings, observed)
	a.inferMovementRoles(s, eventID, mappings, carried)
	return eventID
}

// prepositions emits predicates for every prepositional object and returns
// the set of preposition words observed, for the revision pass.
func (a *Assembler) prepositions(s *Session, sentence, eventID string, verb parse.Verb, idiom *lexicon.IdiomRule) map[string]bool {
	observed := make(map[string]bool)
	for _, prep := range verb.Prepositions {
		word := strings.ToLower(prep.Word)
		observed[word] = true
		for _, obj := range a.resolveAll(s, prep.Objects, sentence) {
			a.emitEntity(s, obj)

			if idiom != nil && idiom.PrepPredicate != "" && strings.EqualFold(idiom.PrepWord, prep.Word) {
				s.Graph.Add(eventID, idiom.PrepPredicate, obj.ID)
				a.thread(s, idiom.PrepPredicate, obj)
				continue
			}

			rule, ok := a.lex.Prepositions[word]
			if !ok {
				s.Graph.Add(eventID, onto.PredHasTopic, obj.ID)
				continue
			}
			clause, ok := rule.Select(a.kindOf(obj))
			if !ok {
				s.Graph.Add(eventID, onto.PredHasTopic, obj.ID)
				continue
			}
			if clause.Reversed {
				s.Graph.Add(obj.ID, clause.Predicate, eventID)
			} else {
				s.Graph.Add(eventID, clause.Predicate, obj.ID)
			}
			a.thread(s, clause.Predicate, obj)
		}
	}
	return observed
}

// thread carries location and time forward across clauses.
func (a *Assembler) thread(s *Session, predicate string, obj resolve.Entity) {
	switch predicate {
	case onto.PredHasLocation, onto.PredHasDestination:
		s.lastLocation = obj.ID
	case onto.PredHasTime, onto.PredHasBeginning:
		s.lastTime = obj.ID
	}
}

// inferMovementRoles fills in an origin for movement events that lack one,
// and default location and time for biographical narratives. carried is the
// location in effect before this event's own prepositions were threaded.
func (a *Assembler) inferMovementRoles(s *Session, eventID string, mappings []string, carried string) {
	movement := false
	for _, mapping := range mappings {
		for _, cls := range cascade.SplitMulti(mapping) {
			if cls == onto.MovementTravelAndTransportation || a.svc.IsSubclassOf(cls, onto.MovementTravelAndTransportation) {
				movement = true
			}
		}
	}

	if movement && carried != "" && !s.Graph.Has(eventID, onto.PredHasOrigin) {
		destination := false
		for _, obj := range s.Graph.ObjectsOf(eventID, onto.PredHasDestination) {
			if obj == carried {
				destination = true
			}
		}
		if !destination {
			s.Graph.Add(eventID, onto.PredHasOrigin, carried)
		}
	}

	if s.Biography && carried != "" && !movement &&
		!s.Graph.Has(eventID, onto.PredHasLocation) && !s.Graph.Has(eventID, onto.PredHasOrigin) {
		s.Graph.Add(eventID, onto.PredHasLocation, carried)
	}

	if s.Biography && s.lastTime != "" &&
		!s.Graph.Has(eventID, onto.PredHasTime) && !s.Graph.Has(eventID, onto.PredHasBeginning) {
		s.Graph.Add(eventID, onto.PredHasTime, s.lastTime)
	}
}

// revise runs the post-hoc predicate rewrite pass: once the event's class
// is known, generic predicates emitted for certain prepositions are swapped
// for more specific ones.
func (a *Assembler) revise(s *Session, eventID string, mappings []string, observed map[string]bool) {
	for _, rule := range a.lex.Revisions {
		if !observed[rule.Preposition] {
			continue
		}
		match := false
		for _, mapping := range mappings {
			for _, cls := range cascade.SplitMulti(mapping) {
				if cls == rule.EventClass || a.svc.IsSubclassOf(cls, rule.EventClass) {
					match = true
				}
			}
		}
		if !match {
			continue
		}
		if n := s.Graph.RewritePredicate(eventID, rule.From, rule.To); n > 0 {
			for _, obj := range s.Graph.ObjectsOf(eventID, rule.To) {
				if id, ok := obj.(string); ok {
					a.thread(s, rule.To, resolve.Entity{ID: id})
				}
			}
		}
	}
}

// agentLike reports whether an entity should take an agent role predicate.
func (a *Assembler) agentLike(ent resolve.Entity) bool {
	if lexicon.IsAgentTag(ent.TypeTag) {
		return true
	}
	for _, mapping := range ent.Classes {
		for _, cls := range cascade.SplitMulti(mapping) {
			if a.svc.IsSubclassOf(cls, onto.Agent) {
				return true
			}
		}
	}
	return false
}

// kindOf maps an entity to the coarse kind used by preposition rules.
func (a *Assembler) kindOf(ent resolve.Entity) lexicon.Kind {
	for _, mapping := range ent.Classes {
		for _, cls := range cascade.SplitMulti(mapping) {
			switch {
			case a.svc.IsSubclassOf(cls, onto.Time):
				return lexicon.KindTime
			case a.svc.IsSubclassOf(cls, onto.Location):
				return lexicon.KindLocation
			case a.svc.IsSubclassOf(cls, onto.Agent):
				return lexicon.KindAgent
			}
		}
	}
	if lexicon.IsAgentTag(ent.TypeTag) {
		return lexicon.KindAgent
	}
	return lexicon.KindAny
}

// affiliationContext reports whether the clause establishes an affiliation,
// which shifts agent role predicates.
func (a *Assembler) affiliationContext(result cascade.VerbResult, mappings []string) bool {
	for _, mapping := range mappings {
		for _, cls := range cascade.SplitMulti(mapping) {
			if cls == onto.Affiliation || a.svc.IsSubclassOf(cls, onto.Affiliation) {
				return true
			}
		}
	}
	return false
}

// JoinEntityClasses flattens an entity's class mappings into one mapping
// entry for folding.
func JoinEntityClasses(ent resolve.Entity) string {
	if len(ent.Classes) == 0 {
		return ""
	}
	return ent.Classes[0]
}
