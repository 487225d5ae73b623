package lexicon

import (
	"strings"

	"github.com/c360studio/narragraph/vocabulary/onto"
)

// modalClasses maps a modal auxiliary to the event class expressing its
// readiness/possibility/obligation semantics.
var modalClasses = map[string]string{
	"can":    onto.ReadinessAndAbility,
	"could":  onto.ReadinessAndAbility,
	"may":    onto.OpportunityAndPossibility,
	"might":  onto.OpportunityAndPossibility,
	"must":   onto.RequirementAndDependence,
	"ought":  onto.RequirementAndDependence,
	"shall":  onto.RequirementAndDependence,
	"should": onto.RequirementAndDependence,
	"would":  onto.OpportunityAndPossibility,
	"will":   onto.IntentionAndGoal,
}

// ModalClass returns the event class for a modal auxiliary. Future tense
// shifts ability/possibility modals toward intention, and narrator-inclusive
// subjects ("we must leave") read as intention rather than external
// obligation.
func ModalClass(modal, tense string, narratorSubject bool) (string, bool) {
	cls, ok := modalClasses[strings.ToLower(modal)]
	if !ok {
		return "", false
	}
	if tense == "future" && (cls == onto.ReadinessAndAbility || cls == onto.OpportunityAndPossibility) {
		return onto.IntentionAndGoal, true
	}
	if narratorSubject && cls == onto.RequirementAndDependence {
		return onto.IntentionAndGoal, true
	}
	return cls, true
}
