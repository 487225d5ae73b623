package lexicon

import (
	"strings"

	"github.com/c360studio/narragraph/vocabulary/onto"
)

// NERClassMap maps a coarse NER category (the trailing component of a noun
// phrase's type tag) to its ontology class. Categories follow the OntoNotes
// label set emitted by the external parser.
var NERClassMap = map[string]string{
	"PERSON":      onto.Person,
	"NORP":        onto.EthnicGroup,
	"ORG":         onto.OrganizationalEntity,
	"GPE":         onto.GeopoliticalEntity,
	"LOC":         onto.Location,
	"FAC":         onto.BuildingAndDwelling,
	"EVENT":       onto.EventAndState,
	"DATE":        onto.PointInTime,
	"TIME":        onto.PointInTime,
	"LAW":         onto.LawAndPolicy,
	"LANGUAGE":    onto.EthnicGroup,
	"MONEY":       onto.MonetaryAndFinancialInstrument,
	"PRODUCT":     onto.MachineAndTool,
	"WORK_OF_ART": onto.InformationSource,
}

// AgentCategories are NER categories whose referents behave as agents during
// graph assembly (objects become affected agents rather than topics).
var AgentCategories = map[string]bool{
	"PERSON": true,
	"GPE":    true,
	"ORG":    true,
	"NORP":   true,
}

// ClassForCategory returns the ontology class for a NER category, or
// owl:Thing when the category is unknown.
func ClassForCategory(category string) string {
	if cls, ok := NERClassMap[strings.ToUpper(category)]; ok {
		return cls
	}
	return onto.OwlThing
}

// IsAgentTag reports whether a composite type tag carries an agent-like NER
// category.
func IsAgentTag(typeTag string) bool {
	for cat := range AgentCategories {
		if strings.Contains(typeTag, cat) {
			return true
		}
	}
	return false
}

// LocationCategories are NER categories resolved into narrative-wide
// location tracking rather than noun tracking.
var LocationCategories = map[string]bool{
	"GPE": true,
	"LOC": true,
	"FAC": true,
}

// TimeCategories are NER categories resolved into narrative-wide time
// tracking.
var TimeCategories = map[string]bool{
	"DATE": true,
	"TIME": true,
}
