package onto

// Role predicates attach resolved entities to events. The "obj+" reversal
// convention in the preposition tables is handled by the assembler; these
// constants are always the forward direction.
const (
	PredHasActiveAgent     = ":has_active_agent"
	PredHasAffectedAgent   = ":has_affected_agent"
	PredAffiliatedAgent    = ":affiliated_agent"
	PredAffiliatedWith     = ":affiliated_with"
	PredHasTopic           = ":has_topic"
	PredHasLocation        = ":has_location"
	PredHasOrigin          = ":has_origin"
	PredHasDestination     = ":has_destination"
	PredHasTime            = ":has_time"
	PredHasBeginning       = ":has_beginning"
	PredHasEnd             = ":has_end"
	PredHasInstrument      = ":has_instrument"
	PredHasRecipient       = ":has_recipient"
	PredHasComponent       = ":has_component"
	PredHasDescribedEntity = ":has_described_entity"
	PredHasHolder          = ":has_holder"
	PredHasAspect          = ":has_aspect"
	PredHasAgentAspect     = ":has_agent_aspect"
	PredDescribes          = ":describes"
	PredHasQuotation       = ":has_quotation"
	PredHasSemantic        = ":has_semantic"
)

// Data properties on entities and events.
const (
	PredText             = ":text"
	PredLabel            = "rdfs:label"
	PredType             = "a"
	PredNegation         = ":negation"
	PredSentiment        = ":sentiment"
	PredSummary          = ":summary"
	PredTense            = ":tense"
	PredGradeLevel       = ":grade_level"
	PredRhetoricalDevice = ":rhetorical_device"
	PredOffset           = ":offset"
	PredAltName          = ":alt_name"
	PredExternalLink     = ":external_link"
	PredExternalID       = ":external_identifier"
	PredDescription      = ":description"
	PredCountry          = ":country"
	PredAdminLevel       = ":admin_level"
	PredNumber           = ":number"
	PredGender           = ":gender"
	PredAgreeTo          = ":agree_to"
	PredOpposeTo         = ":opposed_to"
)

// Prefixes is the namespace prologue prepended to every assembled graph.
// Statements reference classes and predicates through these prefixes only.
var Prefixes = []string{
	"@prefix : <" + Namespace + "> .",
	"@prefix ng: <" + EntityNamespace + "> .",
	"@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .",
	"@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .",
	"@prefix owl: <http://www.w3.org/2002/07/owl#> .",
	"@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .",
}
