package onto

// Namespace is the base IRI for all narragraph ontology terms.
const Namespace = "https://narragraph.dev/ontology/"

// EntityNamespace is the base IRI for entity instances minted during
// narrative processing.
const EntityNamespace = "https://narragraph.dev/entity/"

// OwlThing is the sentinel class for nouns that resist classification.
const OwlThing = "owl:Thing"

// Event and state classes. EventAndState is the root and the sentinel for
// verbs that resist classification.
const (
	EventAndState = ":EventAndState"

	AchievementAndAccomplishment     = ":AchievementAndAccomplishment"
	AcquisitionPossessionAndTransfer = ":AcquisitionPossessionAndTransfer"
	Affiliation                      = ":Affiliation"
	AggressiveCriminalOrHostileAct   = ":AggressiveCriminalOrHostileAct"
	Agreement                        = ":Agreement"
	ArrestAndImprisonment            = ":ArrestAndImprisonment"
	ArtAndEntertainmentEvent         = ":ArtAndEntertainmentEvent"
	Assessment                       = ":Assessment"
	Attempt                          = ":Attempt"
	AttendanceEvent                  = ":AttendanceEvent"
	Avoidance                        = ":Avoidance"
	Birth                            = ":Birth"
	BodilyAct                        = ":BodilyAct"
	Causation                        = ":Causation"
	Change                           = ":Change"
	Cognition                        = ":Cognition"
	CommunicationAndSpeechAct        = ":CommunicationAndSpeechAct"
	Continuation                     = ":Continuation"
	Death                            = ":Death"
	DeceptionAndDishonesty           = ":DeceptionAndDishonesty"
	DelayAndWait                     = ":DelayAndWait"
	DemonstrationStrikeAndRally      = ":DemonstrationStrikeAndRally"
	DisagreementAndDispute           = ":DisagreementAndDispute"
	DiscriminationAndPrejudice       = ":DiscriminationAndPrejudice"
	DistributionSupplyAndStorage     = ":DistributionSupplyAndStorage"
	EconomicEvent                    = ":EconomicEvent"
	EducationRelated                 = ":EducationRelated"
	EmotionalResponse                = ":EmotionalResponse"
	PositiveEmotion                  = ":PositiveEmotion"
	NegativeEmotion                  = ":NegativeEmotion"
	End                              = ":End"
	EndOfConflict                    = ":EndOfConflict"
	EnvironmentAndCondition          = ":EnvironmentAndCondition"
	EnvironmentalIssue               = ":EnvironmentalIssue"
	EscapeEvent                      = ":EscapeEvent"
	Failure                          = ":Failure"
	HealthAndDiseaseRelated          = ":HealthAndDiseaseRelated"
	ImpactAndContact                 = ":ImpactAndContact"
	InclusionAttachmentAndUnification = ":InclusionAttachmentAndUnification"
	IntentionAndGoal                 = ":IntentionAndGoal"
	IssuingAndPublishing             = ":IssuingAndPublishing"
	KnowledgeAndSkill                = ":KnowledgeAndSkill"
	LawEnforcement                   = ":LawEnforcement"
	LegalEvent                       = ":LegalEvent"
	MeetingAndEncounter              = ":MeetingAndEncounter"
	MovementTravelAndTransportation  = ":MovementTravelAndTransportation"
	OpportunityAndPossibility        = ":OpportunityAndPossibility"
	PoliticalEvent                   = ":PoliticalEvent"
	ProductionManufactureAndCreation = ":ProductionManufactureAndCreation"
	Punishment                       = ":Punishment"
	ReadinessAndAbility              = ":ReadinessAndAbility"
	ReligionRelated                  = ":ReligionRelated"
	RemovalAndRestriction            = ":RemovalAndRestriction"
	RequirementAndDependence         = ":RequirementAndDependence"
	ReturnRecoveryAndRelease         = ":ReturnRecoveryAndRelease"
	RewardAndCompensation            = ":RewardAndCompensation"
	RiskTaking                       = ":RiskTaking"
	SensoryPerception                = ":SensoryPerception"
	SeparationAndDispersal           = ":SeparationAndDispersal"
	Start                            = ":Start"
	Success                          = ":Success"
	UtilizationAndConsumption        = ":UtilizationAndConsumption"
	ViolenceAndWar                   = ":ViolenceAndWar"
)

// Agent classes.
const (
	Agent                = ":Agent"
	Person               = ":Person"
	GroupOfAgents        = ":GroupOfAgents"
	OrganizationalEntity = ":OrganizationalEntity"
	GovernmentalEntity   = ":GovernmentalEntity"
	EthnicGroup          = ":EthnicGroup"
	PoliticalGroup       = ":PoliticalGroup"
	ReligiousGroup       = ":ReligiousGroup"
	Animal               = ":Animal"
)

// Location classes.
const (
	Location               = ":Location"
	GeopoliticalEntity     = ":GeopoliticalEntity"
	Country                = ":Country"
	AdministrativeDivision = ":AdministrativeDivision"
	PopulatedPlace         = ":PopulatedPlace"
	GeographicFeature      = ":GeographicFeature"
	BuildingAndDwelling    = ":BuildingAndDwelling"
	OnlineLocation         = ":OnlineLocation"
)

// Time classes.
const (
	Time            = ":Time"
	PointInTime     = ":PointInTime"
	IntervalOfTime  = ":IntervalOfTime"
	RecurringEvent  = ":RecurringEvent"
)

// Inanimate noun classes.
const (
	ComponentPart                = ":ComponentPart"
	FoodAndDrink                 = ":FoodAndDrink"
	MachineAndTool               = ":MachineAndTool"
	MonetaryAndFinancialInstrument = ":MonetaryAndFinancialInstrument"
	MusicalInstrument            = ":MusicalInstrument"
	Plant                        = ":Plant"
	SubstanceAndRawMaterial      = ":SubstanceAndRawMaterial"
	Vehicle                      = ":Vehicle"
	WasteAndResidue              = ":WasteAndResidue"
	WeaponAndAmmunition          = ":WeaponAndAmmunition"
	InformationSource            = ":InformationSource"
	LineOfBusiness               = ":LineOfBusiness"
	ScienceAndTechnology         = ":ScienceAndTechnology"
	LawAndPolicy                 = ":LawAndPolicy"
	TroubleAndProblem            = ":TroubleAndProblem"
)
