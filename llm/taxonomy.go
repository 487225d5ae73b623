package llm

import "github.com/c360studio/narragraph/vocabulary/onto"

// Taxonomy is the numbered category table sent to the model. Categories 1
// through 66 are events and states; 67 upward are noun categories. The
// numbering is load-bearing: category assignments come back as indexes, and
// every downstream dispatch keys on this table.
var Taxonomy = map[int]string{
	1:  onto.AchievementAndAccomplishment,
	2:  onto.AcquisitionPossessionAndTransfer,
	3:  onto.Affiliation,
	4:  onto.AggressiveCriminalOrHostileAct,
	5:  onto.Agreement,
	6:  onto.ArrestAndImprisonment,
	7:  onto.ArtAndEntertainmentEvent,
	8:  onto.Assessment,
	9:  onto.Attempt,
	10: onto.AttendanceEvent,
	11: onto.Avoidance,
	12: onto.Birth,
	13: onto.BodilyAct,
	14: onto.Causation,
	15: onto.Change,
	16: onto.Cognition,
	17: onto.CommunicationAndSpeechAct,
	18: onto.Continuation,
	19: onto.Death,
	20: onto.DeceptionAndDishonesty,
	21: onto.DelayAndWait,
	22: onto.DemonstrationStrikeAndRally,
	23: onto.DisagreementAndDispute,
	24: onto.DiscriminationAndPrejudice,
	25: onto.DistributionSupplyAndStorage,
	26: onto.EconomicEvent,
	27: onto.EducationRelated,
	28: onto.EmotionalResponse,
	29: onto.PositiveEmotion,
	30: onto.NegativeEmotion,
	31: onto.End,
	32: onto.EndOfConflict,
	33: onto.EnvironmentAndCondition,
	34: onto.EnvironmentalIssue,
	35: onto.EscapeEvent,
	36: onto.Failure,
	37: onto.HealthAndDiseaseRelated,
	38: onto.ImpactAndContact,
	39: onto.InclusionAttachmentAndUnification,
	40: onto.IntentionAndGoal,
	41: onto.IssuingAndPublishing,
	42: onto.KnowledgeAndSkill,
	43: onto.LawEnforcement,
	44: onto.LegalEvent,
	45: onto.MeetingAndEncounter,
	46: onto.MovementTravelAndTransportation,
	47: onto.OpportunityAndPossibility,
	48: onto.PoliticalEvent,
	49: onto.ProductionManufactureAndCreation,
	50: onto.Punishment,
	51: onto.ReadinessAndAbility,
	52: onto.ReligionRelated,
	53: onto.RemovalAndRestriction,
	54: onto.RequirementAndDependence,
	55: onto.ReturnRecoveryAndRelease,
	56: onto.RewardAndCompensation,
	57: onto.RiskTaking,
	58: onto.SensoryPerception,
	59: onto.SeparationAndDispersal,
	60: onto.Start,
	61: onto.Success,
	62: onto.UtilizationAndConsumption,
	63: onto.ViolenceAndWar,
	64: onto.LawAndPolicy,
	65: onto.TroubleAndProblem,
	66: onto.EventAndState,

	67: onto.Person,
	68: onto.GroupOfAgents,
	69: onto.OrganizationalEntity,
	70: onto.GovernmentalEntity,
	71: onto.EthnicGroup,
	72: onto.PoliticalGroup,
	73: onto.ReligiousGroup,
	74: onto.Animal,
	75: onto.GeopoliticalEntity,
	76: onto.Country,
	77: onto.AdministrativeDivision,
	78: onto.PopulatedPlace,
	79: onto.GeographicFeature,
	80: onto.BuildingAndDwelling,
	81: onto.OnlineLocation,
	82: onto.PointInTime,
	83: onto.IntervalOfTime,
	84: onto.RecurringEvent,
	85: onto.ComponentPart,
	86: onto.FoodAndDrink,
	87: onto.MachineAndTool,
	88: onto.MonetaryAndFinancialInstrument,
	89: onto.MusicalInstrument,
	90: onto.Plant,
	91: onto.SubstanceAndRawMaterial,
	92: onto.Vehicle,
	93: onto.WasteAndResidue,
	94: onto.WeaponAndAmmunition,
	95: onto.InformationSource,
	96: onto.LineOfBusiness,
	97: onto.ScienceAndTechnology,
	98: onto.OwlThing,
}

// CategoryClass resolves a taxonomy number to its ontology class. Numbers
// at or below the event range resolve to the event sentinel, everything
// above it to owl:Thing.
func CategoryClass(n int) string {
	if cls, ok := Taxonomy[n]; ok {
		return cls
	}
	if n <= 66 {
		return onto.EventAndState
	}
	return onto.OwlThing
}
