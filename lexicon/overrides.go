package lexicon

import (
	"strings"

	"github.com/c360studio/narragraph/vocabulary/onto"
)

// Override tables exist because many lemmas legitimately map to more than one
// ontology branch and probabilistic text search cannot express that reliably.
// A hit here returns the class list directly and the ontology service is
// never consulted, even if it would match with high confidence.

var verbOverrides = map[string][]string{
	"win":       {onto.AchievementAndAccomplishment, onto.EndOfConflict},
	"lose":      {onto.Failure, onto.EndOfConflict},
	"escape":    {onto.EscapeEvent, onto.MovementTravelAndTransportation},
	"flee":      {onto.EscapeEvent, onto.MovementTravelAndTransportation},
	"emigrate":  {onto.MovementTravelAndTransportation, onto.SeparationAndDispersal},
	"immigrate": {onto.MovementTravelAndTransportation},
	"deport":    {onto.MovementTravelAndTransportation, onto.RemovalAndRestriction},
	"arrest":    {onto.ArrestAndImprisonment, onto.LawEnforcement},
	"imprison":  {onto.ArrestAndImprisonment, onto.Punishment},
	"liberate":  {onto.ReturnRecoveryAndRelease, onto.EndOfConflict},
	"marry":     {onto.Affiliation, onto.Agreement},
	"divorce":   {onto.SeparationAndDispersal, onto.LegalEvent},
	"graduate":  {onto.AchievementAndAccomplishment, onto.EducationRelated},
	"die":       {onto.Death},
	"bear":      {onto.Birth},
	"kill":      {onto.Death, onto.AggressiveCriminalOrHostileAct},
	"murder":    {onto.Death, onto.AggressiveCriminalOrHostileAct},
	"invade":    {onto.ViolenceAndWar, onto.MovementTravelAndTransportation},
	"occupy":    {onto.ViolenceAndWar, onto.RemovalAndRestriction},
	"surrender": {onto.EndOfConflict, onto.Failure},
	"retire":    {onto.End, onto.EconomicEvent},
	"teach":     {onto.EducationRelated, onto.CommunicationAndSpeechAct},
	"study":     {onto.EducationRelated, onto.Cognition},
	"vote":      {onto.PoliticalEvent, onto.Assessment},
	"protest":   {onto.DemonstrationStrikeAndRally, onto.DisagreementAndDispute},
	"hide":      {onto.Avoidance},
	"rescue":    {onto.ReturnRecoveryAndRelease},
	"buy":       {onto.AcquisitionPossessionAndTransfer, onto.EconomicEvent},
	"sell":      {onto.AcquisitionPossessionAndTransfer, onto.EconomicEvent},
	"publish":   {onto.IssuingAndPublishing},
	"found":     {onto.ProductionManufactureAndCreation, onto.Start},
}

var nounOverrides = map[string][]string{
	"war":         {onto.ViolenceAndWar},
	"battle":      {onto.ViolenceAndWar},
	"holocaust":   {onto.ViolenceAndWar, onto.DiscriminationAndPrejudice},
	"genocide":    {onto.Death, onto.DiscriminationAndPrejudice},
	"pogrom":      {onto.AggressiveCriminalOrHostileAct, onto.DiscriminationAndPrejudice},
	"ghetto":      {onto.PopulatedPlace, onto.DiscriminationAndPrejudice},
	"camp":        {onto.BuildingAndDwelling},
	"refugee":     {onto.Person, onto.MovementTravelAndTransportation},
	"immigrant":   {onto.Person, onto.MovementTravelAndTransportation},
	"army":        {onto.OrganizationalEntity, onto.GroupOfAgents},
	"government":  {onto.GovernmentalEntity},
	"church":      {onto.ReligiousGroup, onto.BuildingAndDwelling},
	"synagogue":   {onto.ReligiousGroup, onto.BuildingAndDwelling},
	"school":      {onto.EducationRelated, onto.BuildingAndDwelling},
	"university":  {onto.EducationRelated, onto.OrganizationalEntity},
	"band":        {onto.OrganizationalEntity, onto.GroupOfAgents},
	"family":      {onto.GroupOfAgents, onto.Affiliation},
	"wedding":     {onto.Agreement, onto.MeetingAndEncounter},
	"funeral":     {onto.Death, onto.MeetingAndEncounter},
	"election":    {onto.PoliticalEvent, onto.Assessment},
	"revolution":  {onto.Change, onto.ViolenceAndWar},
	"depression":  {onto.EconomicEvent, onto.NegativeEmotion},
	"fear":        {onto.NegativeEmotion},
	"joy":         {onto.PositiveEmotion},
	"disease":     {onto.HealthAndDiseaseRelated},
	"epidemic":    {onto.HealthAndDiseaseRelated},
	"famine":      {onto.EnvironmentalIssue, onto.TroubleAndProblem},
	"money":       {onto.MonetaryAndFinancialInstrument},
	"newspaper":   {onto.InformationSource},
	"book":        {onto.InformationSource},
	"train":       {onto.Vehicle},
	"ship":        {onto.Vehicle},
	"gun":         {onto.WeaponAndAmmunition},
	"bomb":        {onto.WeaponAndAmmunition},
	"farm":        {onto.LineOfBusiness, onto.Location},
	"factory":     {onto.LineOfBusiness, onto.BuildingAndDwelling},
	"attack":      {onto.AggressiveCriminalOrHostileAct},
	"journey":     {onto.MovementTravelAndTransportation},
	"birth":       {onto.Birth},
	"death":       {onto.Death},
	"marriage":    {onto.Affiliation, onto.Agreement},
	"citizenship": {onto.Affiliation, onto.PoliticalEvent},
}

// NounOverride returns the override class list for a noun lemma.
func (l *Lexicon) NounOverride(lemma string) ([]string, bool) {
	classes, ok := l.NounOverrides[strings.ToLower(lemma)]
	return classes, ok
}

// VerbOverride returns the override class list for a verb lemma. Phrasal
// lemmas ("give up") are looked up as a unit.
func (l *Lexicon) VerbOverride(lemma string) ([]string, bool) {
	classes, ok := l.VerbOverrides[strings.ToLower(lemma)]
	return classes, ok
}
