package cascade

// commonSynonyms substitutes a more common synonym for words the ontology
// is unlikely to carry under their rarer form. Last-chance retry before the
// sentinel.
var commonSynonyms = map[string]string{
	"automobile": "car",
	"physician":  "doctor",
	"commence":   "begin",
	"conclude":   "end",
	"reside":     "live",
	"residence":  "dwelling",
	"purchase":   "buy",
	"assist":     "help",
	"obtain":     "get",
	"depart":     "leave",
	"perish":     "die",
	"slay":       "kill",
	"wed":        "marry",
	"dwell":      "live",
	"toil":       "work",
	"converse":   "talk",
	"inquire":    "ask",
	"weep":       "cry",
	"aid":        "help",
	"beverage":   "drink",
	"vessel":     "ship",
	"dwelling":   "house",
	"spouse":     "wife",
	"infant":     "baby",
	"ailment":    "illness",
	"conflict":   "war",
	"voyage":     "journey",
}

func commonSynonym(word string) (string, bool) {
	syn, ok := commonSynonyms[word]
	return syn, ok
}
