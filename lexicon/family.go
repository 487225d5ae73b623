package lexicon

import "strings"

// FamilyRoles maps a family-role noun to its implied gender ("FEMALE",
// "MALE", or "" for neutral roles). Presence in the map is what marks text as
// a family-role reference; the gender refines pronoun and noun matching.
var FamilyRoles = map[string]string{
	"mother":        "FEMALE",
	"mom":           "FEMALE",
	"grandmother":   "FEMALE",
	"sister":        "FEMALE",
	"daughter":      "FEMALE",
	"aunt":          "FEMALE",
	"niece":         "FEMALE",
	"wife":          "FEMALE",
	"widow":         "FEMALE",
	"stepmother":    "FEMALE",
	"granddaughter": "FEMALE",

	"father":      "MALE",
	"dad":         "MALE",
	"grandfather": "MALE",
	"brother":     "MALE",
	"son":         "MALE",
	"uncle":       "MALE",
	"nephew":      "MALE",
	"husband":     "MALE",
	"widower":     "MALE",
	"stepfather":  "MALE",
	"grandson":    "MALE",

	"parent":      "",
	"grandparent": "",
	"sibling":     "",
	"child":       "",
	"cousin":      "",
	"spouse":      "",
	"relative":    "",
}

// FamilyRole extracts the family-role head from a noun phrase, stripping
// leading possessives and determiners ("her father" -> "father"). The second
// return is false when the phrase is not a family-role reference.
func FamilyRole(text string) (string, bool) {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return "", false
	}
	head := words[len(words)-1]
	if _, ok := FamilyRoles[head]; ok {
		return head, true
	}
	return "", false
}
