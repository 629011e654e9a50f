// Package vocab canonicalizes player vocabulary: verb synonyms, direction
// words and abbreviations, articles and pronouns. It never rejects input;
// unknown words pass through unchanged.
package vocab

import "strings"

// verbSynonyms maps every recognized synonym to its canonical verb.
// Canonical verbs map to themselves so lookups are uniform.
var verbSynonyms = map[string]string{
	"take":      "take",
	"get":       "take",
	"grab":      "take",
	"pick":      "take", // "pick up" is handled as a phrase
	"drop":      "drop",
	"toss":      "drop",
	"discard":   "drop",
	"look":      "look",
	"examine":   "look",
	"inspect":   "look",
	"x":         "look",
	"l":         "look",
	"inventory": "inventory",
	"inv":       "inventory",
	"i":         "inventory",
	"go":        "go",
	"walk":      "go",
	"move":      "go",
	"run":       "go",
	"put":       "put",
	"place":     "put",
	"insert":    "put",
	"open":      "open",
	"unlock":    "unlock",
	"quit":      "quit",
	"exit":      "quit",
	"q":         "quit",
	"restart":   "restart",
	"hint":      "hint",
	"help":      "hint",
}

// phrasalVerbs maps two-word verb phrases to canonical verbs.
var phrasalVerbs = map[string]string{
	"pick up": "take",
	"look at": "look",
	"put down": "drop",
}

var directions = map[string]string{
	"north": "north",
	"n":     "north",
	"south": "south",
	"s":     "south",
	"east":  "east",
	"e":     "east",
	"west":  "west",
	"w":     "west",
	"up":    "up",
	"u":     "up",
	"down":  "down",
	"d":     "down",
}

var prepositions = map[string]bool{
	"in":     true,
	"into":   true,
	"inside": true,
	"on":     true,
	"onto":   true,
	"under":  true,
	"behind": true,
	"with":   true,
	"at":     true,
	"to":     true,
	"from":   true,
}

var articles = map[string]bool{
	"the": true,
	"a":   true,
	"an":  true,
}

var pronouns = map[string]bool{
	"it":    true,
	"them":  true,
	"they":  true,
	"its":   true,
	"their": true,
}

// Normalize lowercases the input and collapses repeated whitespace.
func Normalize(input string) string {
	return strings.Join(strings.Fields(strings.ToLower(input)), " ")
}

// CanonicalVerb maps a verb synonym to its canonical form.
// Unknown verbs are returned unchanged.
func CanonicalVerb(word string) string {
	if v, ok := verbSynonyms[strings.ToLower(word)]; ok {
		return v
	}
	return strings.ToLower(word)
}

// CanonicalPhrase maps a two-word verb phrase (e.g. "pick up") to its
// canonical verb. The second return reports whether the phrase is known.
func CanonicalPhrase(first, second string) (string, bool) {
	v, ok := phrasalVerbs[strings.ToLower(first)+" "+strings.ToLower(second)]
	return v, ok
}

// CanonicalDirection maps a direction word or abbreviation to its canonical
// form. The second return reports whether the word is a direction at all.
func CanonicalDirection(word string) (string, bool) {
	d, ok := directions[strings.ToLower(word)]
	return d, ok
}

// IsDirection reports whether the word is a direction word or abbreviation.
func IsDirection(word string) bool {
	_, ok := directions[strings.ToLower(word)]
	return ok
}

// IsMovementVerb reports whether the canonical verb triggers movement.
func IsMovementVerb(verb string) bool {
	return CanonicalVerb(verb) == "go"
}

// IsPreposition reports whether the word is a recognized preposition.
func IsPreposition(word string) bool {
	return prepositions[strings.ToLower(word)]
}

// IsPronoun reports whether the word is a member of the closed pronoun set.
func IsPronoun(word string) bool {
	return pronouns[strings.ToLower(word)]
}

// StripArticles removes leading determiners ("the", "a", "an") token-wise
// from an object phrase.
func StripArticles(phrase string) string {
	tokens := strings.Fields(phrase)
	for len(tokens) > 0 && articles[strings.ToLower(tokens[0])] {
		tokens = tokens[1:]
	}
	return strings.Join(tokens, " ")
}

// Synonyms returns all recognized synonyms for a canonical verb, including
// the canonical form itself. Used by hosts to register verb aliases.
func Synonyms(canonical string) []string {
	var out []string
	for syn, canon := range verbSynonyms {
		if canon == canonical {
			out = append(out, syn)
		}
	}
	return out
}
