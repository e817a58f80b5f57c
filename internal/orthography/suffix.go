package orthography

import "strings"

// cinExcluded holds stems (lowercase) that must keep their bare "cin" ending.
var cinExcluded = map[string]struct{}{
	"f":  {},
	"fi": {},
}

// sinOverrides maps a stem (lowercase) to the whole word that replaces the
// match, ahead of the generic stem + "sión" rule.
var sinOverrides = map[string]string{
	"ver": "versión",
}

// decideCion restores "-ción" for words that lost the accented "ó".
func decideCion(word, stem string) string {
	if stem == "" {
		return word
	}
	if _, ok := cinExcluded[strings.ToLower(stem)]; ok {
		return word
	}
	return stem + "ción"
}

// decideSion restores "-sión", consulting sinOverrides first.
func decideSion(word, stem string) string {
	if stem == "" {
		return word
	}
	if fixed, ok := sinOverrides[strings.ToLower(stem)]; ok {
		return fixed
	}
	return stem + "sión"
}

// futureStems are truncated future-tense forms that lost their final "á".
// Only standalone words are touched.
var futureStems = []string{
	"vivir", "crecer", "ser", "dar", "har", "podr", "tendr",
	"habr", "dir", "querr", "sabr", "valdr", "saldr", "vendr",
}

// ambiguousStems are future stems that are also valid infinitives.
var ambiguousStems = map[string]struct{}{
	"vivir":  {},
	"crecer": {},
	"ser":    {},
	"dar":    {},
}

// phrases run last, as plain substring replacements.
var phrases = []phraseRule{
	{from: "seformen", to: "se formen"},
	{from: "esta creciendo", to: "está creciendo"},
	{from: "esta listo", to: "está listo"},
}
