package places

import "fmt"

var queryPhrases = map[string]string{
	"coffee":     "coffee shop",
	"cafe":       "cafe",
	"lunch":      "restaurant for lunch",
	"dinner":     "restaurant for dinner",
	"restaurant": "restaurant",
}

// QueryPhrase returns the search phrase for a venue type. Unknown types are
// used verbatim.
func QueryPhrase(venueType string) string {
	if phrase, ok := queryPhrases[venueType]; ok {
		return phrase
	}
	return venueType
}

// SearchTerm composes the free-text query sent to the search tool.
func SearchTerm(venueType, location string) string {
	return fmt.Sprintf("%s near %s", QueryPhrase(venueType), location)
}
