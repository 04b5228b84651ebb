package notifications

import "strings"

// MatchesLocation reports whether an item's free-text location contains any
// of the user's preferred-location strings, case-insensitively. Plain
// substring containment is the contract: "Library" matches "Near the
// Library, 2nd floor", a typo does not. No tokenization, no fuzzing, so the
// rule stays explainable to end users.
func MatchesLocation(itemLocation string, preferred []string) bool {
	location := strings.ToLower(itemLocation)
	if location == "" {
		return false
	}

	for _, p := range preferred {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" && strings.Contains(location, p) {
			return true
		}
	}

	return false
}
