package utils

import "fmt"

// Pluralize formats a word for a count, optionally prefixing the count itself.
// Only the regular English s-suffix is handled, which is all the diagnostic
// messages need.
func Pluralize(word string, count int, includeCount bool) string {
	plural := word
	if count != 1 {
		plural = word + "s"
	}
	if includeCount {
		return fmt.Sprintf("%d %s", count, plural)
	}
	return plural
}
