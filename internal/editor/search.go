package editor

import (
	"slices"
	"strings"
)

// SuggestionLimit is how many reference suggestions the form shows.
const SuggestionLimit = 3

// SearchReferences returns reference candidates containing query,
// case-insensitively. Event names come first, then standalone tags, each in
// the given order. A limit <= 0 returns every match.
func SearchReferences(query string, eventNames, tags []string, limit int) []string {
	q := strings.ToLower(query)
	var out []string
	for _, c := range slices.Concat(eventNames, tags) {
		if !strings.Contains(strings.ToLower(c), q) {
			continue
		}
		out = append(out, c)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// NeedsTag reports whether name matches neither an event nor an existing
// tag and would have to be created as a new standalone tag.
func NeedsTag(name string, eventNames, tags []string) bool {
	return !slices.Contains(eventNames, name) && !slices.Contains(tags, name)
}
