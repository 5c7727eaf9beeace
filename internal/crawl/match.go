package crawl

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lower is the shared default-locale lowercaser (grounded on hivekit's use
// of golang.org/x/text for text normalization). language.Und matches
// spec.md §7's "Unicode default case folding," not a specific locale's
// tailored rules.
var lower = cases.Lower(language.Und)

// anyMatches reports whether any of terms is a case-insensitive substring
// of s (spec.md §7 "Match rule"), grounded on worker_manager.rs's
// any_string_matches/string_matches.
func anyMatches(s string, terms []string) bool {
	if len(terms) == 0 {
		return false
	}
	folded := lower.String(s)
	for _, t := range terms {
		if t == "" {
			continue
		}
		if strings.Contains(folded, lower.String(t)) {
			return true
		}
	}
	return false
}
