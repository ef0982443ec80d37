package nlp

import "regexp"

// Entity categories recognized by Entities.
const (
	EntityEmail             = "EMAIL"
	EntityPhone             = "PHONE"
	EntityDate              = "DATE"
	EntityURL               = "URL"
	EntityMoney             = "MONEY"
	EntityPercentage        = "PERCENTAGE"
	EntityCapitalizedPhrase = "CAPITALIZED_PHRASE"
	EntityAcronym           = "ACRONYM"
)

var entityPatterns = map[string]*regexp.Regexp{
	EntityEmail: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	EntityPhone: regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	EntityDate: regexp.MustCompile(`\b(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}[/-]\d{1,2}[/-]\d{1,2}|` +
		`(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4})\b`),
	EntityURL:               regexp.MustCompile(`https?://[^\s<>"{}|\\^` + "`" + `\[\]]+`),
	EntityMoney:             regexp.MustCompile(`\$\s?\d+(?:,\d{3})*(?:\.\d{2})?|\d+(?:,\d{3})*\s?(?:USD|EUR|GBP|INR)`),
	EntityPercentage:        regexp.MustCompile(`\d+\.?\d*\s?%`),
	EntityCapitalizedPhrase: regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`),
	EntityAcronym:           regexp.MustCompile(`\b[A-Z]{2,6}\b`),
}

// EntityPattern returns the regular expression behind an entity
// category, or nil for an unknown category.
func EntityPattern(kind string) *regexp.Regexp {
	return entityPatterns[kind]
}

// Entities extracts named entities by pattern matching. No model, no
// training data: categories that produce no matches are absent from the
// result. Matches within a category are deduplicated in first-seen order.
func Entities(text string) map[string][]string {
	out := make(map[string][]string)
	for kind, pattern := range entityPatterns {
		matches := pattern.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		seen := make(map[string]struct{}, len(matches))
		var unique []string
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			unique = append(unique, m)
		}
		out[kind] = unique
	}
	return out
}
