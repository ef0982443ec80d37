package textrepair

import "regexp"

// Rule is one ordered (pattern, replacement) repair step. Passes are
// expressed as rule tables processed by applyRules so individual rules stay
// independently testable and configurations can be swapped per language.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

func applyRules(text string, rules []Rule) string {
	for _, r := range rules {
		text = r.Pattern.ReplaceAllString(text, r.Replacement)
	}
	return text
}

// DefaultEncodingRules maps typographic Unicode and common OCR byte damage
// to plain ASCII. Applied after NFKC folding.
func DefaultEncodingRules() []Rule {
	return []Rule{
		{regexp.MustCompile("[‘’‚‛]"), "'"},
		{regexp.MustCompile("[“”„‟]"), `"`},
		{regexp.MustCompile("[–—―]"), "-"},
		{regexp.MustCompile("…"), "..."},
		{regexp.MustCompile(" "), " "},
		{regexp.MustCompile(`\|`), "I"},
		{regexp.MustCompile("\x00"), ""},
	}
}

// DefaultArtifactRules strips page furniture and scanner boilerplate that
// OCR faithfully reproduces but prose readers never want.
func DefaultArtifactRules() []Rule {
	return []Rule{
		{regexp.MustCompile(`(?m)^\s*-{2,}\s*Page\s+\d+\s*-{2,}\s*$`), ""},
		{regexp.MustCompile(`(?mi)^\s*Page\s+\d+\s+of\s+\d+\s*$`), ""},
		{regexp.MustCompile(`(?mi)^.*\b(?:ISBN[-\s]?[\dX]|All rights reserved|Reprinted|Copyright \d{4})\b.*$`), ""},
		{regexp.MustCompile(`[©®™§¶†‡]`), ""},
		// any token still carrying a non-ASCII rune is OCR garbage
		{regexp.MustCompile(`\S*[^\x00-\x7F]\S*`), ""},
	}
}

// DefaultLineBreakRules repairs hyphenated word breaks and mid-sentence
// line wraps introduced by the page layout.
func DefaultLineBreakRules() []Rule {
	return []Rule{
		{regexp.MustCompile(`(\w)-\n(\w)`), "${1}${2}"},
		{regexp.MustCompile(`([a-z,;])\n([a-z])`), "${1} ${2}"},
	}
}

// DefaultConfusionRules fixes the systematic recognizer substitutions:
// "rn" read where the glyph was "m", and a leading zero read for "O".
func DefaultConfusionRules() []Rule {
	return []Rule{
		{regexp.MustCompile(`\brn\b`), "m"},
		{regexp.MustCompile(`([a-z])rn([a-z])`), "${1}m${2}"},
		{regexp.MustCompile(`\b0([A-Za-z])`), "O${1}"},
	}
}

// DefaultSpacingRules normalizes whitespace and punctuation spacing.
func DefaultSpacingRules() []Rule {
	return []Rule{
		{regexp.MustCompile(`[ \t]+`), " "},
		{regexp.MustCompile(` +([.,;:!?])`), "${1}"},
		{regexp.MustCompile(`([.!?])([A-Z])`), "${1} ${2}"},
	}
}

// DefaultShortCapsWhitelist lists the 2-letter all-caps tokens that are real
// words rather than recognizer noise.
func DefaultShortCapsWhitelist() []string {
	return []string{
		"AS", "IS", "IT", "IN", "ON", "AT", "TO", "BY", "AN", "OR", "OF",
		"DO", "GO", "HE", "ME", "MY", "NO", "SO", "UP", "US", "WE", "BE",
	}
}

// DefaultVerbMarkers lists finite-verb indicators used by the sentence
// reconstruction pass to decide whether a line is a complete clause.
func DefaultVerbMarkers() []string {
	return []string{
		"is", "are", "was", "were", "be", "been", "am",
		"has", "have", "had", "do", "does", "did",
		"will", "would", "can", "could", "should", "may", "might", "must", "shall",
		"said", "went", "came", "ran", "rode", "told", "saw", "found",
		"knew", "gave", "left", "made", "got", "took", "kept", "stood",
	}
}
