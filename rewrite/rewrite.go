// Package rewrite renders extracted sentences into flowing prose. It
// normalizes spacing and punctuation, strips dangling conjunctions left
// over from extraction, and threads discourse connectors between
// sentences according to a target style.
package rewrite

import (
	"regexp"
	"strings"
	"unicode"
)

// Style selects the connector set used when joining sentences.
type Style int

const (
	// StyleNeutral mixes plain transitions with unconnected sentences.
	StyleNeutral Style = iota
	// StyleStorytelling uses narrative sequencing connectors.
	StyleStorytelling
	// StyleAcademic uses formal additive connectors.
	StyleAcademic
)

func (s Style) String() string {
	switch s {
	case StyleStorytelling:
		return "storytelling"
	case StyleAcademic:
		return "academic"
	default:
		return "neutral"
	}
}

// ParseStyle maps a style name to its Style value. Unknown names fall
// back to StyleNeutral.
func ParseStyle(name string) Style {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "storytelling", "story":
		return StyleStorytelling
	case "academic", "formal":
		return StyleAcademic
	default:
		return StyleNeutral
	}
}

var styleConnectors = map[Style][]string{
	StyleNeutral: {
		"", "Additionally, ", "", "Also, ", "", "Finally, ",
	},
	StyleStorytelling: {
		"Then, ", "After that, ", "Soon, ", "Before long, ", "As time went on, ", "In the end, ",
	},
	StyleAcademic: {
		"Furthermore, ", "Moreover, ", "In addition, ", "Consequently, ", "Notably, ", "Finally, ",
	},
}

var (
	spaceRuns       = regexp.MustCompile(`\s+`)
	leadingConj     = regexp.MustCompile(`(?i)^(and|but|or|yet|so|because|although|however|therefore)[,\s]+`)
	repeatedTermRun = regexp.MustCompile(`([.!?])[.!?]+$`)
)

// Sentence normalizes a single sentence: whitespace is collapsed, a
// leading conjunction is dropped, the first letter is capitalized, runs
// of terminal punctuation are collapsed, and a period is appended when
// no terminal punctuation is present.
func Sentence(s string) string {
	s = spaceRuns.ReplaceAllString(strings.TrimSpace(s), " ")
	if s == "" {
		return ""
	}
	s = leadingConj.ReplaceAllString(s, "")
	if s == "" {
		return ""
	}
	s = capitalize(s)
	s = repeatedTermRun.ReplaceAllString(s, "$1")
	if !strings.ContainsAny(s[len(s)-1:], ".!?") {
		s += "."
	}
	return s
}

// Join rewrites each sentence and threads the style's connectors
// between them. The first sentence never gets a connector; later
// sentences cycle through the connector list in order.
func Join(sentences []string, style Style) string {
	connectors := styleConnectors[style]
	if connectors == nil {
		connectors = styleConnectors[StyleNeutral]
	}
	parts := make([]string, 0, len(sentences))
	for _, raw := range sentences {
		s := Sentence(raw)
		if s == "" {
			continue
		}
		if len(parts) > 0 {
			conn := connectors[(len(parts)-1)%len(connectors)]
			if conn != "" {
				s = conn + lowerFirst(s)
			}
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func capitalize(s string) string {
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// lowerFirst lowercases the leading letter unless the sentence opens
// with what looks like a proper noun or acronym (two leading capitals).
func lowerFirst(s string) string {
	runes := []rune(s)
	if len(runes) >= 2 && unicode.IsUpper(runes[0]) && unicode.IsUpper(runes[1]) {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
