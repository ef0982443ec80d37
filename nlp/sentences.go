package nlp

import (
	"strings"
	"unicode"
)

const (
	minSentenceWords = 5
	minSentenceAlpha = 0.55
)

// ExtractSentences splits repaired text into candidate sentences and filters
// out fragments too short or too noisy to be real prose. Candidates need at
// least five alphabetic words and an alphabetic rune ratio of 0.55.
//
// Splitting is heuristic: a sentence boundary is terminal punctuation
// followed by whitespace and a capital letter, quote, or open paren.
// Abbreviations such as "Dr. Smith" may still mis-split; callers accept that
// imprecision rather than paying for a full parser.
//
// The returned order is document order and is semantically significant:
// summaries must report selected sentences in this order.
func ExtractSentences(text string) []string {
	var out []string
	for _, raw := range splitSentences(text) {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		if AlphaWordCount(s) < minSentenceWords {
			continue
		}
		if AlphaRatio(s) < minSentenceAlpha {
			continue
		}
		out = append(out, s)
	}
	return out
}

func splitSentences(text string) []string {
	runes := []rune(strings.ReplaceAll(text, "\n", " "))
	var parts []string
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		// consume a run of terminal punctuation
		j := i + 1
		for j < len(runes) && isTerminal(runes[j]) {
			j++
		}
		k := j
		for k < len(runes) && unicode.IsSpace(runes[k]) {
			k++
		}
		if k == j || k >= len(runes) {
			i = j - 1
			continue
		}
		if unicode.IsUpper(runes[k]) || runes[k] == '"' || runes[k] == '\'' || runes[k] == '(' {
			parts = append(parts, string(runes[start:j]))
			start = k
			i = k - 1
		} else {
			i = j - 1
		}
	}
	if start < len(runes) {
		parts = append(parts, string(runes[start:]))
	}
	return parts
}

func isTerminal(r rune) bool { return r == '.' || r == '!' || r == '?' }
