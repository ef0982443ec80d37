package transform

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lexkit/lexkit/nlp"
)

const (
	maxGrammarIssues = 10
	grammarClipLen   = 40
)

// ValidateGrammar runs lightweight checks over each extracted sentence
// and reports human-readable findings: sentences that open without a
// capital letter and immediately repeated words. At most ten findings
// are returned.
func ValidateGrammar(text string) []string {
	var issues []string
	for _, s := range nlp.ExtractSentences(text) {
		if len(issues) >= maxGrammarIssues {
			break
		}
		r := []rune(s)
		if len(r) > 0 && unicode.IsLower(r[0]) {
			issues = append(issues, fmt.Sprintf("sentence may not start correctly: %q", clipRunes(s, grammarClipLen)))
		}
		if word, ok := repeatedWord(s); ok && len(issues) < maxGrammarIssues {
			issues = append(issues, fmt.Sprintf("possible duplicate word: %q", word))
		}
	}
	return issues
}

// repeatedWord reports the first word that appears twice in a row,
// compared case-insensitively with surrounding punctuation stripped.
func repeatedWord(s string) (string, bool) {
	prev := ""
	for _, w := range strings.Fields(s) {
		t := strings.ToLower(strings.Trim(w, ".,;:!?\"'()"))
		if t != "" && t == prev {
			return t, true
		}
		prev = t
	}
	return "", false
}

func clipRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
