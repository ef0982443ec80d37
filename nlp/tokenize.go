// Package nlp provides the lexical primitives the rest of the library is
// built on: tokenization, stopword filtering, sentence extraction from
// repaired OCR text, frequency-based keyword scoring, and regex-driven
// entity recognition. Everything here is deterministic and rule-based.
package nlp

import (
	"regexp"
	"strings"
	"unicode"
)

var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// Tokenize splits text into lowercase alphabetic word tokens. Digits and
// punctuation are token boundaries and are never part of a token.
func Tokenize(text string) []string {
	words := wordPattern.FindAllString(text, -1)
	for i, w := range words {
		words[i] = lower(w)
	}
	return words
}

func lower(s string) string { return strings.ToLower(s) }

// AlphaWordCount returns the number of tokens in s made up entirely of
// letters.
func AlphaWordCount(s string) int {
	n := 0
	for _, w := range strings.Fields(s) {
		if isAlphaWord(strings.Trim(w, `.,;:!?"'()[]`)) {
			n++
		}
	}
	return n
}

func isAlphaWord(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// AlphaRatio returns the fraction of non-space runes in s that are letters.
// Empty or all-space input yields 0.
func AlphaRatio(s string) float64 {
	letters, total := 0, 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(letters) / float64(total)
}
