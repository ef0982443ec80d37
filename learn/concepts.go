// Package learn explains documents at a reader's level: it finds the
// acronyms, technical terms, and difficult vocabulary in a text, then
// builds glossaries, pre-reading lists, and simplified renditions
// around them.
package learn

import (
	"regexp"
	"sort"
	"strings"
)

const (
	maxAcronyms   = 30
	maxTechnical  = 20
	maxDifficult  = 25
	maxPhrases    = 20
	maxOrdered    = 40
	contextRadius = 60
)

// Term is one extracted concept with its difficulty and origin.
type Term struct {
	Term       string `json:"term"`
	Type       string `json:"type"`
	Frequency  int    `json:"frequency,omitempty"`
	Difficulty int    `json:"difficulty,omitempty"`
	Context    string `json:"context,omitempty"`
}

// Concepts is everything the extractor found, plus the vocabulary in
// first-appearance order.
type Concepts struct {
	Acronyms       []Term `json:"acronyms"`
	TechnicalTerms []Term `json:"technical_terms"`
	DifficultWords []Term `json:"difficult_words"`
	Phrases        []Term `json:"concepts"`
	Ordered        []Term `json:"vocabulary_ordered"`
}

// basicWords never need explaining.
var basicWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`the a an is was are were be been being have
		has had do does did will would could should may might and or but not with
		this that from by as into at on in to for of up down out off over it its
		we our you your he she they their i my me him her us them what which who
		how when where why all each every some any no more most other also just
		very can get use used using make made take taken give given go goes come
		comes see seen know known think thought want need look work way day time
		year new old large small high low different important following based
		between including without through during before after both only same than
		too such then these those here there about`) {
		basicWords[w] = struct{}{}
	}
}

var (
	acronymPattern  = regexp.MustCompile(`\b[A-Z]{2,8}\b`)
	technicalSuffix = regexp.MustCompile(`(?i)^[a-z]+(tion|ization|isation|ology|ometry|ography|ysis|ithm|ecture|ework|ence|ance|ility|icity|ivity|ment|ation|ular|ified|ifying)$`)
	longWordPattern = regexp.MustCompile(`\b[a-zA-Z]{6,}\b`)
	veryLongPattern = regexp.MustCompile(`\b[a-zA-Z]{8,}\b`)
	phrasePattern   = regexp.MustCompile(`\b[A-Z][a-z]+ (?:[A-Z][a-z]+ )*(?:[A-Z][a-z]+|[A-Z]+)\b`)
	orderedWord     = regexp.MustCompile(`\b[A-Za-z]{3,}\b`)
)

var hardSuffixes = []string{
	"ification", "ization", "ography", "ometry", "ithm",
	"ecture", "ology", "ysis", "icular",
}

// ConceptExtractor pulls explainable vocabulary out of document text.
type ConceptExtractor struct{}

// NewConceptExtractor returns a ready extractor.
func NewConceptExtractor() *ConceptExtractor { return &ConceptExtractor{} }

// Extract finds acronyms, technical terms, difficult words, and
// capitalized concept phrases, and orders the combined vocabulary by
// first appearance in the text.
func (e *ConceptExtractor) Extract(text string) Concepts {
	c := Concepts{
		Acronyms:       e.acronyms(text),
		TechnicalTerms: e.technicalTerms(text),
		DifficultWords: e.difficultWords(text),
		Phrases:        e.phrases(text),
	}
	c.Ordered = e.orderedVocabulary(text, c)
	return c
}

func (e *ConceptExtractor) acronyms(text string) []Term {
	seen := make(map[string]struct{})
	var out []Term
	for _, loc := range acronymPattern.FindAllStringIndex(text, -1) {
		term := text[loc[0]:loc[1]]
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		start := loc[0] - contextRadius
		if start < 0 {
			start = 0
		}
		end := loc[1] + contextRadius
		if end > len(text) {
			end = len(text)
		}
		context := strings.TrimSpace(strings.ReplaceAll(text[start:end], "\n", " "))
		out = append(out, Term{Term: term, Type: "acronym", Context: context})
		if len(out) == maxAcronyms {
			break
		}
	}
	return out
}

func (e *ConceptExtractor) technicalTerms(text string) []Term {
	var out []Term
	for _, wf := range wordFrequencies(text, longWordPattern, 50) {
		if _, basic := basicWords[wf.word]; basic {
			continue
		}
		if !technicalSuffix.MatchString(wf.word) {
			continue
		}
		out = append(out, Term{
			Term:       wf.word,
			Type:       "technical",
			Frequency:  wf.count,
			Difficulty: scoreDifficulty(wf.word),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Difficulty > out[j].Difficulty })
	if len(out) > maxTechnical {
		out = out[:maxTechnical]
	}
	return out
}

func (e *ConceptExtractor) difficultWords(text string) []Term {
	var out []Term
	for _, wf := range wordFrequencies(text, veryLongPattern, 60) {
		if _, basic := basicWords[wf.word]; basic {
			continue
		}
		d := scoreDifficulty(wf.word)
		if d < 3 {
			continue
		}
		out = append(out, Term{
			Term:       wf.word,
			Type:       "vocabulary",
			Frequency:  wf.count,
			Difficulty: d,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Difficulty > out[j].Difficulty })
	if len(out) > maxDifficult {
		out = out[:maxDifficult]
	}
	return out
}

func (e *ConceptExtractor) phrases(text string) []Term {
	seen := make(map[string]struct{})
	var out []Term
	for _, phrase := range phrasePattern.FindAllString(text, -1) {
		phrase = strings.TrimSpace(phrase)
		key := strings.ToLower(phrase)
		if _, dup := seen[key]; dup || len(phrase) < 8 {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Term{Term: phrase, Type: "concept"})
		if len(out) == maxPhrases {
			break
		}
	}
	return out
}

// orderedVocabulary walks the text once and emits known terms in the
// order they first appear.
func (e *ConceptExtractor) orderedVocabulary(text string, c Concepts) []Term {
	byKey := make(map[string]Term)
	for _, groups := range [][]Term{c.Acronyms, c.TechnicalTerms, c.DifficultWords} {
		for _, t := range groups {
			byKey[strings.ToLower(t.Term)] = t
		}
	}
	seen := make(map[string]struct{}, len(byKey))
	var out []Term
	for _, w := range orderedWord.FindAllString(text, -1) {
		key := strings.ToLower(w)
		term, known := byKey[key]
		if !known {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, term)
		if len(out) == maxOrdered {
			break
		}
	}
	return out
}

type wordFreq struct {
	word  string
	count int
}

// wordFrequencies counts matching words (lowercased) and returns the
// top n by frequency, ties broken by first appearance.
func wordFrequencies(text string, pattern *regexp.Regexp, n int) []wordFreq {
	counts := make(map[string]int)
	var order []string
	for _, w := range pattern.FindAllString(text, -1) {
		w = strings.ToLower(w)
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}
	out := make([]wordFreq, 0, len(order))
	for _, w := range order {
		out = append(out, wordFreq{w, counts[w]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].count > out[j].count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func scoreDifficulty(word string) int {
	score := 0
	switch {
	case len(word) >= 12:
		score += 3
	case len(word) >= 9:
		score += 2
	case len(word) >= 7:
		score++
	}
	for _, suf := range hardSuffixes {
		if strings.HasSuffix(word, suf) {
			score += 2
			break
		}
	}
	return score
}
