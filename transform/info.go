// Package transform turns repaired text into structured outputs:
// extracted information, redacted copies, a document classification,
// and reformatted renditions.
package transform

import (
	"regexp"
	"strings"

	"github.com/lexkit/lexkit/nlp"
)

const (
	maxStatistics   = 10
	maxKeyValues    = 15
	maxHeadings     = 20
	maxInfoKeywords = 15
)

// Statistic is a number found with its surrounding context.
type Statistic struct {
	Value   string `json:"value"`
	Context string `json:"context"`
}

// Information is the structured view of a document.
type Information struct {
	Entities      map[string][]string `json:"entities"`
	Keywords      []string            `json:"keywords"`
	Statistics    []Statistic         `json:"statistics"`
	KeyValues     map[string]string   `json:"key_values"`
	Headings      []string            `json:"headings"`
	SentenceCount int                 `json:"sentence_count"`
	WordCount     int                 `json:"word_count"`
	CharCount     int                 `json:"char_count"`
}

var (
	statisticPattern = regexp.MustCompile(`(\d+(?:\.\d+)?(?:\s?%)?)\s+([a-zA-Z\s]{3,30})`)
	keyValuePattern  = regexp.MustCompile(`([A-Z][a-z\s]{2,30}):\s*([^\n]{3,60})`)
)

// ExtractInformation pulls entities, keywords, numeric statistics,
// label:value pairs, and headings out of text.
func ExtractInformation(text string) Information {
	scorer := nlp.NewKeywordScorer()
	var keywords []string
	for _, kw := range scorer.Keywords(text, maxInfoKeywords) {
		keywords = append(keywords, kw.Word)
	}
	return Information{
		Entities:      nlp.Entities(text),
		Keywords:      keywords,
		Statistics:    statistics(text),
		KeyValues:     keyValues(text),
		Headings:      headings(text),
		SentenceCount: len(nlp.ExtractSentences(text)),
		WordCount:     len(strings.Fields(text)),
		CharCount:     len(text),
	}
}

func statistics(text string) []Statistic {
	var out []Statistic
	for _, m := range statisticPattern.FindAllStringSubmatch(text, maxStatistics) {
		out = append(out, Statistic{Value: m[1], Context: strings.TrimSpace(m[2])})
	}
	return out
}

func keyValues(text string) map[string]string {
	out := make(map[string]string)
	for _, m := range keyValuePattern.FindAllStringSubmatch(text, maxKeyValues) {
		out[strings.TrimSpace(m[1])] = strings.TrimSpace(m[2])
	}
	return out
}

// headings finds short capitalized lines without trailing punctuation.
func headings(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= 10 || len(line) >= 80 {
			continue
		}
		first := line[0]
		if first < 'A' || first > 'Z' {
			continue
		}
		if strings.HasSuffix(line, ".") || strings.HasSuffix(line, ",") || strings.HasSuffix(line, ";") {
			continue
		}
		out = append(out, line)
		if len(out) == maxHeadings {
			break
		}
	}
	return out
}
