package textrepair

import (
	"strings"
	"unicode"
)

// QualityLabel buckets a quality score for display.
type QualityLabel string

const (
	LabelGood  QualityLabel = "GOOD"
	LabelFair  QualityLabel = "FAIR"
	LabelNoisy QualityLabel = "NOISY"
)

// QualityReport is an advisory diagnostic of how readable a text is. It is
// not consumed by the pipeline itself; callers use it to decide whether a
// rescan is worthwhile.
type QualityReport struct {
	Score              int          `json:"score"`
	TotalWords         int          `json:"total_words"`
	CleanWords         int          `json:"clean_words"`
	ValidSentences     int          `json:"valid_sentences"`
	VocabularyRichness float64      `json:"vocabulary_richness"`
	Label              QualityLabel `json:"label"`
}

// QualityScore rates text on a 0-100 scale from the alphabetic-word ratio,
// type-token ratio, mean valid-sentence length, and a bonus when at least
// three valid sentences exist.
func (r *Repairer) QualityScore(text string) QualityReport {
	words := strings.Fields(text)
	rep := QualityReport{TotalWords: len(words), Label: LabelNoisy}
	if len(words) == 0 {
		return rep
	}

	unique := make(map[string]struct{})
	for _, w := range words {
		clean := strings.ToLower(strings.Trim(w, `.,;:!?"'()`))
		if clean != "" && isAlphabetic(clean) {
			rep.CleanWords++
			unique[clean] = struct{}{}
		}
	}
	cleanRatio := float64(rep.CleanWords) / float64(len(words))
	if rep.CleanWords > 0 {
		rep.VocabularyRichness = float64(len(unique)) / float64(rep.CleanWords)
	}

	totalLen := 0
	for _, s := range splitRoughSentences(text) {
		n := alphaWordCount(s)
		if n >= 5 && alphaRatio(s) >= 0.55 {
			rep.ValidSentences++
			totalLen += n
		}
	}
	lengthFactor := 0.0
	if rep.ValidSentences > 0 {
		mean := float64(totalLen) / float64(rep.ValidSentences)
		lengthFactor = mean / 15
		if lengthFactor > 1 {
			lengthFactor = 1
		}
	}

	score := 50*cleanRatio + 15*rep.VocabularyRichness + 20*lengthFactor
	if rep.ValidSentences >= 3 {
		score += 15
	}
	if score > 100 {
		score = 100
	}
	rep.Score = int(score + 0.5)

	switch {
	case rep.Score >= 70:
		rep.Label = LabelGood
	case rep.Score >= 40:
		rep.Label = LabelFair
	}
	return rep
}

func splitRoughSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}

func alphaWordCount(s string) int {
	n := 0
	for _, w := range strings.Fields(s) {
		if isAlphabetic(strings.Trim(w, `.,;:!?"'()`)) {
			n++
		}
	}
	return n
}

func isAlphabetic(w string) bool {
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
