package transform

import (
	"math"
	"sort"
	"strings"

	"github.com/lexkit/lexkit/nlp"
)

// Classification labels a document with a type, tags, sentiment, and a
// language guess. Everything is rule-based keyword matching; there is
// no model behind it.
type Classification struct {
	DocumentType string         `json:"document_type"`
	Confidence   float64        `json:"type_confidence"`
	Scores       map[string]int `json:"all_scores"`
	Tags         []string       `json:"semantic_tags"`
	Sentiment    string         `json:"sentiment"`
	Language     string         `json:"language"`
}

var categorySignals = map[string][]string{
	"Academic/Research": {"abstract", "methodology", "conclusion", "references",
		"hypothesis", "experiment", "analysis", "results", "study"},
	"Legal/Contract": {"hereby", "pursuant", "jurisdiction", "liability",
		"indemnify", "clause", "agreement", "party", "terms"},
	"Medical/Health": {"patient", "diagnosis", "treatment", "clinical",
		"medication", "symptoms", "disease", "healthcare"},
	"Financial": {"revenue", "profit", "loss", "balance", "quarter",
		"fiscal", "investment", "assets", "liabilities"},
	"Technical/Engineering": {"algorithm", "system", "architecture",
		"implementation", "module", "api", "database"},
	"News/Article": {"according", "reported", "announced", "said", "told",
		"sources", "officials", "government"},
	"Educational": {"learn", "students", "course", "chapter", "lesson",
		"exercise", "curriculum", "teacher"},
}

var languageMarkers = map[string][]string{
	"English": {"the", "is", "are", "and", "for", "this"},
	"French":  {"le", "la", "les", "est", "pour", "que"},
	"Spanish": {"el", "la", "los", "es", "para", "que"},
	"German":  {"der", "die", "das", "ist", "und", "für"},
}

var positiveSignals = []string{"good", "great", "excellent", "improved", "success",
	"benefit", "efficient", "effective", "better", "best", "innovative"}

var negativeSignals = []string{"poor", "bad", "fail", "error", "problem", "issue",
	"difficult", "slow", "expensive", "risk", "challenge"}

// Classify assigns a document type by keyword-signal count, tags it
// with its top keywords, and guesses sentiment and language.
func Classify(text string) Classification {
	lower := strings.ToLower(text)

	scores := make(map[string]int, len(categorySignals))
	for category, signals := range categorySignals {
		n := 0
		for _, s := range signals {
			if strings.Contains(lower, s) {
				n++
			}
		}
		scores[category] = n
	}

	best := bestCategory(scores)
	confidence := float64(scores[best]) / float64(len(categorySignals[best])) * 100
	confidence = math.Round(math.Min(confidence, 100)*10) / 10

	var tags []string
	for _, kw := range nlp.NewKeywordScorer().Keywords(text, 10) {
		tags = append(tags, kw.Word)
	}

	return Classification{
		DocumentType: best,
		Confidence:   confidence,
		Scores:       scores,
		Tags:         tags,
		Sentiment:    textSentiment(lower),
		Language:     DetectLanguage(text),
	}
}

// bestCategory breaks score ties alphabetically so the result is
// deterministic.
func bestCategory(scores map[string]int) string {
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)
	best := names[0]
	for _, name := range names[1:] {
		if scores[name] > scores[best] {
			best = name
		}
	}
	return best
}

func textSentiment(lower string) string {
	pos, neg := 0, 0
	for _, w := range positiveSignals {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range negativeSignals {
		if strings.Contains(lower, w) {
			neg++
		}
	}
	switch {
	case pos > neg:
		return "Positive"
	case neg > pos:
		return "Negative"
	default:
		return "Neutral"
	}
}

// DetectLanguage guesses the text language by function-word overlap.
// English wins ties, which suits the OCR material this runs on.
func DetectLanguage(text string) string {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		words[strings.Trim(w, ".,;:!?\"'()")] = struct{}{}
	}

	langs := make([]string, 0, len(languageMarkers))
	for lang := range languageMarkers {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	// English comes first in the sorted order, so it wins exact ties
	best, bestScore := "English", -1
	for _, lang := range langs {
		n := 0
		for _, marker := range languageMarkers[lang] {
			if _, ok := words[marker]; ok {
				n++
			}
		}
		if n > bestScore {
			best, bestScore = lang, n
		}
	}
	return best
}
