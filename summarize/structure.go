package summarize

import (
	"regexp"
	"strings"

	"github.com/lexkit/lexkit/nlp"
	"github.com/lexkit/lexkit/rewrite"
)

// StructuredSummary breaks a document down into the pieces downstream
// consumers need: a short prose summary, standalone key facts, a theme
// label, keywords, and a coarse sentiment reading.
type StructuredSummary struct {
	CoreSummary   string   `json:"core_summary"`
	KeyFacts      []string `json:"key_facts"`
	MainTheme     string   `json:"main_theme"`
	Keywords      []string `json:"keywords"`
	Sentiment     string   `json:"sentiment"`
	SentenceCount int      `json:"sentence_count"`
	WordCount     int      `json:"word_count"`
}

const (
	coreRatio   = 0.3
	coreMax     = 6
	maxKeyFacts = 6
	maxKeywords = 8
)

// themeSkip holds keywords too generic to serve as a document theme.
var themeSkip = map[string]struct{}{
	"text": {}, "document": {}, "page": {}, "words": {}, "content": {},
	"section": {}, "chapter": {}, "paragraph": {},
}

var capitalizedPhrase = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)+\b`)

var positiveWords = map[string]struct{}{
	"good": {}, "great": {}, "excellent": {}, "improved": {}, "success": {},
	"benefit": {}, "efficient": {}, "effective": {}, "better": {}, "best": {},
	"innovative": {},
}

var negativeWords = map[string]struct{}{
	"poor": {}, "bad": {}, "fail": {}, "error": {}, "problem": {},
	"issue": {}, "difficult": {}, "slow": {}, "expensive": {}, "risk": {},
	"challenge": {},
}

// SummarizeWithStructure produces the full structured breakdown of
// text. The core summary uses a tighter ratio than Summarize so the
// key facts can carry the detail.
func (s *Summarizer) SummarizeWithStructure(text string) StructuredSummary {
	sentences := nlp.ExtractSentences(text)
	words := nlp.Tokenize(text)

	out := StructuredSummary{
		MainTheme:     "General Document",
		Sentiment:     "Neutral",
		SentenceCount: len(sentences),
		WordCount:     len(words),
	}

	scorer := nlp.NewKeywordScorer(nlp.WithStopwords(s.stopwords))
	keywords := scorer.Keywords(text, maxKeywords)
	for _, kw := range keywords {
		out.Keywords = append(out.Keywords, kw.Word)
	}
	out.MainTheme = mainTheme(keywords, text)
	out.Sentiment = sentiment(words)

	if len(sentences) == 0 {
		out.CoreSummary = truncate(text, fallbackMaxChars)
		return out
	}

	core := New(
		WithRatio(coreRatio),
		WithMaxSentences(coreMax),
		WithMinSentences(s.min),
		WithStyle(s.style),
		WithStopwords(s.stopwords),
	)
	out.CoreSummary = core.Summarize(text)
	out.KeyFacts = keyFacts(sentences, s.stopwords)
	return out
}

// keyFacts returns the top-ranked sentences rewritten to stand alone,
// ordered by rank rather than by document position.
func keyFacts(sentences []string, stopwords nlp.Stopwords) []string {
	scores := adjustedScores(sentences, stopwords)
	order := indexesByScore(scores)
	n := maxKeyFacts
	if n > len(order) {
		n = len(order)
	}
	facts := make([]string, 0, n)
	for _, idx := range order[:n] {
		if fact := rewrite.Sentence(sentences[idx]); fact != "" {
			facts = append(facts, fact)
		}
	}
	return facts
}

// mainTheme picks the strongest non-generic keyword as the theme,
// falling back to a capitalized phrase from the text, then to a
// generic label.
func mainTheme(keywords []nlp.Keyword, text string) string {
	for _, kw := range keywords {
		if _, skip := themeSkip[kw.Word]; !skip {
			return titleCase(kw.Word)
		}
	}
	if phrase := capitalizedPhrase.FindString(text); phrase != "" {
		return phrase
	}
	return "General Document"
}

func sentiment(words []string) string {
	var pos, neg int
	for _, w := range words {
		if _, ok := positiveWords[w]; ok {
			pos++
		}
		if _, ok := negativeWords[w]; ok {
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

func titleCase(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
