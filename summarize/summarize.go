// Package summarize produces extractive summaries of repaired text.
// Sentences are ranked on a similarity graph, biased by document
// position, selected in original order, and rewritten into prose.
package summarize

import (
	"math"
	"strings"
	"unicode"

	"github.com/lexkit/lexkit/nlp"
	"github.com/lexkit/lexkit/rank"
	"github.com/lexkit/lexkit/rewrite"
)

const (
	DefaultRatio        = 0.35
	DefaultMaxSentences = 8
	DefaultMinSentences = 3

	fallbackMaxChars = 300
)

// Summarizer selects and rewrites the highest-ranked sentences of a
// document. The zero value is not usable; call New.
type Summarizer struct {
	ratio     float64
	max       int
	min       int
	style     rewrite.Style
	stopwords nlp.Stopwords
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithRatio sets the fraction of sentences kept in the summary.
func WithRatio(r float64) Option {
	return func(s *Summarizer) {
		if r > 0 && r <= 1 {
			s.ratio = r
		}
	}
}

// WithMaxSentences caps the summary length.
func WithMaxSentences(n int) Option {
	return func(s *Summarizer) {
		if n > 0 {
			s.max = n
		}
	}
}

// WithMinSentences sets the floor below which the whole document is
// returned rewritten instead of summarized.
func WithMinSentences(n int) Option {
	return func(s *Summarizer) {
		if n > 0 {
			s.min = n
		}
	}
}

// WithStyle sets the rewriting style of the output prose.
func WithStyle(style rewrite.Style) Option {
	return func(s *Summarizer) { s.style = style }
}

// WithStopwords overrides the stopword set used for ranking.
func WithStopwords(sw nlp.Stopwords) Option {
	return func(s *Summarizer) { s.stopwords = sw }
}

// New returns a Summarizer with the given options applied over the
// defaults.
func New(opts ...Option) *Summarizer {
	s := &Summarizer{
		ratio:     DefaultRatio,
		max:       DefaultMaxSentences,
		min:       DefaultMinSentences,
		style:     rewrite.StyleNeutral,
		stopwords: nlp.DefaultStopwords(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize returns the summary prose for text. Documents too noisy to
// yield sentences fall back to a truncated copy of the input.
func (s *Summarizer) Summarize(text string) string {
	sentences := nlp.ExtractSentences(text)
	if len(sentences) == 0 {
		return truncate(text, fallbackMaxChars)
	}
	if len(sentences) <= s.min {
		return rewrite.Join(sentences, s.style)
	}
	picked := s.selectSentences(sentences, s.targetCount(len(sentences)))
	return rewrite.Join(picked, s.style)
}

func (s *Summarizer) targetCount(total int) int {
	n := int(math.Round(float64(total) * s.ratio))
	if n < s.min {
		n = s.min
	}
	if n > s.max {
		n = s.max
	}
	return n
}

// selectSentences ranks the sentences, applies positional bias, takes
// the top n, and restores document order.
func (s *Summarizer) selectSentences(sentences []string, n int) []string {
	scores := adjustedScores(sentences, s.stopwords)
	order := indexesByScore(scores)
	if n > len(order) {
		n = len(order)
	}
	keep := make([]bool, len(sentences))
	for _, idx := range order[:n] {
		keep[idx] = true
	}
	out := make([]string, 0, n)
	for i, sent := range sentences {
		if keep[i] {
			out = append(out, sent)
		}
	}
	return out
}

// adjustedScores biases raw graph scores toward opening and closing
// sentences, where documents tend to state and restate their point.
func adjustedScores(sentences []string, stopwords nlp.Stopwords) []float64 {
	scores := rank.ScoreSentences(sentences, stopwords)
	n := len(scores)
	lead := n / 10
	if lead < 1 {
		lead = 1
	}
	for i := range scores {
		switch {
		case i == 0:
			scores[i] *= 1.5
		case i == n-1:
			scores[i] *= 1.2
		case i < lead:
			scores[i] *= 1.1
		}
	}
	return scores
}

// indexesByScore returns sentence indexes sorted by descending score,
// earlier sentences winning ties.
func indexesByScore(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	// insertion sort keeps the tie-break stable without a comparator
	// allocation; summaries rank dozens of sentences, not thousands.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && scores[order[j]] > scores[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	return order
}

func truncate(text string, max int) string {
	text = strings.TrimSpace(text)
	if len(text) <= max {
		return text
	}
	cut := text[:max]
	if i := strings.LastIndexFunc(cut, unicode.IsSpace); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " \t\n") + "..."
}
