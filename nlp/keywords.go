package nlp

import (
	"math"
	"sort"
)

// Keyword is a scored content word.
type Keyword struct {
	Word  string
	Score float64
}

// KeywordScorer computes term salience over a text. The score combines
// relative frequency with a logarithmic length bonus, rewarding words that
// are both frequent and long enough to be topic-specific.
type KeywordScorer struct {
	stopwords Stopwords
	minLength int
}

// ScorerOption configures a KeywordScorer.
type ScorerOption func(*KeywordScorer)

// WithStopwords replaces the default stopword set.
func WithStopwords(s Stopwords) ScorerOption {
	return func(k *KeywordScorer) { k.stopwords = s }
}

// NewKeywordScorer constructs a scorer with the default English stopwords
// and a minimum token length of 3.
func NewKeywordScorer(opts ...ScorerOption) *KeywordScorer {
	k := &KeywordScorer{
		stopwords: DefaultStopwords(),
		minLength: 3,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Keywords returns the topN highest-scoring content words in descending
// score order. Score = (tf / totalTokens) * lengthBonus, where lengthBonus
// is ln(len(word)) for words longer than four characters and 1.0 otherwise.
// Ties keep first-appearance order.
func (k *KeywordScorer) Keywords(text string, topN int) []Keyword {
	tokens := Tokenize(text)
	freq := make(map[string]int)
	var order []string
	total := 0
	for _, t := range tokens {
		if len(t) < k.minLength || k.stopwords.Contains(t) {
			continue
		}
		if _, seen := freq[t]; !seen {
			order = append(order, t)
		}
		freq[t]++
		total++
	}
	if total == 0 {
		return nil
	}
	kws := make([]Keyword, 0, len(order))
	for _, w := range order {
		bonus := 1.0
		if len(w) > 4 {
			bonus = math.Log(float64(len(w)))
		}
		kws = append(kws, Keyword{
			Word:  w,
			Score: float64(freq[w]) / float64(total) * bonus,
		})
	}
	sort.SliceStable(kws, func(i, j int) bool { return kws[i].Score > kws[j].Score })
	if topN > 0 && len(kws) > topN {
		kws = kws[:topN]
	}
	return kws
}
