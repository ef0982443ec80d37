package nlp

// Stopwords is a lookup set of words excluded from content-bearing
// computations (keyword scoring, similarity vectors).
type Stopwords map[string]struct{}

// NewStopwords builds a set from the given words, lowercasing each entry.
func NewStopwords(words ...string) Stopwords {
	s := make(Stopwords, len(words))
	for _, w := range words {
		s[lower(w)] = struct{}{}
	}
	return s
}

// Contains reports whether the lowercase form of word is in the set.
func (s Stopwords) Contains(word string) bool {
	_, ok := s[lower(word)]
	return ok
}

// DefaultStopwords returns the built-in English stopword set: common function
// words plus narrative filler verbs that carry no topical signal.
func DefaultStopwords() Stopwords {
	return NewStopwords(defaultStopwordList...)
}

var defaultStopwordList = []string{
	"a", "an", "the", "is", "it", "in", "on", "at", "to", "for",
	"of", "and", "or", "but", "not", "with", "this", "that", "was",
	"are", "were", "be", "been", "being", "have", "has", "had",
	"do", "does", "did", "will", "would", "could", "should", "may",
	"might", "shall", "can", "from", "by", "as", "into", "through",
	"during", "before", "after", "above", "below", "up", "down",
	"out", "off", "over", "under", "again", "then", "once", "here",
	"there", "when", "where", "why", "how", "all", "each", "every",
	"both", "few", "more", "most", "other", "some", "such", "no",
	"only", "same", "so", "than", "too", "very", "just", "because",
	"if", "while", "about", "its", "their", "our", "your", "his", "her",
	"he", "she", "they", "we", "you", "i", "my", "me", "him", "them",
	"what", "which", "who", "whom",
	// narrative filler — frequent in stories but topically empty
	"said", "went", "took", "got", "made", "came", "told", "asked",
	"looked", "thought", "knew", "saw", "put", "get", "go",
}
