package rank

import "github.com/lexkit/lexkit/nlp"

// ScoreSentences builds the similarity graph for the sentences and ranks
// them in one step with default settings.
func ScoreSentences(sentences []string, stopwords nlp.Stopwords) []float64 {
	return PageRank(SimilarityMatrix(sentences, stopwords), DefaultConfig())
}
