// Package rank scores sentence importance with a similarity graph: sentences
// are nodes, cosine similarity of their term-frequency vectors is the edge
// weight, and a PageRank power iteration finds the most central nodes. A
// sentence sharing vocabulary with many other important sentences is itself
// important; this avoids the over-weighting of verbose repeated phrasing
// that naive frequency counting produces.
package rank

import (
	"math"

	"github.com/lexkit/lexkit/nlp"
)

// SimilarityMatrix builds the N×N cosine-similarity matrix over
// term-frequency vectors restricted to non-stopword vocabulary. The
// diagonal is zero (no self-similarity edge) and the matrix is symmetric.
// Rows for sentences with empty vectors are all zero.
func SimilarityMatrix(sentences []string, stopwords nlp.Stopwords) [][]float64 {
	n := len(sentences)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}
	if n == 0 {
		return matrix
	}

	vectors := make([]map[string]float64, n)
	norms := make([]float64, n)
	for i, s := range sentences {
		vec := make(map[string]float64)
		for _, tok := range nlp.Tokenize(s) {
			if stopwords.Contains(tok) {
				continue
			}
			vec[tok]++
		}
		vectors[i] = vec
		norms[i] = vectorNorm(vec)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim := cosine(vectors[i], vectors[j], norms[i], norms[j])
			matrix[i][j] = sim
			matrix[j][i] = sim
		}
	}
	return matrix
}

func vectorNorm(vec map[string]float64) float64 {
	sum := 0.0
	for _, v := range vec {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// cosine returns the normalized dot product, or 0 when either vector is
// empty.
func cosine(a, b map[string]float64, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	// iterate the smaller vector
	if len(b) < len(a) {
		a, b = b, a
	}
	dot := 0.0
	for k, av := range a {
		if bv, ok := b[k]; ok {
			dot += av * bv
		}
	}
	return dot / (normA * normB)
}
