package rank

import "math"

// Defaults for the power iteration.
const (
	DefaultDamping    = 0.85
	DefaultIterations = 50
	DefaultTolerance  = 1e-5
)

// Config tunes the PageRank power iteration.
type Config struct {
	Damping    float64
	Iterations int
	Tolerance  float64
}

// DefaultConfig returns the standard damping/iteration/tolerance settings.
func DefaultConfig() Config {
	return Config{
		Damping:    DefaultDamping,
		Iterations: DefaultIterations,
		Tolerance:  DefaultTolerance,
	}
}

// PageRank runs power iteration over the weighted graph described by the
// similarity matrix and returns one score per node. Scores sum to ~1 and
// are only meaningful relative to each other within one document.
//
// Rows summing to zero (isolated sentences) are treated as uniform links to
// every node so isolated sentences still receive a baseline score.
func PageRank(matrix [][]float64, cfg Config) []float64 {
	n := len(matrix)
	switch n {
	case 0:
		return nil
	case 1:
		return []float64{1}
	}

	// row-normalize into column-major transition weights
	transition := make([][]float64, n)
	for j, row := range matrix {
		sum := 0.0
		for _, w := range row {
			sum += w
		}
		norm := make([]float64, n)
		if sum == 0 {
			for i := range norm {
				norm[i] = 1 / float64(n)
			}
		} else {
			for i, w := range row {
				norm[i] = w / sum
			}
		}
		transition[j] = norm
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1 / float64(n)
	}
	next := make([]float64, n)
	base := (1 - cfg.Damping) / float64(n)

	for iter := 0; iter < cfg.Iterations; iter++ {
		for i := 0; i < n; i++ {
			incoming := 0.0
			for j := 0; j < n; j++ {
				incoming += transition[j][i] * scores[j]
			}
			next[i] = base + cfg.Damping*incoming
		}
		delta := 0.0
		for i := 0; i < n; i++ {
			delta += math.Abs(next[i] - scores[i])
		}
		scores, next = next, scores
		if delta < cfg.Tolerance {
			break
		}
	}
	return scores
}

