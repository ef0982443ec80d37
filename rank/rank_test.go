package rank

import (
	"math"
	"testing"

	"github.com/lexkit/lexkit/nlp"
)

var rankSentences = []string{
	"The observatory tracked the comet across the northern sky for three weeks.",
	"Astronomers at the observatory measured the comet tail every clear night.",
	"The comet brightened steadily as it approached the inner solar system.",
	"Town officials debated the budget for road repairs all through the winter.",
	"The new telescope at the observatory resolved details nobody had seen before.",
}

func TestSimilarityMatrixSymmetry(t *testing.T) {
	m := SimilarityMatrix(rankSentences, nlp.DefaultStopwords())
	n := len(m)
	if n != len(rankSentences) {
		t.Fatalf("matrix size = %d, want %d", n, len(rankSentences))
	}
	for i := 0; i < n; i++ {
		if m[i][i] != 0 {
			t.Fatalf("diagonal [%d][%d] = %v, want 0", i, i, m[i][i])
		}
		for j := 0; j < n; j++ {
			if math.Abs(m[i][j]-m[j][i]) > 1e-12 {
				t.Fatalf("matrix not symmetric at (%d,%d): %v vs %v", i, j, m[i][j], m[j][i])
			}
			if m[i][j] < 0 || m[i][j] > 1 {
				t.Fatalf("similarity out of range at (%d,%d): %v", i, j, m[i][j])
			}
		}
	}
}

func TestSimilarityReflectsSharedVocabulary(t *testing.T) {
	m := SimilarityMatrix(rankSentences, nlp.DefaultStopwords())
	// sentences 0 and 1 share observatory/comet; sentence 3 is off-topic
	if m[0][1] <= m[0][3] {
		t.Fatalf("on-topic pair (%v) not more similar than off-topic pair (%v)", m[0][1], m[0][3])
	}
}

func TestPageRankSumsToOne(t *testing.T) {
	scores := ScoreSentences(rankSentences, nlp.DefaultStopwords())
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	if math.Abs(sum-1) > 1e-3 {
		t.Fatalf("rank scores sum = %v, want ~1", sum)
	}
}

func TestPageRankEdgeCases(t *testing.T) {
	if got := PageRank(nil, DefaultConfig()); got != nil {
		t.Fatalf("PageRank(nil) = %v, want nil", got)
	}
	single := SimilarityMatrix([]string{"One lonely sentence stands here."}, nlp.DefaultStopwords())
	if got := PageRank(single, DefaultConfig()); len(got) != 1 || got[0] != 1 {
		t.Fatalf("PageRank(single) = %v, want [1]", got)
	}
}

func TestPageRankUniformOnIdenticalSentences(t *testing.T) {
	same := []string{
		"The harvest festival filled the square with music.",
		"The harvest festival filled the square with music.",
		"The harvest festival filled the square with music.",
	}
	scores := ScoreSentences(same, nlp.DefaultStopwords())
	for i := 1; i < len(scores); i++ {
		if math.Abs(scores[i]-scores[0]) > 1e-6 {
			t.Fatalf("identical sentences did not converge to uniform scores: %v", scores)
		}
	}
}

func TestPageRankStableUnderSmallVariation(t *testing.T) {
	base := []string{
		"The lighthouse keeper repaired the rotating lamp before the storm arrived.",
		"The lighthouse keeper repaired the rotating lamp before the gale arrived.",
		"Fishing boats stayed in the harbor waiting for calmer weather.",
		"Villagers stocked firewood and candles against the long night.",
	}
	scores := ScoreSentences(base, nlp.DefaultStopwords())
	// near-duplicates should land close together, not wildly apart
	if diff := math.Abs(scores[0] - scores[1]); diff > 0.05 {
		t.Fatalf("near-duplicate sentences diverged too far: %v (scores %v)", diff, scores)
	}
}

func TestPageRankIsolatedSentenceBaseline(t *testing.T) {
	sentences := []string{
		"The committee approved the annual report without amendments.",
		"The committee approved the annual budget without amendments.",
		"Zebras gallop wildly over moonlit equatorial dunes tonight.",
	}
	scores := ScoreSentences(sentences, nlp.DefaultStopwords())
	if scores[2] <= 0 {
		t.Fatalf("isolated sentence received no baseline score: %v", scores)
	}
}
