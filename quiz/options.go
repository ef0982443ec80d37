package quiz

import (
	"math/rand"
	"strings"
)

const optionCount = 4

// fillerOptions pad an MCQ that cannot find enough real distractors.
var fillerOptions = []string{
	"None of the above",
	"Cannot be determined from the text",
	"All of the above",
	"The text does not specify this",
}

// Normalize enforces the option guarantee on an externally supplied
// question: for mcq types the answer is present, options are
// de-duplicated, padded or truncated to exactly four, and shuffled.
// Non-MCQ questions pass through untouched.
func Normalize(q *Question, rng *rand.Rand) {
	if q == nil || q.Type != TypeMCQ {
		return
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	normalizeOptions(q, rng)
}

func (g *Generator) normalizeMCQ(q *Question) {
	normalizeOptions(q, g.rng)
}

func normalizeOptions(q *Question, rng *rand.Rand) {
	q.Answer = strings.TrimSpace(q.Answer)
	if q.Answer == "" {
		q.Answer = fillerOptions[0]
	}

	// answer first so dedupe and truncation can never drop it
	opts := make([]string, 0, len(q.Options)+1)
	opts = append(opts, q.Answer)
	for _, o := range q.Options {
		if o = strings.TrimSpace(o); o != "" {
			opts = append(opts, o)
		}
	}

	seen := make(map[string]struct{}, len(opts))
	deduped := opts[:0]
	for _, o := range opts {
		key := prefixKey(o)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, o)
	}
	opts = deduped

	if len(opts) > optionCount {
		opts = opts[:optionCount]
	}
	for i := 0; len(opts) < optionCount; i++ {
		filler := fillerOptions[i%len(fillerOptions)]
		if _, dup := seen[prefixKey(filler)]; dup {
			continue
		}
		seen[prefixKey(filler)] = struct{}{}
		opts = append(opts, filler)
	}

	rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	q.Options = opts
}
