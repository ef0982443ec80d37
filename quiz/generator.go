package quiz

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/lexkit/lexkit/nlp"
	"github.com/lexkit/lexkit/observability"
	"github.com/lexkit/lexkit/rewrite"
	"github.com/lexkit/lexkit/summarize"
	"github.com/lexkit/lexkit/textrepair"
)

const dedupePrefixLen = 60

// Generator synthesizes quiz questions from raw document text. It
// repairs the text, builds a structured summary, and runs six
// independent question generators over the result.
type Generator struct {
	rng        *rand.Rand
	repairer   *textrepair.Repairer
	summarizer *summarize.Summarizer
	stopwords  nlp.Stopwords
	logger     observability.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithSeed makes question selection and option order deterministic.
func WithSeed(seed int64) GeneratorOption {
	return func(g *Generator) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithRandom supplies the random source directly.
func WithRandom(rng *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithRepairer overrides the text repairer used before analysis.
func WithRepairer(r *textrepair.Repairer) GeneratorOption {
	return func(g *Generator) {
		if r != nil {
			g.repairer = r
		}
	}
}

// WithLogger attaches a logger; generation is silent without one.
func WithLogger(logger observability.Logger) GeneratorOption {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator returns a Generator with default components.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		rng:        rand.New(rand.NewSource(rand.Int63())),
		repairer:   textrepair.New(),
		summarizer: summarize.New(),
		stopwords:  nlp.DefaultStopwords(),
		logger:     observability.NopLogger{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// material is the shared input every sub-generator draws from.
type material struct {
	facts     []string
	sentences []string
	keywords  []string
	core      string
	theme     string
	level     Difficulty
}

// Generate produces up to n questions for text at the requested level.
// Absence of suitable material yields fewer questions, never an error.
func (g *Generator) Generate(text string, level Difficulty, n int) []Question {
	if n <= 0 {
		return nil
	}
	start := time.Now()
	repaired := g.repairer.Repair(text)
	st := g.summarizer.SummarizeWithStructure(repaired)

	sentences := nlp.ExtractSentences(repaired)
	rewritten := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if r := rewrite.Sentence(s); r != "" {
			rewritten = append(rewritten, r)
		}
	}

	m := material{
		facts:     st.KeyFacts,
		sentences: rewritten,
		keywords:  st.Keywords,
		core:      st.CoreSummary,
		theme:     st.MainTheme,
		level:     level,
	}

	var pool []Question
	for _, gen := range []func(material) []Question{
		g.comprehensionQuestions,
		g.fillBlankQuestions,
		g.trueFalseQuestions,
		g.causalQuestions,
		g.keywordQuestions,
		g.mainIdeaQuestion,
	} {
		pool = append(pool, runGenerator(gen, m)...)
	}

	pool = dedupeByPrefix(pool)
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].quality > pool[j].quality
	})
	if len(pool) > n {
		pool = pool[:n]
	}
	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	for i := range pool {
		pool[i].ID = i + 1
	}
	g.logger.Info("generated quiz",
		observability.String("level", string(level)),
		observability.Int(observability.MetricQuestionCount, len(pool)),
		observability.Int64(observability.MetricQuizTime, time.Since(start).Milliseconds()),
	)
	return pool
}

// runGenerator contains a panicking sub-generator so one bad sentence
// cannot take down the whole quiz.
func runGenerator(gen func(material) []Question, m material) (out []Question) {
	defer func() {
		if recover() != nil {
			out = nil
		}
	}()
	return gen(m)
}

func dedupeByPrefix(questions []Question) []Question {
	seen := make(map[string]struct{}, len(questions))
	out := questions[:0]
	for _, q := range questions {
		key := prefixKey(q.Question)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, q)
	}
	return out
}

func prefixKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > dedupePrefixLen {
		s = s[:dedupePrefixLen]
	}
	return s
}
