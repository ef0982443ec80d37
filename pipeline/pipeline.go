// Package pipeline composes the repair, analysis, and summarization
// stages into one document flow. Every Process call builds on fresh
// component state, so pipelines are safe to share across goroutines as
// long as each document is processed by a single call.
package pipeline

import (
	"context"
	"time"

	"github.com/lexkit/lexkit/nlp"
	"github.com/lexkit/lexkit/observability"
	"github.com/lexkit/lexkit/ocr"
	"github.com/lexkit/lexkit/summarize"
	"github.com/lexkit/lexkit/textrepair"
)

// Document is the fully processed view of one input text.
type Document struct {
	Raw       string                      `json:"-"`
	Repaired  string                      `json:"repaired"`
	Quality   textrepair.QualityReport    `json:"quality"`
	Sentences []string                    `json:"sentences"`
	Summary   summarize.StructuredSummary `json:"summary"`
}

// Pipeline runs raw OCR text through repair, quality scoring, sentence
// extraction, and structured summarization.
type Pipeline struct {
	repairConfig textrepair.Config
	summaryOpts  []summarize.Option
	logger       observability.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger attaches a logger; processing is silent without one.
func WithLogger(logger observability.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithRepairConfig overrides the text repair rule tables.
func WithRepairConfig(cfg textrepair.Config) Option {
	return func(p *Pipeline) { p.repairConfig = cfg }
}

// WithSummaryOptions forwards options to the summarizer.
func WithSummaryOptions(opts ...summarize.Option) Option {
	return func(p *Pipeline) { p.summaryOpts = opts }
}

// New returns a Pipeline with defaults applied.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		repairConfig: textrepair.DefaultConfig(),
		logger:       observability.NopLogger{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process repairs and analyzes one document's raw text. Components are
// instantiated per call; no state crosses documents.
func (p *Pipeline) Process(raw string) Document {
	start := time.Now()
	repairer := textrepair.New(textrepair.WithConfig(p.repairConfig))
	summarizer := summarize.New(p.summaryOpts...)

	repaired := repairer.Repair(raw)
	quality := repairer.QualityScore(repaired)
	sentences := nlp.ExtractSentences(repaired)
	repairDone := time.Now()
	summary := summarizer.SummarizeWithStructure(repaired)

	p.logger.Info("processed document",
		observability.Int("raw_bytes", len(raw)),
		observability.Int(observability.MetricSentenceCount, len(sentences)),
		observability.Int(observability.MetricQualityScore, quality.Score),
		observability.String("quality_label", string(quality.Label)),
		observability.Int64(observability.MetricRepairTime, repairDone.Sub(start).Milliseconds()),
		observability.Int64(observability.MetricSummarizeTime, time.Since(repairDone).Milliseconds()),
	)

	return Document{
		Raw:       raw,
		Repaired:  repaired,
		Quality:   quality,
		Sentences: sentences,
		Summary:   summary,
	}
}

// FromImages recognizes page images with the engine and processes the
// joined text as one document.
func (p *Pipeline) FromImages(ctx context.Context, engine ocr.Engine, inputs []ocr.Input) (Document, error) {
	start := time.Now()
	text, results, err := ocr.RecognizePages(ctx, engine, inputs)
	if err != nil {
		p.logger.Error("ocr failed", observability.Error("error", err))
		return Document{}, err
	}
	var conf float64
	for _, res := range results {
		conf += res.MeanConfidence
	}
	if len(results) > 0 {
		conf /= float64(len(results))
	}
	p.logger.Info("recognized pages",
		observability.Int("pages", len(results)),
		observability.Float64(observability.MetricOCRConfidence, conf),
		observability.Int64(observability.MetricRecognizeTime, time.Since(start).Milliseconds()),
	)
	return p.Process(text), nil
}
