package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lexkit/lexkit/observability"
	"github.com/lexkit/lexkit/ocr"
	"github.com/lexkit/lexkit/textrepair"
)

const noisyInput = `--- Page 1 ---
The carne of the storm left the village without light for days.
The keeper prornised to repair the darnaged larnp before the next night.
Neighbors carried oil and tools up the long path to help him finish.
--- Page 2 ---
By the third evening the light swept the water once more.
Ships found the channel and the harbor filled again with sails.`

func TestProcess(t *testing.T) {
	doc := New().Process(noisyInput)

	if strings.Contains(doc.Repaired, "--- Page") {
		t.Fatalf("page markers survived repair: %q", doc.Repaired)
	}
	if strings.Contains(doc.Repaired, "prornised") || strings.Contains(doc.Repaired, "larnp") {
		t.Fatalf("confusions survived repair: %q", doc.Repaired)
	}
	if len(doc.Sentences) == 0 {
		t.Fatal("no sentences extracted")
	}
	if doc.Quality.Label == textrepair.LabelNoisy {
		t.Fatalf("clean prose labeled noisy: %+v", doc.Quality)
	}
	if doc.Summary.CoreSummary == "" {
		t.Fatal("no summary produced")
	}
	if doc.Raw != noisyInput {
		t.Fatal("raw text not preserved")
	}
}

func TestProcessEmptyInput(t *testing.T) {
	doc := New().Process("")
	if len(doc.Sentences) != 0 {
		t.Fatalf("sentences from empty input: %v", doc.Sentences)
	}
	if doc.Quality.Label != textrepair.LabelNoisy {
		t.Fatalf("empty input label = %q", doc.Quality.Label)
	}
}

type stubEngine struct {
	pages map[string]string
	err   error
}

func (s *stubEngine) Name() string { return "stub" }

func (s *stubEngine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	if s.err != nil {
		return ocr.Result{}, s.err
	}
	return ocr.Result{InputID: in.ID, Page: in.Page, PlainText: s.pages[in.ID], MeanConfidence: 0.9}, nil
}

func TestFromImages(t *testing.T) {
	engine := &stubEngine{pages: map[string]string{
		"p1": "The harvest filled the barn before the first frost arrived.",
		"p2": "Everyone in the village shared the work and the reward.",
	}}
	inputs := []ocr.Input{
		ocr.NewInput("p1", nil, ocr.ImageFormatPNG, 1),
		ocr.NewInput("p2", nil, ocr.ImageFormatPNG, 2),
	}
	doc, err := New().FromImages(context.Background(), engine, inputs)
	if err != nil {
		t.Fatalf("FromImages() error = %v", err)
	}
	if !strings.Contains(doc.Repaired, "harvest filled the barn") {
		t.Fatalf("page text missing: %q", doc.Repaired)
	}
	if strings.Contains(doc.Repaired, "--- Page") {
		t.Fatalf("page markers survived: %q", doc.Repaired)
	}
}

func TestFromImagesPropagatesError(t *testing.T) {
	engine := &stubEngine{err: errors.New("scanner offline")}
	_, err := New().FromImages(context.Background(), engine, []ocr.Input{
		ocr.NewInput("p1", nil, ocr.ImageFormatPNG, 1),
	})
	if err == nil {
		t.Fatal("expected error from failing engine")
	}
}

func TestProcessEmitsStageMetrics(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := New(WithLogger(observability.NewZapLogger(zap.New(core))))

	p.Process(noisyInput)

	entries := logs.FilterMessage("processed document").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 processing log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	for _, key := range []string{
		observability.MetricRepairTime,
		observability.MetricSummarizeTime,
		observability.MetricSentenceCount,
		observability.MetricQualityScore,
	} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("metric %q missing from log fields: %v", key, fields)
		}
	}
}
