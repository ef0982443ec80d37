package ocr

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"testing"
)

type fakeEngine struct {
	texts map[string]string
	err   error
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) Recognize(ctx context.Context, in Input) (Result, error) {
	if f.err != nil {
		return Result{}, f.err
	}
	return Result{InputID: in.ID, Page: in.Page, PlainText: f.texts[in.ID]}, nil
}

func TestRecognizePagesJoinsWithMarkers(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{
		"p1": "First page text.",
		"p2": "Second page text.",
	}}
	inputs := []Input{
		NewInput("p1", nil, ImageFormatPNG, 1),
		NewInput("p2", nil, ImageFormatPNG, 2),
	}
	text, results, err := RecognizePages(context.Background(), engine, inputs)
	if err != nil {
		t.Fatalf("RecognizePages() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !strings.Contains(text, "--- Page 1 ---\nFirst page text.") {
		t.Fatalf("missing page 1 marker: %q", text)
	}
	if !strings.Contains(text, "--- Page 2 ---\nSecond page text.") {
		t.Fatalf("missing page 2 marker: %q", text)
	}
}

func TestRecognizePropagatesError(t *testing.T) {
	engine := &fakeEngine{err: errors.New("boom")}
	_, err := Recognize(context.Background(), engine, []Input{NewInput("x", nil, ImageFormatPNG, 1)})
	if err == nil {
		t.Fatal("expected error from failing engine")
	}
}

func TestRecognizeHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	engine := &fakeEngine{texts: map[string]string{}}
	_, err := Recognize(ctx, engine, []Input{NewInput("x", nil, ImageFormatPNG, 1)})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDefaultEngineIsNoop(t *testing.T) {
	res, err := DefaultEngine().Recognize(context.Background(), NewInput("id", nil, ImageFormatPNG, 3))
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if res.PlainText != "" || res.InputID != "id" || res.Page != 3 {
		t.Fatalf("unexpected noop result: %+v", res)
	}
}

func TestNewInputOptions(t *testing.T) {
	region := Region{X: 0, Y: 0, Width: 10, Height: 10}
	meta := map[string]string{"tessedit_char_whitelist": "0123456789"}
	in := NewInput("scan-1", []byte{1}, ImageFormatPNG, 4,
		WithLanguages("eng", "deu"),
		WithRegion(region),
		WithDPI(300),
		WithMetadata(meta),
		WithTesseractPSM(6),
	)
	if in.Page != 4 || in.DPI != 300 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if len(in.Languages) != 2 || in.Languages[1] != "deu" {
		t.Fatalf("unexpected languages: %v", in.Languages)
	}
	if in.Region == nil || *in.Region != region {
		t.Fatalf("unexpected region: %#v", in.Region)
	}
	if in.Metadata["tessedit_pageseg_mode"] != "6" {
		t.Fatalf("psm not set: %+v", in.Metadata)
	}
	meta["tessedit_char_whitelist"] = "abc"
	if in.Metadata["tessedit_char_whitelist"] != "0123456789" {
		t.Fatalf("metadata was not copied: %+v", in.Metadata)
	}
}

func TestWithRegionClearsEmpty(t *testing.T) {
	in := Input{Region: &Region{X: 1, Y: 1, Width: 2, Height: 2}}
	WithRegion(Region{})(&in)
	if in.Region != nil {
		t.Fatalf("expected nil region for empty input, got %#v", in.Region)
	}
}

func encodeTestImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestPrepareImagePassThrough(t *testing.T) {
	data := encodeTestImage(t, 100, 100)
	out, err := PrepareImage(data, 0)
	if err != nil {
		t.Fatalf("PrepareImage() error = %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("small image was re-encoded")
	}
}

func TestPrepareImageDownscales(t *testing.T) {
	data := encodeTestImage(t, 400, 400)
	out, err := PrepareImage(data, 10_000)
	if err != nil {
		t.Fatalf("PrepareImage() error = %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode scaled image: %v", err)
	}
	if px := img.Bounds().Dx() * img.Bounds().Dy(); px > 10_000 {
		t.Fatalf("scaled image still has %d pixels", px)
	}
}

func TestPrepareImageRejectsGarbage(t *testing.T) {
	if _, err := PrepareImage([]byte("not an image"), 0); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestRegionIsEmpty(t *testing.T) {
	cases := []struct {
		region Region
		want   bool
	}{
		{Region{Width: 10, Height: 10}, false},
		{Region{Width: 0, Height: 10}, true},
		{Region{Width: 10, Height: -1}, true},
	}
	for _, tt := range cases {
		if got := tt.region.IsEmpty(); got != tt.want {
			t.Fatalf("IsEmpty(%+v) = %v, want %v", tt.region, got, tt.want)
		}
	}
}
