package ocr

import (
	"context"
	"fmt"
	"strings"
)

var defaultEngine Engine = &noopEngine{}

// DefaultEngine returns the library's default OCR engine. Unless a
// provider package replaces it, this is a noop engine that returns
// empty text, keeping the core importable without native dependencies.
func DefaultEngine() Engine {
	return defaultEngine
}

// SetDefaultEngine sets the library's default OCR engine. Provider
// packages call this from their init.
func SetDefaultEngine(engine Engine) {
	defaultEngine = engine
}

// Recognize runs the inputs through the engine. If the engine supports
// batch operation it is used; otherwise calls execute sequentially.
func Recognize(ctx context.Context, engine Engine, inputs []Input) ([]Result, error) {
	if b, ok := engine.(BatchEngine); ok {
		return b.RecognizeBatch(ctx, inputs)
	}
	results := make([]Result, 0, len(inputs))
	for _, in := range inputs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		res, err := engine.Recognize(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("recognize %s: %w", in.ID, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// RecognizePages recognizes a multi-page document and joins the page
// texts with page markers. The markers match the banner format the
// text repairer strips, so repaired output reads as one document.
func RecognizePages(ctx context.Context, engine Engine, inputs []Input) (string, []Result, error) {
	results, err := Recognize(ctx, engine, inputs)
	if err != nil {
		return "", nil, err
	}
	var b strings.Builder
	for i, res := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		page := res.Page
		if page == 0 {
			page = i + 1
		}
		fmt.Fprintf(&b, "--- Page %d ---\n", page)
		b.WriteString(res.PlainText)
		b.WriteString("\n")
	}
	return b.String(), results, nil
}

type noopEngine struct{}

func (n noopEngine) Name() string {
	return "noop"
}

func (n noopEngine) Recognize(ctx context.Context, input Input) (Result, error) {
	return Result{InputID: input.ID, Page: input.Page}, nil
}
