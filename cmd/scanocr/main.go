package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/lexkit/lexkit/ocr"
	"github.com/lexkit/lexkit/ocr/tesseract"
	"github.com/lexkit/lexkit/pipeline"
)

// scanocr recognizes one or more page images with Tesseract and runs
// the joined text through the document pipeline. It is a separate
// binary from textscan because the tesseract adapter needs cgo.

type options struct {
	imagePaths []string
	languages  string
	dpi        int
	psm        int
	maxPixels  int
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "scanocr: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "scanocr: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: go run ./cmd/scanocr [flags] <image> [image ...]\n")
		flag.PrintDefaults()
	}
	languages := flag.String("lang", "eng", "Comma-separated language hints for Tesseract")
	dpi := flag.Int("dpi", 300, "Effective DPI of the input images")
	psm := flag.Int("psm", 0, "Tesseract page segmentation mode (0 = engine default)")
	maxPixels := flag.Int("max-pixels", 0, "Downscale images above this pixel count (0 = default budget)")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return options{}, fmt.Errorf("missing image path")
	}
	opts.imagePaths = flag.Args()
	opts.languages = *languages
	opts.dpi = *dpi
	opts.psm = *psm
	opts.maxPixels = *maxPixels
	return opts, nil
}

func run(opts options) error {
	langs := strings.Split(opts.languages, ",")

	inputs := make([]ocr.Input, 0, len(opts.imagePaths))
	for i, path := range opts.imagePaths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		prepared, err := ocr.PrepareImage(data, opts.maxPixels)
		if err != nil {
			return fmt.Errorf("prepare %s: %w", path, err)
		}
		inOpts := []ocr.InputOption{
			ocr.WithLanguages(langs...),
			ocr.WithDPI(opts.dpi),
		}
		if opts.psm > 0 {
			inOpts = append(inOpts, ocr.WithTesseractPSM(opts.psm))
		}
		id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		inputs = append(inputs, ocr.NewInput(id, prepared, formatFor(path), i+1, inOpts...))
	}

	engine := tesseract.NewTesseractEngine()
	doc, err := pipeline.New().FromImages(context.Background(), engine, inputs)
	if err != nil {
		return fmt.Errorf("recognize: %w", err)
	}

	data, err := sonic.ConfigDefault.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	fmt.Printf("%s\n", data)
	return nil
}

func formatFor(path string) ocr.ImageFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return ocr.ImageFormatJPEG
	case ".tif", ".tiff":
		return ocr.ImageFormatTIFF
	default:
		return ocr.ImageFormatPNG
	}
}
