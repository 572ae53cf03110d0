package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Volpestyle/paystub-extractor/constants"
	"github.com/Volpestyle/paystub-extractor/internal/pipeline"
)

// extract runs the pipeline over a single file and prints the record as JSON.
// No database, no cache; meant for spot checks and shell pipelines.
func main() {
	var (
		noOCR   = flag.Bool("no-ocr", false, "disable OCR fallback")
		lang    = flag.String("lang", "eng", "tesseract language")
		dpi     = flag.Int("dpi", 300, "render DPI for PDF OCR")
		timeout = flag.Duration("timeout", 2*time.Minute, "processing timeout")
		pretty  = flag.Bool("pretty", false, "indent JSON output")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: extract [flags] <file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	ext := constants.NormalizeExt(filepath.Ext(path))
	contentType, ok := constants.ExtContentTypes[ext]
	if !ok {
		fmt.Fprintf(os.Stderr, "unsupported file extension: %q\n", ext)
		os.Exit(2)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", path, err)
		os.Exit(1)
	}

	svc, err := pipeline.NewService(pipeline.Config{
		EnableOCR:         !*noOCR,
		OCRLanguage:       *lang,
		OCRDPI:            *dpi,
		ProcessingTimeout: *timeout,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pipeline init: %v\n", err)
		os.Exit(1)
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	rec, err := svc.Extract(ctx, data, contentType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "extract: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rec); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
}
