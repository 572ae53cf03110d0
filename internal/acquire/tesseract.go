package acquire

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine is the gosseract-backed OCR engine. A fresh client per call
// keeps the engine safe for concurrent extractions.
type TesseractEngine struct {
	language string
}

// NewTesseractEngine verifies the tesseract install up front, so a pipeline
// constructed with OCR enabled but no working backend fails at construction
// rather than on first use.
func NewTesseractEngine(language string) (*TesseractEngine, error) {
	if language == "" {
		language = "eng"
	}
	langs, err := gosseract.GetAvailableLanguages()
	if err != nil {
		return nil, fmt.Errorf("tesseract unavailable: %w", err)
	}
	found := false
	for _, l := range langs {
		if l == language {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("tesseract language %q not installed (have %v)", language, langs)
	}
	return &TesseractEngine{language: language}, nil
}

// Recognize runs OCR over a PNG-encoded image. Tesseract itself cannot be
// interrupted mid-page, so cancellation is honored between the deadline check
// here and the per-page checks in the strategies.
func (e *TesseractEngine) Recognize(ctx context.Context, png []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	start := time.Now()

	c := gosseract.NewClient()
	defer c.Close()

	if err := c.SetLanguage(e.language); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	if err := c.SetImageFromBytes(png); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := c.Text()
	if err != nil {
		slog.Error("tesseract failed", "duration_ms", time.Since(start).Milliseconds(), "error", err)
		return "", fmt.Errorf("recognize: %w", err)
	}
	slog.Debug("tesseract ok",
		"duration_ms", time.Since(start).Milliseconds(),
		"image_bytes", len(png),
		"text_bytes", len(text),
	)
	// guard against a deadline that expired mid-recognition
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return text, nil
}
