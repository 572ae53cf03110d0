package acquire

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Volpestyle/paystub-extractor/constants"
	"github.com/Volpestyle/paystub-extractor/internal/common"
)

// Config tunes the acquisition strategies.
type Config struct {
	DPI      int // rasterization DPI for scanned PDFs, default 300
	MaxPages int // 0 = no limit
}

// Acquirer turns raw file bytes into normalized plain text. It holds an
// ordered strategy list per format; a nil engine means OCR is not configured.
type Acquirer struct {
	pdf    []Strategy
	image  []Strategy
	logger *slog.Logger
}

func NewAcquirer(cfg Config, engine Engine, logger *slog.Logger) *Acquirer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	a := &Acquirer{
		pdf:    []Strategy{pdfTextStrategy{}},
		logger: logger,
	}
	if engine != nil {
		a.pdf = append(a.pdf, pdfOCRStrategy{engine: engine, dpi: cfg.DPI, maxPages: cfg.MaxPages})
		a.image = append(a.image, imageOCRStrategy{engine: engine})
	}
	return a
}

// OCRConfigured reports whether an optical-recognition strategy is wired in.
func (a *Acquirer) OCRConfigured() bool {
	return len(a.image) > 0
}

// Acquire produces plain text from file bytes, routed by the declared content
// type. The declaration is trusted; sniffing mismatched uploads is the
// caller's problem.
func (a *Acquirer) Acquire(ctx context.Context, data []byte, contentType string) (Result, error) {
	switch constants.MapContentTypeToFormat(contentType) {
	case constants.PDF:
		return a.run(ctx, a.pdf, data)
	case constants.IMAGE:
		if len(a.image) == 0 {
			return Result{}, fmt.Errorf("image %q: %w", contentType, common.ErrOCRUnavailable)
		}
		return a.run(ctx, a.image, data)
	default:
		return Result{}, fmt.Errorf("content type %q: %w", contentType, common.ErrUnsupportedContentType)
	}
}

// run tries each strategy in order. An OK outcome wins immediately. An
// insufficient outcome is remembered: a partial result beats no result if
// every later strategy fails.
func (a *Acquirer) run(ctx context.Context, strategies []Strategy, data []byte) (Result, error) {
	var partial *Result
	for _, s := range strategies {
		res, outcome, err := s.Extract(ctx, data)
		switch outcome {
		case OutcomeOK:
			a.logger.Debug("acquire.ok", "method", s.Name(), "pages", res.Pages, "chars", len(res.Text))
			res.Text = Normalize(res.Text)
			return res, nil
		case OutcomeInsufficient:
			a.logger.Debug("acquire.insufficient", "method", s.Name(), "chars", len(res.Text))
			if partial == nil && strings.TrimSpace(res.Text) != "" {
				r := res
				partial = &r
			}
		case OutcomeFailed:
			if ctx.Err() != nil {
				return Result{}, ctx.Err()
			}
			a.logger.Warn("acquire.failed", "method", s.Name(), "error", err)
		}
	}
	if partial != nil {
		partial.Text = Normalize(partial.Text)
		return *partial, nil
	}
	return Result{}, common.ErrUnreadableDocument
}
