package acquire

import (
	"context"
	"time"
)

// MinTextLength is the smallest trimmed text-layer size we accept from native
// PDF extraction. Anything shorter is assumed to be a scanned image wrapped in
// a PDF and is handed to the OCR fallback.
const MinTextLength = 100

// Outcome is the tri-state result of one acquisition strategy.
type Outcome int

const (
	// OutcomeOK means the strategy produced usable text.
	OutcomeOK Outcome = iota
	// OutcomeInsufficient means the strategy ran but produced too little text
	// to trust on its own. Its partial text may still be returned if every
	// later strategy fails.
	OutcomeInsufficient
	// OutcomeFailed means the strategy could not run at all.
	OutcomeFailed
)

// Result is the summary of a text acquisition.
type Result struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.IMAGE
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Duration   time.Duration
	Warnings   []string
}

// Strategy is one way of turning file bytes into text. Strategies are tried
// in order; adding another OCR provider is a matter of appending to the list.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, data []byte) (Result, Outcome, error)
}

// Engine turns a PNG-encoded image into text. It exists so tests can stub
// optical recognition without a tesseract install.
type Engine interface {
	Recognize(ctx context.Context, png []byte) (string, error)
}
