package acquire

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strings"
	"time"

	"github.com/gen2brain/go-fitz"

	"github.com/Volpestyle/paystub-extractor/constants"
)

// pdfOCRStrategy rasterizes each PDF page and runs optical recognition over
// the renders. This is the expensive path; it only runs when the text layer
// came up short.
type pdfOCRStrategy struct {
	engine   Engine
	dpi      int
	maxPages int
}

func (pdfOCRStrategy) Name() string { return "pdf-ocr" }

func (s pdfOCRStrategy) Extract(ctx context.Context, data []byte) (Result, Outcome, error) {
	start := time.Now()

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return Result{SourceType: constants.PDF, Method: "pdf-ocr"}, OutcomeFailed, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	pages := doc.NumPage()
	if s.maxPages > 0 && pages > s.maxPages {
		pages = s.maxPages
	}

	var b strings.Builder
	var warns []string
	for n := 0; n < pages; n++ {
		select {
		case <-ctx.Done():
			return Result{SourceType: constants.PDF, Method: "pdf-ocr"}, OutcomeFailed, ctx.Err()
		default:
		}
		img, err := doc.ImageDPI(n, float64(s.dpi))
		if err != nil {
			warns = append(warns, fmt.Sprintf("render page %d: %v", n, err))
			continue
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			warns = append(warns, fmt.Sprintf("encode page %d: %v", n, err))
			continue
		}
		txt, err := s.engine.Recognize(ctx, buf.Bytes())
		if err != nil {
			warns = append(warns, fmt.Sprintf("ocr page %d: %v", n, err))
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n")
		}
		b.WriteString(txt)
	}

	res := Result{
		Text:       b.String(),
		Pages:      pages,
		SourceType: constants.PDF,
		Method:     "pdf-ocr",
		Duration:   time.Since(start),
		Warnings:   warns,
	}
	if strings.TrimSpace(res.Text) == "" {
		return res, OutcomeFailed, fmt.Errorf("ocr produced no text")
	}
	return res, OutcomeOK, nil
}
