package acquire

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gen2brain/go-fitz"

	"github.com/Volpestyle/paystub-extractor/constants"
)

// pdfTextStrategy reads the native text layer of a PDF. Cheap and
// deterministic; works for digitally generated documents.
type pdfTextStrategy struct{}

func (pdfTextStrategy) Name() string { return "pdf-text" }

func (pdfTextStrategy) Extract(ctx context.Context, data []byte) (Result, Outcome, error) {
	start := time.Now()

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return Result{SourceType: constants.PDF, Method: "pdf-text"}, OutcomeFailed, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var b strings.Builder
	var warns []string
	pages := doc.NumPage()
	for n := 0; n < pages; n++ {
		select {
		case <-ctx.Done():
			return Result{SourceType: constants.PDF, Method: "pdf-text"}, OutcomeFailed, ctx.Err()
		default:
		}
		txt, err := doc.Text(n)
		if err != nil {
			warns = append(warns, fmt.Sprintf("page %d: %v", n, err))
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(txt)
	}

	res := Result{
		Text:       b.String(),
		Pages:      pages,
		SourceType: constants.PDF,
		Method:     "pdf-text",
		Duration:   time.Since(start),
		Warnings:   warns,
	}
	if len(strings.TrimSpace(res.Text)) < MinTextLength {
		return res, OutcomeInsufficient, nil
	}
	return res, OutcomeOK, nil
}
