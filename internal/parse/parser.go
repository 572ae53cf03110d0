// Package parse turns normalized paystub text into a structured record.
// Each extraction pass is an independent heuristic: a miss on one pass never
// blocks another, and misses leave fields unset instead of erroring.
package parse

import (
	"log/slog"
	"strings"

	"github.com/Volpestyle/paystub-extractor/internal/entity"
)

type Parser struct {
	logger *slog.Logger
}

func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Parse runs every pattern pass over the same text and aggregates the
// per-field confidences into the record's overall score.
func (p *Parser) Parse(text string) *entity.PaystubRecord {
	lines := strings.Split(text, "\n")

	rec := &entity.PaystubRecord{
		RawText:  text,
		Provider: DetectProvider(text),
	}
	extractMoneyFields(rec, lines)
	extractDates(rec, lines)
	extractDeductions(rec, lines)
	extractEntities(rec, lines)
	rec.PayFrequency = InferFrequency(rec.PayPeriodStart, rec.PayPeriodEnd, text)
	rec.OverallConfidence = Score(rec)

	p.logger.Debug("parse.done",
		"provider", rec.Provider,
		"frequency", rec.PayFrequency,
		"tax_deductions", len(rec.TaxDeductions),
		"benefit_deductions", len(rec.BenefitDeductions),
		"confidence", rec.OverallConfidence,
	)
	return rec
}
