package parse

import (
	"regexp"
	"strings"

	"github.com/Volpestyle/paystub-extractor/internal/entity"
)

// Deduction line matches carry a fixed, slightly lower trust than
// label-anchored money fields.
const deductionConfidence = 0.8

// reDeductionLine matches the "name: amount" shape of a deduction line item.
var reDeductionLine = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9 /()&.'\-]{0,60}?)\s*[:\-]\s*\$?\s*([\d,]+(?:\.\d{1,2})?)\s*$`)

// Keyword sets for classifying deduction names. Tax terms are checked first,
// so "State Disability Insurance" lands in tax despite the word "insurance".
var (
	taxKeywords = []string{
		"federal", "state", "local", "fica", "medicare",
		"social security", "sdi", "sui", "disability", "unemployment", "tax",
	}
	benefitKeywords = []string{
		"health", "dental", "vision", "life", "401k", "401(k)",
		"403b", "403(b)", "retirement", "pension", "insurance", "hsa", "fsa",
		"flexible spending",
	}
)

func matchesAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// extractDeductions scans line by line for deduction items. Names matching
// neither keyword set are not recorded; the "other" category exists in the
// data model but is not populated by this pass. Zero or negative amounts are
// discarded.
func extractDeductions(rec *entity.PaystubRecord, lines []string) {
	for _, line := range lines {
		m := reDeductionLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		amt, ok := ParseAmount(m[2])
		if !ok || !amt.IsPositive() {
			continue
		}
		d := entity.Deduction{
			Name:       name,
			Amount:     entity.Money{Amount: amt, Currency: DefaultCurrency},
			Confidence: deductionConfidence,
		}
		lower := strings.ToLower(name)
		switch {
		case matchesAny(lower, taxKeywords):
			d.Category = entity.DeductionTax
			rec.TaxDeductions = append(rec.TaxDeductions, d)
		case matchesAny(lower, benefitKeywords):
			d.Category = entity.DeductionBenefit
			rec.BenefitDeductions = append(rec.BenefitDeductions, d)
		}
	}
}
