package parse

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Volpestyle/paystub-extractor/internal/entity"
)

// Label-anchored matches are treated as high-trust.
const moneyFieldConfidence = 0.9

// DefaultCurrency is assumed when the amount carries no currency marker
// beyond a dollar sign.
const DefaultCurrency = "USD"

var (
	// amount: optional currency symbol, thousands separators, optional cents
	amountPat = `\$?\s*([\d,]+(?:\.\d{1,2})?)`

	reGrossPay = regexp.MustCompile(`(?i)\bgross\s*(?:pay|earnings|wages|income)?\b\s*[:\-]?\s*` + amountPat)
	reNetPay   = regexp.MustCompile(`(?i)\bnet\s*(?:pay|income|check|amount)?\b\s*[:\-]?\s*` + amountPat)
)

var reAmountJunk = regexp.MustCompile(`[$,\s]`)

// ParseAmount strips thousands separators and currency symbols, then converts
// to an exact decimal. Returns false when the text is not a clean number.
func ParseAmount(s string) (decimal.Decimal, bool) {
	cleaned := reAmountJunk.ReplaceAllString(s, "")
	if cleaned == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// extractMoneyFields populates gross, net and their YTD counterparts from
// label-anchored line matches. A line mentioning YTD feeds the year-to-date
// fields instead of the current-period ones.
func extractMoneyFields(rec *entity.PaystubRecord, lines []string) {
	for _, line := range lines {
		lower := strings.ToLower(line)
		ytd := strings.Contains(lower, "ytd") ||
			strings.Contains(lower, "year-to-date") ||
			strings.Contains(lower, "year to date")

		if m := reGrossPay.FindStringSubmatch(line); m != nil {
			if amt, ok := ParseAmount(m[1]); ok {
				money := entity.Money{Amount: amt, Currency: DefaultCurrency}
				switch {
				case ytd && rec.YTDGrossPay == nil:
					rec.YTDGrossPay = &money
				case !ytd && rec.GrossPay == nil:
					rec.GrossPay = &entity.Field[entity.Money]{
						Value:      money,
						Confidence: moneyFieldConfidence,
						Source:     entity.SourcePattern,
					}
				}
			}
		}
		if m := reNetPay.FindStringSubmatch(line); m != nil {
			if amt, ok := ParseAmount(m[1]); ok {
				money := entity.Money{Amount: amt, Currency: DefaultCurrency}
				switch {
				case ytd && rec.YTDNetPay == nil:
					rec.YTDNetPay = &money
				case !ytd && rec.NetPay == nil:
					rec.NetPay = &entity.Field[entity.Money]{
						Value:      money,
						Confidence: moneyFieldConfidence,
						Source:     entity.SourcePattern,
					}
				}
			}
		}
	}
}
