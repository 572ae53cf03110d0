package parse

import "github.com/Volpestyle/paystub-extractor/internal/entity"

// Fixed proxies for signals that carry no per-field confidence of their own.
const (
	payPeriodSignal = 0.8
	providerSignal  = 0.9
)

// Score reduces whatever subset of fields was populated into one overall
// confidence: an unweighted mean over present signals. Absent signals do not
// drag the score down, and a record with nothing extracted scores exactly 0,
// never NaN.
func Score(rec *entity.PaystubRecord) float32 {
	var sum float64
	var count int

	if rec.GrossPay != nil {
		sum += float64(rec.GrossPay.Confidence)
		count++
	}
	if rec.NetPay != nil {
		sum += float64(rec.NetPay.Confidence)
		count++
	}
	if rec.PayPeriodStart != nil && rec.PayPeriodEnd != nil {
		sum += payPeriodSignal
		count++
	}
	if len(rec.TaxDeductions) > 0 {
		var taxSum float64
		for _, d := range rec.TaxDeductions {
			taxSum += float64(d.Confidence)
		}
		sum += taxSum / float64(len(rec.TaxDeductions))
		count++
	}
	if rec.Provider != "" && rec.Provider != entity.ProviderGeneric {
		sum += providerSignal
		count++
	}

	if count == 0 {
		return 0
	}
	return float32(sum / float64(count))
}
