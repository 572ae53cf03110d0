package parse

import (
	"strings"
	"time"

	"github.com/Volpestyle/paystub-extractor/internal/entity"
)

// frequencyBand classifies a pay-period day span. Bands are checked in order;
// the BiWeekly and SemiMonthly bands overlap at 14-15 days and BiWeekly is
// listed first, so it takes the tie.
type frequencyBand struct {
	minDays, maxDays int
	frequency        entity.PayFrequency
}

var frequencyBands = []frequencyBand{
	{6, 8, entity.FrequencyWeekly},
	{13, 15, entity.FrequencyBiWeekly},
	{14, 17, entity.FrequencySemiMonthly},
	{27, 32, entity.FrequencyMonthly},
}

// InferFrequency prefers the structural signal (day span between period start
// and end) and falls back to explicit frequency words in the text when the
// span is missing or lands outside every band.
func InferFrequency(start, end *time.Time, text string) entity.PayFrequency {
	if start != nil && end != nil {
		days := int(end.Sub(*start).Hours() / 24)
		for _, band := range frequencyBands {
			if days >= band.minDays && days <= band.maxDays {
				return band.frequency
			}
		}
	}
	return frequencyFromWords(text)
}

// frequencyFromWords scans for explicit frequency terms in priority order.
// Plain "weekly" only counts when no bi-weekly variant is present, and
// "semi-monthly" is checked before "monthly" because it contains it.
func frequencyFromWords(text string) entity.PayFrequency {
	lower := strings.ToLower(text)
	biweekly := strings.Contains(lower, "bi-weekly") || strings.Contains(lower, "biweekly")
	switch {
	case strings.Contains(lower, "weekly") && !biweekly:
		return entity.FrequencyWeekly
	case biweekly:
		return entity.FrequencyBiWeekly
	case strings.Contains(lower, "semi-monthly") || strings.Contains(lower, "semimonthly"):
		return entity.FrequencySemiMonthly
	case strings.Contains(lower, "monthly"):
		return entity.FrequencyMonthly
	default:
		return entity.FrequencyUnknown
	}
}
