package parse

import (
	"regexp"
	"strings"
	"time"

	"github.com/Volpestyle/paystub-extractor/internal/entity"
)

// dateFormats are attempted in order; the first that parses wins. Month-first
// layouts lead because that is what US payroll systems emit; day-first only
// resolves when the first position cannot be a month.
var dateFormats = []string{
	"01/02/2006",
	"01-02-2006",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2 January 2006",
	"02/01/2006",
	"02-01-2006",
}

var (
	rePayPeriod = regexp.MustCompile(`(?i)pay\s*period\s*[:\s]\s*(.+)`)
	rePayDate   = regexp.MustCompile(`(?i)(?:pay|check)\s*date\s*[:\s]\s*(.+)`)
)

// rangeSeparators split a period line into start and end. Bare "-" comes last
// so dash-formatted dates ("01-15-2026") are not torn apart when a spaced
// separator is present.
var rangeSeparators = []string{" - ", " – ", " — ", " to ", " through ", "-"}

// ParseDate tries each known format. Unparsable text yields (zero, false);
// date extraction is best-effort and never raises an error.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(strings.Trim(strings.TrimSpace(s), ".,"))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// extractDates fills the pay-period range and pay date from labeled lines.
func extractDates(rec *entity.PaystubRecord, lines []string) {
	for _, line := range lines {
		if rec.PayPeriodStart == nil && rec.PayPeriodEnd == nil {
			if m := rePayPeriod.FindStringSubmatch(line); m != nil {
				if start, end, ok := splitDateRange(m[1]); ok {
					rec.PayPeriodStart = &start
					rec.PayPeriodEnd = &end
				}
			}
		}
		if rec.PayDate == nil {
			if m := rePayDate.FindStringSubmatch(line); m != nil {
				if t, ok := ParseDate(m[1]); ok {
					rec.PayDate = &t
				}
			}
		}
	}
}

// splitDateRange cuts "start <sep> end" and parses both halves. The first
// separator producing two parseable dates wins.
func splitDateRange(s string) (time.Time, time.Time, bool) {
	for _, sep := range rangeSeparators {
		parts := strings.SplitN(s, sep, 2)
		if len(parts) != 2 {
			continue
		}
		start, okStart := ParseDate(parts[0])
		end, okEnd := ParseDate(parts[1])
		if okStart && okEnd && !end.Before(start) {
			return start, end, true
		}
	}
	return time.Time{}, time.Time{}, false
}
