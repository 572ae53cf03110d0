package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Volpestyle/paystub-extractor/internal/entity"
)

func day(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return &d
}

func TestInferFrequencyFromSpan(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		want       entity.PayFrequency
	}{
		{"seven days is weekly", "2026-01-01", "2026-01-08", entity.FrequencyWeekly},
		{"fourteen days is bi-weekly", "2026-01-01", "2026-01-15", entity.FrequencyBiWeekly},
		{"fifteen days stays bi-weekly on the overlap", "2026-01-01", "2026-01-16", entity.FrequencyBiWeekly},
		{"sixteen days is semi-monthly", "2026-01-01", "2026-01-17", entity.FrequencySemiMonthly},
		{"thirty days is monthly", "2026-01-01", "2026-01-31", entity.FrequencyMonthly},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := InferFrequency(day(t, tc.start), day(t, tc.end), "")
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInferFrequencyFallsBackToWords(t *testing.T) {
	// no dates at all
	assert.Equal(t, entity.FrequencySemiMonthly,
		InferFrequency(nil, nil, "Employees are paid on a semi-monthly schedule."))
	assert.Equal(t, entity.FrequencyBiWeekly,
		InferFrequency(nil, nil, "bi-weekly payroll"))
	assert.Equal(t, entity.FrequencyWeekly,
		InferFrequency(nil, nil, "weekly payroll"))
	assert.Equal(t, entity.FrequencyMonthly,
		InferFrequency(nil, nil, "monthly payroll run"))
	assert.Equal(t, entity.FrequencyUnknown,
		InferFrequency(nil, nil, "no cadence mentioned"))

	// a span outside every band also defers to the words
	assert.Equal(t, entity.FrequencyMonthly,
		InferFrequency(day(t, "2026-01-01"), day(t, "2026-03-01"), "monthly retainer"))
}

func TestBiweeklyWordBeatsPlainWeekly(t *testing.T) {
	// "bi-weekly" contains "weekly"; the plain match must not fire
	assert.Equal(t, entity.FrequencyBiWeekly,
		InferFrequency(nil, nil, "Bi-Weekly pay schedule"))
	assert.Equal(t, entity.FrequencyBiWeekly,
		InferFrequency(nil, nil, "biweekly pay schedule"))
}
