package parse

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Volpestyle/paystub-extractor/internal/entity"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

const sampleStub = `Acme Corporation
Powered by ADP

Employee Name: Jane Doe
Employee ID: EMP-4471

Pay Period: 01/01/2026 - 01/15/2026
Pay Date: 01/18/2026

Gross Pay: $5,432.10
Net Pay: $4,001.55
YTD Gross Pay: $10,864.20

Federal Tax: $432.10
State Tax: $198.00
Health Insurance: $120.00
Dental Insurance: $18.50`

func TestParseFullDocument(t *testing.T) {
	rec := NewParser(nil).Parse(sampleStub)

	assert.Equal(t, "ADP", rec.Provider)
	assert.Equal(t, sampleStub, rec.RawText)

	require.NotNil(t, rec.GrossPay)
	assert.Equal(t, "5432.1", rec.GrossPay.Value.Amount.String())
	assert.Equal(t, "USD", rec.GrossPay.Value.Currency)
	assert.InDelta(t, 0.9, rec.GrossPay.Confidence, 1e-6)
	assert.Equal(t, entity.SourcePattern, rec.GrossPay.Source)

	require.NotNil(t, rec.NetPay)
	assert.Equal(t, "4001.55", rec.NetPay.Value.Amount.String())

	require.NotNil(t, rec.YTDGrossPay)
	assert.Equal(t, "10864.2", rec.YTDGrossPay.Amount.String())

	require.NotNil(t, rec.PayPeriodStart)
	require.NotNil(t, rec.PayPeriodEnd)
	assert.Equal(t, "2026-01-01", rec.PayPeriodStart.Format("2006-01-02"))
	assert.Equal(t, "2026-01-15", rec.PayPeriodEnd.Format("2006-01-02"))
	require.NotNil(t, rec.PayDate)
	assert.Equal(t, "2026-01-18", rec.PayDate.Format("2006-01-02"))

	// 14-day span lands in the bi-weekly band
	assert.Equal(t, entity.FrequencyBiWeekly, rec.PayFrequency)

	require.NotNil(t, rec.EmployeeName)
	assert.Equal(t, "Jane Doe", *rec.EmployeeName)
	require.NotNil(t, rec.EmployeeID)
	assert.Equal(t, "EMP-4471", *rec.EmployeeID)
	require.NotNil(t, rec.EmployerName)
	assert.Equal(t, "Acme Corporation", *rec.EmployerName)

	require.Len(t, rec.TaxDeductions, 2)
	assert.Equal(t, "Federal Tax", rec.TaxDeductions[0].Name)
	assert.Equal(t, "432.1", rec.TaxDeductions[0].Amount.Amount.String())
	assert.Equal(t, entity.DeductionTax, rec.TaxDeductions[0].Category)
	assert.InDelta(t, 0.8, rec.TaxDeductions[0].Confidence, 1e-6)

	require.Len(t, rec.BenefitDeductions, 2)
	assert.Equal(t, "Health Insurance", rec.BenefitDeductions[0].Name)
	assert.Equal(t, entity.DeductionBenefit, rec.BenefitDeductions[0].Category)

	// gross 0.9 + net 0.9 + period 0.8 + tax mean 0.8 + provider 0.9 / 5
	assert.InDelta(t, 0.86, rec.OverallConfidence, 1e-3)
}

func TestParseSingleMoneyLine(t *testing.T) {
	rec := NewParser(nil).Parse("Gross Pay: $5,432.10")

	require.NotNil(t, rec.GrossPay)
	assert.True(t, rec.GrossPay.Value.Amount.Equal(mustDecimal(t, "5432.10")))
	assert.Equal(t, "USD", rec.GrossPay.Value.Currency)
	assert.InDelta(t, 0.9, rec.GrossPay.Confidence, 1e-6)

	// the one present signal is the mean
	assert.InDelta(t, 0.9, rec.OverallConfidence, 1e-6)
}

func TestParseNothingRecognizedScoresZero(t *testing.T) {
	rec := NewParser(nil).Parse("lorem ipsum dolor sit amet\nnothing of interest here")

	assert.Equal(t, entity.ProviderGeneric, rec.Provider)
	assert.Nil(t, rec.GrossPay)
	assert.Nil(t, rec.NetPay)
	assert.Empty(t, rec.TaxDeductions)
	assert.Equal(t, entity.FrequencyUnknown, rec.PayFrequency)
	assert.Zero(t, rec.OverallConfidence)
}

func TestParseDeductionClassification(t *testing.T) {
	text := `Federal Tax: $432.10
State Disability Insurance: $12.00
Health Insurance: $120.00
401k: $250.00
Mystery Line Item: $9.99`
	rec := NewParser(nil).Parse(text)

	require.Len(t, rec.TaxDeductions, 2)
	assert.Equal(t, "Federal Tax", rec.TaxDeductions[0].Name)
	// tax keywords win over the word "insurance"
	assert.Equal(t, "State Disability Insurance", rec.TaxDeductions[1].Name)

	require.Len(t, rec.BenefitDeductions, 2)
	assert.Equal(t, "Health Insurance", rec.BenefitDeductions[0].Name)
	assert.Equal(t, "401k", rec.BenefitDeductions[1].Name)

	// unmatched names are dropped, not misfiled
	assert.Empty(t, rec.OtherDeductions)
}

func TestDetectProvider(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Powered by ADP", "ADP"},
		{"automatic data processing inc", "ADP"},
		{"gusto payroll statement", "Gusto"},
		{"PAYCHEX FLEX", "Paychex"},
		{"intuit payroll services", "QuickBooks"},
		{"just some random text", "Generic"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectProvider(tc.text), "text: %q", tc.text)
	}
}
