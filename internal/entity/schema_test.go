package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord(t *testing.T) *PaystubRecord {
	t.Helper()
	gross := decimal.RequireFromString("5432.10")
	tax := decimal.RequireFromString("432.10")
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	name := "Jane Doe"

	return &PaystubRecord{
		RawText:      "Gross Pay: $5,432.10",
		SourceMethod: "pdf-text",
		Provider:     "ADP",
		GrossPay: &Field[Money]{
			Value:      Money{Amount: gross, Currency: "USD"},
			Confidence: 0.9,
			Source:     SourcePattern,
		},
		PayPeriodStart: &start,
		PayPeriodEnd:   &end,
		PayFrequency:   FrequencyBiWeekly,
		EmployeeName:   &name,
		TaxDeductions: []Deduction{{
			Name:       "Federal Tax",
			Amount:     Money{Amount: tax, Currency: "USD"},
			Category:   DeductionTax,
			Confidence: 0.8,
		}},
		OverallConfidence: 0.86,
	}
}

func TestRecordValidatesAgainstSchema(t *testing.T) {
	raw, err := json.Marshal(sampleRecord(t))
	require.NoError(t, err)

	err = ValidateJSONAgainstSchema(BuildPaystubJSONSchema(), raw)
	assert.NoError(t, err)
}

func TestSparseRecordValidatesAgainstSchema(t *testing.T) {
	rec := &PaystubRecord{
		RawText:      "nothing recognized",
		Provider:     ProviderGeneric,
		PayFrequency: FrequencyUnknown,
	}
	raw, err := json.Marshal(rec)
	require.NoError(t, err)

	assert.NoError(t, ValidateJSONAgainstSchema(BuildPaystubJSONSchema(), raw))
}

func TestSchemaRejectsOutOfRangeConfidence(t *testing.T) {
	rec := sampleRecord(t)
	rec.OverallConfidence = 1.5
	raw, err := json.Marshal(rec)
	require.NoError(t, err)

	assert.Error(t, ValidateJSONAgainstSchema(BuildPaystubJSONSchema(), raw))
}

func TestSchemaRejectsBadDeductionCategory(t *testing.T) {
	rec := sampleRecord(t)
	rec.TaxDeductions[0].Category = "garnishment"
	raw, err := json.Marshal(rec)
	require.NoError(t, err)

	assert.Error(t, ValidateJSONAgainstSchema(BuildPaystubJSONSchema(), raw))
}

func TestMoneyString(t *testing.T) {
	m := Money{Amount: decimal.RequireFromString("5432.1"), Currency: "USD"}
	assert.Equal(t, "5432.10 USD", m.String())
	assert.True(t, m.IsPositive())
	assert.False(t, Money{Amount: decimal.Zero, Currency: "USD"}.IsPositive())
}
