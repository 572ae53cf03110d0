package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Volpestyle/paystub-extractor/internal/entity"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"5432.10", "5432.1", true},
		{"$5,432.10", "5432.1", true},
		{"1,234,567.89", "1234567.89", true},
		{"  $ 120 ", "120", true},
		{"", "", false},
		{"abc", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseAmount(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got.String(), "input %q", tc.in)
		}
	}
}

func TestExtractMoneyFieldsYTDSeparation(t *testing.T) {
	text := `Gross Pay: $2,000.00
Net Pay: $1,500.00
YTD Gross Pay: $24,000.00
Year-to-Date Net: $18,000.00`

	rec := &entity.PaystubRecord{}
	extractMoneyFields(rec, strings.Split(text, "\n"))

	require.NotNil(t, rec.GrossPay)
	assert.Equal(t, "2000", rec.GrossPay.Value.Amount.String())
	require.NotNil(t, rec.NetPay)
	assert.Equal(t, "1500", rec.NetPay.Value.Amount.String())

	require.NotNil(t, rec.YTDGrossPay)
	assert.Equal(t, "24000", rec.YTDGrossPay.Amount.String())
	require.NotNil(t, rec.YTDNetPay)
	assert.Equal(t, "18000", rec.YTDNetPay.Amount.String())
}

func TestExtractMoneyFieldsFirstMatchWins(t *testing.T) {
	text := `Gross Pay: $2,000.00
Gross Pay: $9,999.99`

	rec := &entity.PaystubRecord{}
	extractMoneyFields(rec, strings.Split(text, "\n"))

	require.NotNil(t, rec.GrossPay)
	assert.Equal(t, "2000", rec.GrossPay.Value.Amount.String())
}
