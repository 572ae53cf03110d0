package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount plus an ISO 4217 currency code.
// Amounts are never floats; cent-level drift is not acceptable here.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

func (m Money) String() string {
	return m.Amount.StringFixed(2) + " " + m.Currency
}

// FieldSource records how an uncertain value was obtained.
type FieldSource string

const (
	SourcePattern      FieldSource = "pattern"
	SourceOCRHeuristic FieldSource = "ocr-heuristic"
	SourceDefault      FieldSource = "default"
)

// Field wraps any uncertain extraction with its confidence and provenance.
type Field[T any] struct {
	Value      T           `json:"value"`
	Confidence float32     `json:"confidence"`
	Source     FieldSource `json:"source"`
}

// DeductionCategory classifies a paystub deduction line item.
type DeductionCategory string

const (
	DeductionTax     DeductionCategory = "tax"
	DeductionBenefit DeductionCategory = "benefit"
	DeductionOther   DeductionCategory = "other"
)

// Deduction is one withheld line item on a paystub.
type Deduction struct {
	Name       string            `json:"name"`
	Amount     Money             `json:"amount"`
	Category   DeductionCategory `json:"category"`
	Confidence float32           `json:"confidence"`
}

// PayFrequency is the inferred payroll cadence.
type PayFrequency string

const (
	FrequencyWeekly      PayFrequency = "WEEKLY"
	FrequencyBiWeekly    PayFrequency = "BIWEEKLY"
	FrequencySemiMonthly PayFrequency = "SEMIMONTHLY"
	FrequencyMonthly     PayFrequency = "MONTHLY"
	FrequencyUnknown     PayFrequency = "UNKNOWN"
)

// ProviderGeneric is the sentinel provider when no known payroll-system
// signature matches the document.
const ProviderGeneric = "Generic"

// PaystubRecord is the pipeline's output. It is built once per extraction
// (or returned unmodified from cache) and never mutated afterwards.
type PaystubRecord struct {
	RawText string `json:"raw_text"`
	// SourceMethod names the acquisition path that produced RawText
	// ("pdf-text", "pdf-ocr", "image-ocr").
	SourceMethod string `json:"source_method,omitempty"`
	Provider     string `json:"provider"`

	GrossPay *Field[Money] `json:"gross_pay,omitempty"`
	NetPay   *Field[Money] `json:"net_pay,omitempty"`

	// Lower-priority fields; no per-field confidence tracked.
	YTDGrossPay *Money `json:"ytd_gross_pay,omitempty"`
	YTDNetPay   *Money `json:"ytd_net_pay,omitempty"`

	PayPeriodStart *time.Time   `json:"pay_period_start,omitempty"`
	PayPeriodEnd   *time.Time   `json:"pay_period_end,omitempty"`
	PayDate        *time.Time   `json:"pay_date,omitempty"`
	PayFrequency   PayFrequency `json:"pay_frequency"`

	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeID   *string `json:"employee_id,omitempty"`
	EmployerName *string `json:"employer_name,omitempty"`

	TaxDeductions     []Deduction `json:"tax_deductions"`
	BenefitDeductions []Deduction `json:"benefit_deductions"`
	OtherDeductions   []Deduction `json:"other_deductions"`

	OverallConfidence float32 `json:"overall_confidence"`
}
