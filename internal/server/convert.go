package server

import (
	"encoding/json"
	"time"

	"github.com/Volpestyle/paystub-extractor/gen/ent"
	paystubsv1 "github.com/Volpestyle/paystub-extractor/gen/proto/paystubs/v1"
	"github.com/Volpestyle/paystub-extractor/internal/entity"
)

func moneyToPB(m entity.Money) *paystubsv1.Money {
	return &paystubsv1.Money{Amount: m.Amount.String(), Currency: m.Currency}
}

func moneyFieldToPB(f *entity.Field[entity.Money]) *paystubsv1.MoneyField {
	if f == nil {
		return nil
	}
	return &paystubsv1.MoneyField{
		Value:      moneyToPB(f.Value),
		Confidence: f.Confidence,
		Source:     string(f.Source),
	}
}

func deductionsToPB(ds []entity.Deduction) []*paystubsv1.Deduction {
	out := make([]*paystubsv1.Deduction, 0, len(ds))
	for _, d := range ds {
		out = append(out, &paystubsv1.Deduction{
			Name:       d.Name,
			Amount:     moneyToPB(d.Amount),
			Category:   string(d.Category),
			Confidence: d.Confidence,
		})
	}
	return out
}

func dateStr(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// recordToPB maps a freshly extracted (unpersisted) record.
func recordToPB(rec *entity.PaystubRecord) *paystubsv1.Paystub {
	p := &paystubsv1.Paystub{
		Provider:          rec.Provider,
		GrossPay:          moneyFieldToPB(rec.GrossPay),
		NetPay:            moneyFieldToPB(rec.NetPay),
		PayPeriodStart:    dateStr(rec.PayPeriodStart),
		PayPeriodEnd:      dateStr(rec.PayPeriodEnd),
		PayDate:           dateStr(rec.PayDate),
		PayFrequency:      string(rec.PayFrequency),
		TaxDeductions:     deductionsToPB(rec.TaxDeductions),
		BenefitDeductions: deductionsToPB(rec.BenefitDeductions),
		OtherDeductions:   deductionsToPB(rec.OtherDeductions),
		OverallConfidence: rec.OverallConfidence,
		SourceMethod:      rec.SourceMethod,
	}
	if rec.YTDGrossPay != nil {
		p.YtdGrossPay = moneyToPB(*rec.YTDGrossPay)
	}
	if rec.YTDNetPay != nil {
		p.YtdNetPay = moneyToPB(*rec.YTDNetPay)
	}
	if rec.EmployeeName != nil {
		p.EmployeeName = *rec.EmployeeName
	}
	if rec.EmployeeID != nil {
		p.EmployeeId = *rec.EmployeeID
	}
	if rec.EmployerName != nil {
		p.EmployerName = *rec.EmployerName
	}
	return p
}

// storedDeductions mirrors the repository's deductions column shape.
type storedDeductions struct {
	Tax     []entity.Deduction `json:"tax"`
	Benefit []entity.Deduction `json:"benefit"`
	Other   []entity.Deduction `json:"other"`
}

// rowToPB maps a persisted paystub row. Amounts are already decimal strings.
func rowToPB(row *ent.Paystub) *paystubsv1.Paystub {
	p := &paystubsv1.Paystub{
		Id:                row.ID.String(),
		FileId:            row.FileID.String(),
		Provider:          row.Provider,
		PayPeriodStart:    dateStr(row.PayPeriodStart),
		PayPeriodEnd:      dateStr(row.PayPeriodEnd),
		PayDate:           dateStr(row.PayDate),
		PayFrequency:      row.PayFrequency,
		OverallConfidence: row.OverallConfidence,
		CreatedAt:         row.CreatedAt.Format(time.RFC3339Nano),
	}
	if row.GrossPay != nil {
		p.GrossPay = &paystubsv1.MoneyField{
			Value: &paystubsv1.Money{Amount: *row.GrossPay, Currency: row.CurrencyCode},
		}
	}
	if row.NetPay != nil {
		p.NetPay = &paystubsv1.MoneyField{
			Value: &paystubsv1.Money{Amount: *row.NetPay, Currency: row.CurrencyCode},
		}
	}
	if row.YtdGrossPay != nil {
		p.YtdGrossPay = &paystubsv1.Money{Amount: *row.YtdGrossPay, Currency: row.CurrencyCode}
	}
	if row.YtdNetPay != nil {
		p.YtdNetPay = &paystubsv1.Money{Amount: *row.YtdNetPay, Currency: row.CurrencyCode}
	}
	if row.EmployeeName != nil {
		p.EmployeeName = *row.EmployeeName
	}
	if row.EmployeeID != nil {
		p.EmployeeId = *row.EmployeeID
	}
	if row.EmployerName != nil {
		p.EmployerName = *row.EmployerName
	}
	if len(row.Deductions) > 0 {
		var stored storedDeductions
		if err := json.Unmarshal(row.Deductions, &stored); err == nil {
			p.TaxDeductions = deductionsToPB(stored.Tax)
			p.BenefitDeductions = deductionsToPB(stored.Benefit)
			p.OtherDeductions = deductionsToPB(stored.Other)
		}
	}
	return p
}
