package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/Volpestyle/paystub-extractor/internal/entity"
	"github.com/Volpestyle/paystub-extractor/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	paystubsRepo repository.PaystubRepository
	filesRepo    repository.PaystubFileRepository
	logger       *slog.Logger
}

func NewService(repo repository.PaystubRepository, filesRepo repository.PaystubFileRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{paystubsRepo: repo, filesRepo: filesRepo, logger: logger}
}

// storedDeductions mirrors the JSON shape the repository persists in the
// deductions column.
type storedDeductions struct {
	Tax     []entity.Deduction `json:"tax"`
	Benefit []entity.Deduction `json:"benefit"`
	Other   []entity.Deduction `json:"other"`
}

// ExportPaystubsXLSX returns an XLSX workbook (as bytes) for the given pay-date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all paystubs.
func (s *Service) ExportPaystubsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	rows, err := s.paystubsRepo.List(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query paystubs: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Paystubs"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Pay Date",
		"Period Start",
		"Period End",
		"Provider",
		"Employer",
		"Employee",
		"Frequency",
		"Gross Pay",
		"Net Pay",
		"Total Deductions",
		"Currency",
		"Confidence",
		"File Path",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowN := 2
	for _, p := range rows {
		filePath := ""
		if fileRow, err := s.filesRepo.GetByID(ctx, p.FileID); err == nil && fileRow != nil {
			filePath = fileRow.SourcePath
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowN)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, fmtDate(p.PayDate))
		write(2, fmtDate(p.PayPeriodStart))
		write(3, fmtDate(p.PayPeriodEnd))
		write(4, p.Provider)
		write(5, strOr(p.EmployerName, ""))
		write(6, strOr(p.EmployeeName, ""))
		write(7, p.PayFrequency)
		write(8, strOr(p.GrossPay, ""))
		write(9, strOr(p.NetPay, ""))
		write(10, totalDeductions(p.Deductions))
		write(11, p.CurrencyCode)
		write(12, fmt.Sprintf("%.2f", p.OverallConfidence))
		write(13, filePath)

		rowN++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "C", 14) // dates
	_ = f.SetColWidth(sheet, "D", "D", 16) // provider
	_ = f.SetColWidth(sheet, "E", "F", 24) // names
	_ = f.SetColWidth(sheet, "G", "G", 14) // frequency
	_ = f.SetColWidth(sheet, "H", "J", 14) // amounts
	_ = f.SetColWidth(sheet, "M", "M", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func fmtDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func strOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

// totalDeductions sums every stored deduction amount; an empty string means
// the column was empty or unreadable.
func totalDeductions(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var stored storedDeductions
	if err := json.Unmarshal(raw, &stored); err != nil {
		return ""
	}
	total := decimal.Zero
	n := 0
	for _, group := range [][]entity.Deduction{stored.Tax, stored.Benefit, stored.Other} {
		for _, d := range group {
			total = total.Add(d.Amount.Amount)
			n++
		}
	}
	if n == 0 {
		return ""
	}
	return total.StringFixed(2)
}
