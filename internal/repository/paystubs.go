package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Volpestyle/paystub-extractor/gen/ent"
	entpaystub "github.com/Volpestyle/paystub-extractor/gen/ent/paystub"
	"github.com/Volpestyle/paystub-extractor/internal/entity"
)

// storedDeductions is the JSON shape persisted in the deductions column.
type storedDeductions struct {
	Tax     []entity.Deduction `json:"tax"`
	Benefit []entity.Deduction `json:"benefit"`
	Other   []entity.Deduction `json:"other"`
}

type PaystubRepository interface {
	CreateFromRecord(ctx context.Context, fileID uuid.UUID, rec *entity.PaystubRecord) (*ent.Paystub, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Paystub, error)
	List(ctx context.Context, fromDate, toDate *time.Time) ([]*ent.Paystub, error)
}

type paystubRepo struct {
	client *ent.Client
	schema map[string]any
	logger *slog.Logger
}

func NewPaystubRepository(client *ent.Client, logger *slog.Logger) PaystubRepository {
	return &paystubRepo{
		client: client,
		schema: entity.BuildPaystubJSONSchema(),
		logger: logger,
	}
}

// CreateFromRecord validates the serialized record against the paystub JSON
// schema and stores it. Validation failure here means an extraction bug, not
// a caller error.
func (r *paystubRepo) CreateFromRecord(ctx context.Context, fileID uuid.UUID, rec *entity.PaystubRecord) (*ent.Paystub, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	if err := entity.ValidateJSONAgainstSchema(r.schema, raw); err != nil {
		r.logger.Error("paystub record failed schema validation", "file_id", fileID, "error", err)
		return nil, err
	}

	deductions, err := json.Marshal(storedDeductions{
		Tax:     rec.TaxDeductions,
		Benefit: rec.BenefitDeductions,
		Other:   rec.OtherDeductions,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal deductions: %w", err)
	}

	builder := r.client.Paystub.Create().
		SetFileID(fileID).
		SetProvider(rec.Provider).
		SetPayFrequency(string(rec.PayFrequency)).
		SetDeductions(deductions).
		SetOverallConfidence(rec.OverallConfidence).
		SetRawText(rec.RawText)

	if rec.GrossPay != nil {
		builder = builder.
			SetGrossPay(rec.GrossPay.Value.Amount.String()).
			SetCurrencyCode(rec.GrossPay.Value.Currency)
	}
	if rec.NetPay != nil {
		builder = builder.SetNetPay(rec.NetPay.Value.Amount.String())
	}
	if rec.YTDGrossPay != nil {
		builder = builder.SetYtdGrossPay(rec.YTDGrossPay.Amount.String())
	}
	if rec.YTDNetPay != nil {
		builder = builder.SetYtdNetPay(rec.YTDNetPay.Amount.String())
	}
	if rec.PayPeriodStart != nil {
		builder = builder.SetPayPeriodStart(*rec.PayPeriodStart)
	}
	if rec.PayPeriodEnd != nil {
		builder = builder.SetPayPeriodEnd(*rec.PayPeriodEnd)
	}
	if rec.PayDate != nil {
		builder = builder.SetPayDate(*rec.PayDate)
	}
	if rec.EmployeeName != nil {
		builder = builder.SetEmployeeName(*rec.EmployeeName)
	}
	if rec.EmployeeID != nil {
		builder = builder.SetEmployeeID(*rec.EmployeeID)
	}
	if rec.EmployerName != nil {
		builder = builder.SetEmployerName(*rec.EmployerName)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create paystub", "file_id", fileID, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *paystubRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Paystub, error) {
	return r.client.Paystub.Get(ctx, id)
}

func (r *paystubRepo) List(ctx context.Context, fromDate, toDate *time.Time) ([]*ent.Paystub, error) {
	q := r.client.Paystub.Query()
	if fromDate != nil {
		q = q.Where(entpaystub.PayDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(entpaystub.PayDateLTE(*toDate))
	}
	rows, err := q.Order(entpaystub.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list paystubs", "error", err)
		return nil, err
	}
	return rows, nil
}
