package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/Volpestyle/paystub-extractor/constants"
	"github.com/Volpestyle/paystub-extractor/internal/repository"
)

// ReviewThreshold flags stored records for human correction instead of
// auto-acceptance.
const ReviewThreshold = 0.5

// Processor runs the extraction pipeline for ingested files and persists the
// outcome: paystub row plus job bookkeeping.
type Processor struct {
	FilesRepo    repository.PaystubFileRepository
	JobsRepo     repository.ExtractJobRepository
	PaystubsRepo repository.PaystubRepository
	Service      *Service
	Logger       *slog.Logger
}

func NewProcessor(
	files repository.PaystubFileRepository,
	jobs repository.ExtractJobRepository,
	paystubs repository.PaystubRepository,
	svc *Service,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		FilesRepo:    files,
		JobsRepo:     jobs,
		PaystubsRepo: paystubs,
		Service:      svc,
		Logger:       logger,
	}
}

// ProcessFile starts an extract_job for a stored file, runs the extraction
// pipeline over its bytes, and stores the resulting paystub. Returns the job
// ID either way.
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	row, err := p.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get file: %w", err)
	}

	contentType := row.ContentType
	if contentType == "" {
		contentType = constants.ExtContentTypes[row.FileExt]
	}
	format := constants.MapContentTypeToFormat(contentType)
	if format == "" {
		return uuid.Nil, fmt.Errorf("unsupported content type: %q", contentType)
	}

	job, err := p.JobsRepo.Start(ctx, row.ID, format)
	if err != nil {
		return uuid.Nil, err
	}

	data, err := os.ReadFile(row.SourcePath)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		p.Logger.Error("processor.read.failed", "file_id", fileID, "err", err)
		return job.ID, err
	}

	rec, err := p.Service.Extract(ctx, data, contentType)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		p.Logger.Error("processor.extract.failed", "file_id", fileID, "job_id", job.ID, "err", err)
		return job.ID, err
	}

	stub, err := p.PaystubsRepo.CreateFromRecord(ctx, row.ID, rec)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		p.Logger.Error("processor.store.failed", "file_id", fileID, "job_id", job.ID, "err", err)
		return job.ID, err
	}

	needsReview := rec.OverallConfidence < ReviewThreshold
	if needsReview {
		p.Logger.Warn("extraction confidence low; needs review",
			"file_id", fileID, "job_id", job.ID, "confidence", rec.OverallConfidence)
	}

	extracted, _ := json.Marshal(rec)
	out := repository.JobOutcome{
		PaystubID:     stub.ID,
		RawText:       rec.RawText,
		Method:        rec.SourceMethod,
		Confidence:    rec.OverallConfidence,
		NeedsReview:   needsReview,
		ExtractedJSON: extracted,
	}
	if err := p.JobsRepo.FinishSuccess(ctx, job.ID, out); err != nil {
		return job.ID, err
	}

	p.Logger.Info("processor.ok",
		"file_id", fileID,
		"job_id", job.ID,
		"paystub_id", stub.ID,
		"provider", rec.Provider,
		"confidence", rec.OverallConfidence,
	)
	return job.ID, nil
}
