package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Volpestyle/paystub-extractor/gen/ent"
	entfile "github.com/Volpestyle/paystub-extractor/gen/ent/paystubfile"
)

type PaystubFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.PaystubFile, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.PaystubFile, error)
	Create(ctx context.Context, sourcePath, filename, ext, contentType string, size int, hash []byte, uploadedAt time.Time) (*ent.PaystubFile, error)
	UpsertByHash(ctx context.Context, sourcePath, filename, ext, contentType string, size int, hash []byte, uploadedAt time.Time) (*ent.PaystubFile, bool, error)
}

type paystubFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewPaystubFileRepository(entc *ent.Client, logger *slog.Logger) PaystubFileRepository {
	return &paystubFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *paystubFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.PaystubFile, error) {
	return r.ent.PaystubFile.Get(ctx, id)
}

func (r *paystubFileRepo) GetByHash(ctx context.Context, hash []byte) (*ent.PaystubFile, error) {
	row, err := r.ent.PaystubFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *paystubFileRepo) Create(ctx context.Context, sourcePath, filename, ext, contentType string, size int, hash []byte, uploadedAt time.Time) (*ent.PaystubFile, error) {
	row, err := r.ent.PaystubFile.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetContentType(contentType).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create paystub file", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash deduplicates uploads: a byte-identical file maps to the
// existing row.
func (r *paystubFileRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext, contentType string, size int, hash []byte, uploadedAt time.Time) (*ent.PaystubFile, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, sourcePath, filename, ext, contentType, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert paystub file by hash", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}
