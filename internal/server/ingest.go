package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	paystubsv1 "github.com/Volpestyle/paystub-extractor/gen/proto/paystubs/v1"
	"github.com/Volpestyle/paystub-extractor/internal/async"
	"github.com/Volpestyle/paystub-extractor/internal/ingest"
	"github.com/Volpestyle/paystub-extractor/internal/pipeline"
)

type IngestionService struct {
	paystubsv1.UnimplementedIngestionServiceServer
	ingestor  ingest.Ingestor
	processor *pipeline.Processor
	queue     async.Queue
	logger    *slog.Logger
}

func NewIngestionService(ing ingest.Ingestor, proc *pipeline.Processor, queue async.Queue, logger *slog.Logger) *IngestionService {
	return &IngestionService{
		ingestor:  ing,
		processor: proc,
		queue:     queue,
		logger:    logger,
	}
}

// IngestFile registers a single file and runs extraction on it synchronously.
func (s *IngestionService) IngestFile(ctx context.Context, req *paystubsv1.IngestFileRequest) (*paystubsv1.IngestResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path")
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting file ingest", "path", path)
	r, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "file_id", r.FileID, "deduplicated", r.Deduplicated)

	resp := &paystubsv1.IngestResponse{
		FileId:         r.FileID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          "",
	}

	fileUUID, _ := uuid.Parse(r.FileID)
	s.logger.Info("starting file processing", "file_id", r.FileID)
	if _, err := s.processor.ProcessFile(ctx, fileUUID); err != nil {
		s.logger.Error("pipeline.failed", "file_id", r.FileID, "err", err)
		resp.Error = err.Error()
	}
	return resp, nil
}

func (s *IngestionService) IngestDirectory(ctx context.Context, req *paystubsv1.IngestDirectoryRequest) (*paystubsv1.IngestDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path")
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}
	skipHidden := req.GetSkipHidden()

	s.logger.Info("starting directory ingest", "root", root, "skip_hidden", skipHidden)
	results, stats, err := s.ingestor.IngestDirectory(ctx, root, skipHidden)
	if err != nil {
		// file errors are already logged in the ingest layer
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed", "scanned", stats.Scanned, "matched", stats.Matched, "succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &paystubsv1.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*paystubsv1.IngestResponse, 0, len(results)),
	}

	// Extraction for directory ingests is queued; results report intake only.
	s.logger.Info("queueing ingested files for processing", "file_count", len(results))
	for _, r := range results {
		item := &paystubsv1.IngestResponse{
			FileId:         r.FileID,
			Deduplicated:   r.Deduplicated,
			ContentHashHex: r.HashHex,
			FileExt:        r.FileExt,
			UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
			SourcePath:     r.SourcePath,
			Error:          r.Err,
		}

		if r.Err == "" && r.FileID != "" {
			if fileUUID, err := uuid.Parse(r.FileID); err == nil {
				_ = s.queue.Enqueue(ctx, async.Job{FileID: fileUUID, SubmittedAt: time.Now()})
			}
		}

		out.Results = append(out.Results, item)
	}
	return out, nil
}
