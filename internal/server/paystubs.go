package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	paystubsv1 "github.com/Volpestyle/paystub-extractor/gen/proto/paystubs/v1"
	"github.com/Volpestyle/paystub-extractor/internal/common"
	"github.com/Volpestyle/paystub-extractor/internal/pipeline"
	"github.com/Volpestyle/paystub-extractor/internal/repository"
)

type PaystubsService struct {
	paystubsv1.UnimplementedPaystubsServiceServer
	extractor    *pipeline.Service
	paystubsRepo repository.PaystubRepository
	logger       *slog.Logger
}

func NewPaystubsService(extractor *pipeline.Service, repo repository.PaystubRepository, logger *slog.Logger) *PaystubsService {
	return &PaystubsService{
		extractor:    extractor,
		paystubsRepo: repo,
		logger:       logger,
	}
}

// ExtractPaystub runs the pipeline over inline bytes. Nothing is persisted;
// callers who want storage go through ingestion instead.
func (s *PaystubsService) ExtractPaystub(ctx context.Context, req *paystubsv1.ExtractPaystubRequest) (*paystubsv1.ExtractPaystubResponse, error) {
	if len(req.GetContent()) == 0 {
		s.logger.Error("extract request missing content")
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}
	contentType := strings.TrimSpace(req.GetContentType())
	if contentType == "" {
		s.logger.Error("extract request missing content_type")
		return nil, status.Error(codes.InvalidArgument, "content_type is required")
	}

	rec, err := s.extractor.Extract(ctx, req.GetContent(), contentType)
	if err != nil {
		s.logger.Error("extract.failed", "content_type", contentType, "error", err)
		return nil, common.GRPCStatus(err)
	}
	return &paystubsv1.ExtractPaystubResponse{Paystub: recordToPB(rec)}, nil
}

func (s *PaystubsService) GetPaystub(ctx context.Context, req *paystubsv1.GetPaystubRequest) (*paystubsv1.GetPaystubResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		s.logger.Error("invalid id format for get paystub", "id", req.GetId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	row, err := s.paystubsRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("get paystub failed", "id", id, "error", err)
		return nil, status.Error(codes.NotFound, "paystub not found")
	}
	return &paystubsv1.GetPaystubResponse{Paystub: rowToPB(row)}, nil
}

func (s *PaystubsService) ListPaystubs(ctx context.Context, req *paystubsv1.ListPaystubsRequest) (*paystubsv1.ListPaystubsResponse, error) {
	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			s.logger.Error("invalid from_date format", "from_date", fd, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			s.logger.Error("invalid to_date format", "to_date", td, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &t
	}

	rows, err := s.paystubsRepo.List(ctx, fromDate, toDate)
	if err != nil {
		s.logger.Error("list paystubs failed", "error", err)
		return nil, status.Error(codes.Internal, "list paystubs failed")
	}

	out := make([]*paystubsv1.Paystub, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToPB(row))
	}
	return &paystubsv1.ListPaystubsResponse{Paystubs: out}, nil
}
