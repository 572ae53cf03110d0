package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	paystubsv1 "github.com/Volpestyle/paystub-extractor/gen/proto/paystubs/v1"
	"github.com/Volpestyle/paystub-extractor/internal/export"
)

type ExportServer struct {
	paystubsv1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

// ExportPaystubs builds an XLSX workbook for the requested pay-date window.
// Only from -> from..today; only to -> beginning..to; neither -> everything.
func (s *ExportServer) ExportPaystubs(ctx context.Context, req *paystubsv1.ExportPaystubsRequest) (*paystubsv1.ExportPaystubsResponse, error) {
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.svc.ExportPaystubsXLSX(ctx, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, status.Error(codes.Internal, "export failed")
	}
	return &paystubsv1.ExportPaystubsResponse{Xlsx: xlsx}, nil
}
