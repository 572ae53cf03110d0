package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/Volpestyle/paystub-extractor/internal/common"
)

// RequestIDUnaryInterceptor tags every RPC with a request ID and logs its
// outcome. Handlers can read the ID back via common.RequestIDFromContext.
func RequestIDUnaryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc.failed",
				"method", info.FullMethod,
				"request_id", requestID,
				"duration_ms", time.Since(start).Milliseconds(),
				"error", err,
			)
			return resp, err
		}
		logger.Debug("rpc.ok",
			"method", info.FullMethod,
			"request_id", requestID,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return resp, nil
	}
}
