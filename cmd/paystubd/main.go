package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	paystubsv1 "github.com/Volpestyle/paystub-extractor/gen/proto/paystubs/v1"
	"github.com/Volpestyle/paystub-extractor/internal/async"
	"github.com/Volpestyle/paystub-extractor/internal/common"
	"github.com/Volpestyle/paystub-extractor/internal/export"
	"github.com/Volpestyle/paystub-extractor/internal/ingest"
	"github.com/Volpestyle/paystub-extractor/internal/pipeline"
	repo "github.com/Volpestyle/paystub-extractor/internal/repository"
	svc "github.com/Volpestyle/paystub-extractor/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	extractor, err := pipeline.NewService(pipeline.Config{
		EnableOCR:          cfg.OCR.Enabled,
		OCRLanguage:        cfg.OCR.Language,
		OCRDPI:             cfg.OCR.DPI,
		OCRMaxPages:        cfg.OCR.MaxPages,
		CacheEnabled:       cfg.Cache.Enabled,
		CacheTTL:           cfg.Cache.TTL,
		CacheCapacity:      cfg.Cache.Capacity,
		CacheSweepInterval: cfg.Cache.SweepInterval,
		ProcessingTimeout:  cfg.Pipeline.ProcessingTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to build extraction pipeline", "error", err)
		os.Exit(1)
	}
	defer extractor.Close()

	filesRepo := repo.NewPaystubFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	paystubsRepo := repo.NewPaystubRepository(entc, logger)

	processor := pipeline.NewProcessor(filesRepo, jobsRepo, paystubsRepo, extractor, logger)
	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(svc.RequestIDUnaryInterceptor(logger)),
	)

	paystubsService := svc.NewPaystubsService(extractor, paystubsRepo, logger)
	paystubsv1.RegisterPaystubsServiceServer(grpcServer, paystubsService)

	ingestor := ingest.NewFSIngestor(filesRepo, cfg.Pipeline.MaxFileSize, logger)
	ingestionService := svc.NewIngestionService(ingestor, processor, queue, logger)
	paystubsv1.RegisterIngestionServiceServer(grpcServer, ingestionService)

	exportService := export.NewService(paystubsRepo, filesRepo, logger)
	exportServer := svc.NewExportServer(exportService, logger)
	paystubsv1.RegisterExportServiceServer(grpcServer, exportServer)

	// Optional drop-folder intake: files landing under WATCH_DIR are
	// ingested and queued without an RPC call.
	if watchDir := os.Getenv("WATCH_DIR"); watchDir != "" {
		paths, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       []string{watchDir},
			InitialScan: true,
			Debounce:    500 * time.Millisecond,
		})
		if err != nil {
			logger.Error("failed to start drop-folder watcher", "dir", watchDir, "error", err)
			os.Exit(1)
		}
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case werr, ok := <-errs:
					if ok {
						logger.Error("watcher error", "error", werr)
					}
				case path, ok := <-paths:
					if !ok {
						return
					}
					r, err := ingestor.IngestPath(ctx, path)
					if err != nil {
						logger.Error("watch ingest failed", "path", path, "error", err)
						continue
					}
					if fileUUID, err := uuid.Parse(r.FileID); err == nil {
						_ = queue.Enqueue(ctx, async.Job{FileID: fileUUID, SubmittedAt: time.Now()})
					}
				}
			}
		}()
		logger.Info("watching drop folder", "dir", watchDir)
	}

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("paystubd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
