package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Volpestyle/paystub-extractor/internal/common"
	"github.com/Volpestyle/paystub-extractor/internal/export"
	"github.com/Volpestyle/paystub-extractor/internal/ingest"
	"github.com/Volpestyle/paystub-extractor/internal/pipeline"
	repo "github.com/Volpestyle/paystub-extractor/internal/repository"
	svc "github.com/Volpestyle/paystub-extractor/internal/server"
)

// paystub-batch ingests a directory of paystub files, extracts each one, and
// writes an XLSX summary. With --inmem everything runs against a throwaway
// sqlite database.
func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir     = flag.String("dir", "", "directory to process paystubs from (required)")
		out     = flag.String("out", "", "output XLSX file path (defaults to parent directory)")
		fromStr = flag.String("from", "", "from pay date YYYY-MM-DD")
		toStr   = flag.String("to", "", "to pay date YYYY-MM-DD")
	)
	flag.Parse()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "Error: --dir is required")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "paystubs.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		parsed, err := time.Parse("2006-01-02", *fromStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		from = &parsed
	}
	if *toStr != "" {
		parsed, err := time.Parse("2006-01-02", *toStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		to = &parsed
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	dsn := cfg.Database.DSN
	if *inmem {
		dsn = "file:paystubs?mode=memory&cache=shared"
	}
	if dsn == "" {
		logger.Error("DB_URL is required unless --inmem is set")
		os.Exit(1)
	}

	dbCfg := cfg.Database
	dbCfg.DSN = dsn
	entc, pool, err := svc.ConnectDB(ctx, dbCfg, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	extractor, err := pipeline.NewService(pipeline.Config{
		EnableOCR:         cfg.OCR.Enabled,
		OCRLanguage:       cfg.OCR.Language,
		OCRDPI:            cfg.OCR.DPI,
		OCRMaxPages:       cfg.OCR.MaxPages,
		ProcessingTimeout: cfg.Pipeline.ProcessingTimeout,
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
	ingestor := ingest.NewFSIngestor(filesRepo, cfg.Pipeline.MaxFileSize, logger)

	logger.Info("starting ingestion", "dir", *dir)
	results, stats, err := ingestor.IngestDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}

	var ingested []uuid.UUID
	for _, result := range results {
		if result.Err != "" {
			continue
		}
		fileID, err := uuid.Parse(result.FileID)
		if err != nil {
			logger.Error("failed to parse file ID", "file_id", result.FileID, "error", err)
			continue
		}
		ingested = append(ingested, fileID)
	}
	logger.Info("ingestion complete",
		"files_ingested", len(ingested),
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	processed := 0
	failures := 0
	for _, fileID := range ingested {
		logger.Info("processing file", "file_id", fileID)
		if _, err := processor.ProcessFile(ctx, fileID); err != nil {
			logger.Error("failed to process file", "file_id", fileID, "error", err)
			failures++
		} else {
			processed++
		}
	}

	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(paystubsRepo, filesRepo, logger)
	xlsxBytes, err := exportService.ExportPaystubsXLSX(ctx, from, to)
	if err != nil {
		logger.Error("failed to export paystubs", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"files_ingested", len(ingested),
		"files_processed", processed,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files ingested: %d\n", len(ingested))
	fmt.Printf("- Files processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
