// Package pipeline wires text acquisition, pattern matching, confidence
// aggregation and the result cache into the single public extraction entry
// point.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/Volpestyle/paystub-extractor/internal/acquire"
	"github.com/Volpestyle/paystub-extractor/internal/cache"
	"github.com/Volpestyle/paystub-extractor/internal/entity"
	"github.com/Volpestyle/paystub-extractor/internal/parse"
)

// MinCacheConfidence is the trust floor below which results are never cached,
// so a bad answer cannot shadow a retry with better acquisition parameters.
const MinCacheConfidence = 0.7

type Config struct {
	EnableOCR   bool
	OCRLanguage string
	OCRDPI      int
	OCRMaxPages int

	CacheEnabled       bool
	CacheTTL           time.Duration
	CacheCapacity      int
	CacheSweepInterval time.Duration

	ProcessingTimeout time.Duration
}

// Service is the extraction orchestrator. A single Extract call does all its
// work synchronously on the calling goroutine; concurrent calls are
// independent and share only the cache.
type Service struct {
	acquirer *acquire.Acquirer
	parser   *parse.Parser
	cache    *cache.ResultCache
	timeout  time.Duration
	logger   *slog.Logger
}

// NewService builds the pipeline. With OCR enabled, a broken tesseract
// install fails construction here rather than surfacing on first use.
func NewService(cfg Config, logger *slog.Logger) (*Service, error) {
	var engine acquire.Engine
	if cfg.EnableOCR {
		te, err := acquire.NewTesseractEngine(cfg.OCRLanguage)
		if err != nil {
			return nil, err
		}
		engine = te
	}
	return NewServiceWithEngine(cfg, engine, logger), nil
}

// NewServiceWithEngine wires an explicit OCR engine (nil disables OCR).
// Exists so tests and alternative backends can skip tesseract.
func NewServiceWithEngine(cfg Config, engine acquire.Engine, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		acquirer: acquire.NewAcquirer(acquire.Config{DPI: cfg.OCRDPI, MaxPages: cfg.OCRMaxPages}, engine, logger),
		parser:   parse.NewParser(logger),
		timeout:  cfg.ProcessingTimeout,
		logger:   logger,
	}
	if cfg.CacheEnabled {
		s.cache = cache.New(cache.Config{
			TTL:           cfg.CacheTTL,
			Capacity:      cfg.CacheCapacity,
			SweepInterval: cfg.CacheSweepInterval,
		}, logger)
	}
	return s
}

// Extract turns file bytes plus a declared content type into a paystub
// record. As long as text acquisition succeeds the call returns a record,
// possibly sparse and scored 0; errors are reserved for inputs no strategy
// could read at all.
func (s *Service) Extract(ctx context.Context, data []byte, contentType string) (*entity.PaystubRecord, error) {
	if s.cache != nil {
		if rec, ok := s.cache.Get(data); ok {
			s.logger.Debug("extract.cache_hit", "content_type", contentType, "bytes", len(data))
			return rec, nil
		}
	}

	actx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		actx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := s.acquirer.Acquire(actx, data, contentType)
	if err != nil {
		s.logger.Warn("extract.acquire_failed", "content_type", contentType, "error", err)
		return nil, err
	}

	rec := s.parser.Parse(res.Text)
	rec.SourceMethod = res.Method
	if res.Method != "pdf-text" {
		markOCRSources(rec)
	}

	if s.cache != nil && rec.OverallConfidence > MinCacheConfidence {
		s.cache.Set(data, rec)
	}

	s.logger.Info("extract.ok",
		"method", res.Method,
		"pages", res.Pages,
		"provider", rec.Provider,
		"confidence", rec.OverallConfidence,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}

// Close releases background resources (the cache sweep).
func (s *Service) Close() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

// markOCRSources downgrades field provenance when the text came from optical
// recognition instead of a native text layer.
func markOCRSources(rec *entity.PaystubRecord) {
	if rec.GrossPay != nil {
		rec.GrossPay.Source = entity.SourceOCRHeuristic
	}
	if rec.NetPay != nil {
		rec.NetPay.Source = entity.SourceOCRHeuristic
	}
}
