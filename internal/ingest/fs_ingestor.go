package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Volpestyle/paystub-extractor/constants"
	"github.com/Volpestyle/paystub-extractor/internal/repository"
)

// FSIngestor reads paystub uploads from the local filesystem.
type FSIngestor struct {
	FilesRepo   repository.PaystubFileRepository
	AllowedExts map[string]struct{} // lowercased sans '.'; nil -> default set
	MaxFileSize int64               // bytes; 0 -> no limit
	Logger      *slog.Logger
}

func NewFSIngestor(files repository.PaystubFileRepository, maxFileSize int64, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{
		FilesRepo:   files,
		MaxFileSize: maxFileSize,
		Logger:      logger,
	}
}

func (i *FSIngestor) allowed(ext string) bool {
	ext = constants.NormalizeExt(ext)
	allow := i.AllowedExts
	if allow == nil {
		allow = constants.AllowedExtensions
	}
	_, ok := allow[ext]
	return ok
}

// IngestPath validates, hashes and registers one file. Byte-identical
// uploads deduplicate against the stored content hash.
func (i *FSIngestor) IngestPath(ctx context.Context, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		i.Logger.Error("abs path error", "path", path, "error", err)
		return out, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !i.allowed(ext) {
		i.Logger.Warn("unsupported or missing extension", "path", abs, "ext", ext)
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}
	contentType := constants.ExtContentTypes[ext]

	info, err := os.Stat(abs)
	if err != nil {
		return out, err
	}
	if i.MaxFileSize > 0 && info.Size() > i.MaxFileSize {
		i.Logger.Warn("file exceeds size limit", "path", abs, "size", info.Size(), "limit", i.MaxFileSize)
		return out, fmt.Errorf("file too large: %d bytes (limit %d)", info.Size(), i.MaxFileSize)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		i.Logger.Error("read error", "path", abs, "error", err)
		return out, err
	}
	sum := sha256.Sum256(data)
	now := time.Now().UTC()

	row, dedup, err := i.FilesRepo.UpsertByHash(ctx, abs, filepath.Base(abs), ext, contentType, len(data), sum[:], now)
	if err != nil {
		return out, err
	}

	out = IngestionResult{
		SourcePath:   row.SourcePath,
		FileID:       row.ID.String(),
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum[:]),
		FileExt:      row.FileExt,
		ContentType:  row.ContentType,
		UploadedAt:   row.UploadedAt,
	}
	return out, nil
}

// IngestDirectory walks root, skips hidden entries if requested,
// and calls IngestPath for each file. Returns per-file results + aggregate stats.
func (i *FSIngestor) IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		if !i.allowed(filepath.Ext(path)) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

// isHidden checks if a file or directory is hidden (starts with '.').
func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
