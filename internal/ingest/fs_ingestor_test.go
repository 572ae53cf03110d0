package ingest

import (
	"context"
	"encoding/hex"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Volpestyle/paystub-extractor/gen/ent"
)

// memFilesRepo is an in-memory stand-in for the paystub_files table.
type memFilesRepo struct {
	byHash map[string]*ent.PaystubFile
}

func newMemFilesRepo() *memFilesRepo {
	return &memFilesRepo{byHash: make(map[string]*ent.PaystubFile)}
}

func (m *memFilesRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.PaystubFile, error) {
	for _, row := range m.byHash {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, os.ErrNotExist
}

func (m *memFilesRepo) GetByHash(_ context.Context, hash []byte) (*ent.PaystubFile, error) {
	if row, ok := m.byHash[hex.EncodeToString(hash)]; ok {
		return row, nil
	}
	return nil, os.ErrNotExist
}

func (m *memFilesRepo) Create(_ context.Context, sourcePath, filename, ext, contentType string, size int, hash []byte, uploadedAt time.Time) (*ent.PaystubFile, error) {
	row := &ent.PaystubFile{
		ID:          uuid.New(),
		SourcePath:  sourcePath,
		ContentHash: hash,
		Filename:    filename,
		FileExt:     ext,
		ContentType: contentType,
		FileSize:    size,
		UploadedAt:  uploadedAt,
	}
	m.byHash[hex.EncodeToString(hash)] = row
	return row, nil
}

func (m *memFilesRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext, contentType string, size int, hash []byte, uploadedAt time.Time) (*ent.PaystubFile, bool, error) {
	if row, err := m.GetByHash(ctx, hash); err == nil {
		return row, true, nil
	}
	row, err := m.Create(ctx, sourcePath, filename, ext, contentType, size, hash, uploadedAt)
	return row, false, err
}

func testIngestor(repo *memFilesRepo) *FSIngestor {
	return &FSIngestor{
		FilesRepo: repo,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIngestPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stub.pdf", "%PDF-1.4 fake body")

	repo := newMemFilesRepo()
	r, err := testIngestor(repo).IngestPath(context.Background(), path)
	require.NoError(t, err)

	assert.False(t, r.Deduplicated)
	assert.Equal(t, "pdf", r.FileExt)
	assert.Equal(t, "application/pdf", r.ContentType)
	assert.NotEmpty(t, r.FileID)
	assert.Len(t, r.HashHex, 64)
}

func TestIngestPathDeduplicatesByContent(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.pdf", "same bytes")
	second := writeFile(t, dir, "b.pdf", "same bytes")

	repo := newMemFilesRepo()
	ing := testIngestor(repo)

	r1, err := ing.IngestPath(context.Background(), first)
	require.NoError(t, err)
	r2, err := ing.IngestPath(context.Background(), second)
	require.NoError(t, err)

	assert.True(t, r2.Deduplicated)
	assert.Equal(t, r1.FileID, r2.FileID)
}

func TestIngestPathRejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "plain text")

	_, err := testIngestor(newMemFilesRepo()).IngestPath(context.Background(), path)
	assert.Error(t, err)
}

func TestIngestPathEnforcesSizeLimit(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "big.pdf", "0123456789")

	ing := testIngestor(newMemFilesRepo())
	ing.MaxFileSize = 5
	_, err := ing.IngestPath(context.Background(), path)
	assert.ErrorContains(t, err, "file too large")
}

func TestIngestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.pdf", "doc a")
	writeFile(t, dir, "nested/b.png", "doc b")
	writeFile(t, dir, "notes.txt", "not a paystub")
	writeFile(t, dir, ".hidden/c.pdf", "hidden doc")

	results, stats, err := testIngestor(newMemFilesRepo()).IngestDirectory(context.Background(), dir, true)
	require.NoError(t, err)

	assert.Len(t, results, 2)
	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(2), stats.Succeeded)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.Equal(t, uint32(0), stats.Deduplicated)
}
