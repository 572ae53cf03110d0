package pipeline

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Volpestyle/paystub-extractor/internal/common"
	"github.com/Volpestyle/paystub-extractor/internal/entity"
)

type countingEngine struct {
	text  string
	calls int
}

func (e *countingEngine) Recognize(_ context.Context, _ []byte) (string, error) {
	e.calls++
	return e.text, nil
}

// a paystub text rich enough to clear the caching threshold
const strongStub = `Acme Corporation
Powered by ADP
Pay Period: 01/01/2026 - 01/15/2026
Gross Pay: $5,432.10
Net Pay: $4,001.55
Federal Tax: $432.10`

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return buf.Bytes()
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, engine *countingEngine, cacheEnabled bool) *Service {
	t.Helper()
	s := NewServiceWithEngine(Config{
		CacheEnabled:      cacheEnabled,
		CacheTTL:          time.Minute,
		CacheCapacity:     16,
		ProcessingTimeout: 10 * time.Second,
	}, engine, testLogger())
	t.Cleanup(s.Close)
	return s
}

func TestExtractImageViaOCR(t *testing.T) {
	engine := &countingEngine{text: strongStub}
	svc := newTestService(t, engine, false)

	rec, err := svc.Extract(context.Background(), pngBytes(t), "image/png")
	require.NoError(t, err)

	assert.Equal(t, "ADP", rec.Provider)
	assert.Equal(t, "image-ocr", rec.SourceMethod)
	require.NotNil(t, rec.GrossPay)
	assert.Equal(t, "5432.1", rec.GrossPay.Value.Amount.String())
	// text came from optical recognition, not a native layer
	assert.Equal(t, entity.SourceOCRHeuristic, rec.GrossPay.Source)
	assert.Greater(t, rec.OverallConfidence, float32(MinCacheConfidence))
}

func TestExtractIsIdempotentThroughCache(t *testing.T) {
	engine := &countingEngine{text: strongStub}
	svc := newTestService(t, engine, true)
	data := pngBytes(t)

	first, err := svc.Extract(context.Background(), data, "image/png")
	require.NoError(t, err)
	require.Equal(t, 1, engine.calls)

	second, err := svc.Extract(context.Background(), data, "image/png")
	require.NoError(t, err)
	assert.Same(t, first, second, "cache hit returns the stored record")
	assert.Equal(t, 1, engine.calls, "no re-acquisition on byte-identical input")
}

func TestExtractLowConfidenceIsNotCached(t *testing.T) {
	engine := &countingEngine{text: "nothing that looks like payroll data in this scan at all"}
	svc := newTestService(t, engine, true)
	data := pngBytes(t)

	rec, err := svc.Extract(context.Background(), data, "image/png")
	require.NoError(t, err)
	assert.Zero(t, rec.OverallConfidence)

	_, err = svc.Extract(context.Background(), data, "image/png")
	require.NoError(t, err)
	assert.Equal(t, 2, engine.calls, "untrusted results must be recomputed")
}

func TestExtractUnsupportedContentType(t *testing.T) {
	svc := newTestService(t, &countingEngine{text: strongStub}, true)

	_, err := svc.Extract(context.Background(), []byte("plain text body"), "text/plain")
	assert.ErrorIs(t, err, common.ErrUnsupportedContentType)
}

func TestExtractImageWithoutOCR(t *testing.T) {
	s := NewServiceWithEngine(Config{ProcessingTimeout: time.Second}, nil, testLogger())
	t.Cleanup(s.Close)

	_, err := s.Extract(context.Background(), pngBytes(t), "image/png")
	assert.ErrorIs(t, err, common.ErrOCRUnavailable)
}
