package acquire

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Volpestyle/paystub-extractor/internal/common"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeStrategy struct {
	name    string
	text    string
	outcome Outcome
	err     error
	calls   int
}

func (s *fakeStrategy) Name() string { return s.name }

func (s *fakeStrategy) Extract(_ context.Context, _ []byte) (Result, Outcome, error) {
	s.calls++
	return Result{Text: s.text, Method: s.name, Pages: 1}, s.outcome, s.err
}

type fakeEngine struct {
	text  string
	err   error
	calls int
}

func (e *fakeEngine) Recognize(_ context.Context, _ []byte) (string, error) {
	e.calls++
	return e.text, e.err
}

func TestAcquireUnsupportedContentType(t *testing.T) {
	a := NewAcquirer(Config{}, &fakeEngine{}, nil)
	_, err := a.Acquire(context.Background(), []byte("hello"), "text/plain")
	assert.ErrorIs(t, err, common.ErrUnsupportedContentType)
}

func TestAcquireImageWithoutEngine(t *testing.T) {
	a := NewAcquirer(Config{}, nil, nil)
	assert.False(t, a.OCRConfigured())
	_, err := a.Acquire(context.Background(), []byte{1, 2, 3}, "image/png")
	assert.ErrorIs(t, err, common.ErrOCRUnavailable)
}

func TestRunFirstOKWins(t *testing.T) {
	first := &fakeStrategy{name: "first", text: "  extracted   text \r\nline two", outcome: OutcomeOK}
	second := &fakeStrategy{name: "second", outcome: OutcomeOK}
	a := &Acquirer{pdf: []Strategy{first, second}, logger: testLogger()}

	res, err := a.run(context.Background(), a.pdf, nil)
	require.NoError(t, err)
	assert.Equal(t, "extracted text\nline two", res.Text, "winner's text is normalized")
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "later strategies must not run after a win")
}

func TestRunPartialBeatsTotalFailure(t *testing.T) {
	thin := &fakeStrategy{name: "thin", text: "short stub", outcome: OutcomeInsufficient}
	broken := &fakeStrategy{name: "broken", outcome: OutcomeFailed, err: errors.New("boom")}
	a := &Acquirer{pdf: []Strategy{thin, broken}, logger: testLogger()}

	res, err := a.run(context.Background(), a.pdf, nil)
	require.NoError(t, err)
	assert.Equal(t, "short stub", res.Text)
}

func TestRunAllFailedIsUnreadable(t *testing.T) {
	a := &Acquirer{
		pdf: []Strategy{
			&fakeStrategy{name: "a", outcome: OutcomeFailed, err: errors.New("boom")},
			&fakeStrategy{name: "b", text: "   ", outcome: OutcomeInsufficient},
		},
		logger: testLogger(),
	}
	_, err := a.run(context.Background(), a.pdf, nil)
	assert.ErrorIs(t, err, common.ErrUnreadableDocument)
}

func TestRunSurfacesContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := &Acquirer{
		pdf:    []Strategy{&fakeStrategy{name: "a", outcome: OutcomeFailed, err: ctx.Err()}},
		logger: testLogger(),
	}
	_, err := a.run(ctx, a.pdf, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestImageOCRStrategyRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	engine := &fakeEngine{text: "Gross Pay: $1,000.00"}
	s := imageOCRStrategy{engine: engine}

	res, outcome, err := s.Extract(context.Background(), buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, OutcomeOK, outcome)
	assert.Equal(t, "Gross Pay: $1,000.00", res.Text)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, 1, engine.calls)
}

func TestImageOCRStrategyEmptyTextIsInsufficient(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	s := imageOCRStrategy{engine: &fakeEngine{text: "   "}}
	_, outcome, err := s.Extract(context.Background(), buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, OutcomeInsufficient, outcome)
}

func TestImageOCRStrategyRejectsNonImage(t *testing.T) {
	s := imageOCRStrategy{engine: &fakeEngine{}}
	_, outcome, err := s.Extract(context.Background(), []byte("not an image"))
	assert.Error(t, err)
	assert.Equal(t, OutcomeFailed, outcome)
}

func TestIsHEIC(t *testing.T) {
	heic := append([]byte{0, 0, 0, 24}, []byte("ftypheic")...)
	heic = append(heic, make([]byte, 8)...)
	assert.True(t, isHEIC(heic))

	assert.False(t, isHEIC([]byte("short")))
	assert.False(t, isHEIC(append([]byte{0, 0, 0, 24}, []byte("ftypisom")...)))
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"a\r\nb\rc", "a\nb\nc"},
		{"a    b\t\tc", "a b c"},
		{"a\tb c", "a b c"},
		{"a\n\n\n\n\nb", "a\n\nb"},
		{"  padded line  \nnext  ", "padded line\nnext"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in), "input %q", tc.in)
	}
}
