package common

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{ErrUnsupportedContentType, codes.InvalidArgument},
		{ErrUnreadableDocument, codes.FailedPrecondition},
		{ErrOCRUnavailable, codes.FailedPrecondition},
		{ErrNotFound, codes.NotFound},
		{ErrInternal, codes.Internal},
		{fmt.Errorf("content type %q: %w", "text/plain", ErrUnsupportedContentType), codes.InvalidArgument},
	}
	for _, tc := range cases {
		st, ok := status.FromError(GRPCStatus(tc.err))
		require.True(t, ok, "error %v", tc.err)
		assert.Equal(t, tc.want, st.Code(), "error %v", tc.err)
	}
}

func TestGRPCStatusNil(t *testing.T) {
	assert.NoError(t, GRPCStatus(nil))
}

func TestAppErrorUnwraps(t *testing.T) {
	err := NewAppError("OCR_ERROR", "engine missing", ErrOCRUnavailable)
	assert.ErrorIs(t, err, ErrOCRUnavailable)
	assert.Contains(t, err.Error(), "engine missing")
}
