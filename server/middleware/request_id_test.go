package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	reqID := rr.Header().Get(REQUEST_ID_HEADER)
	_, err := uuid.Parse(reqID)
	require.NoError(t, err)
	assert.Equal(t, reqID, seen)
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(REQUEST_ID_HEADER, "abc-123")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get(REQUEST_ID_HEADER))
	assert.Equal(t, "abc-123", seen)
}

func TestRequestIDFrom_Missing(t *testing.T) {
	assert.Equal(t, "-", RequestIDFrom(context.Background()))
}
