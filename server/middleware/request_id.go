package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const REQUEST_ID_HEADER = "X-Request-ID"

type requestIDKey struct{}

// RequestID reuses an incoming X-Request-ID or generates one, echoes it on the
// response and stores it in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(REQUEST_ID_HEADER)
		if reqID == "" {
			reqID = uuid.New().String()
			r.Header.Set(REQUEST_ID_HEADER, reqID)
		}
		w.Header().Set(REQUEST_ID_HEADER, reqID)

		ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFrom returns the request id stored by RequestID, or "-".
func RequestIDFrom(ctx context.Context) string {
	if reqID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return reqID
	}
	return "-"
}
