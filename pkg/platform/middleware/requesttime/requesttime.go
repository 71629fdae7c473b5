// Package requesttime pins one "now" per request so the audit event and the
// log lines of a node execution share a timestamp.
package requesttime

import (
	"net/http"
	"time"

	"complyhub/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now().UTC())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
