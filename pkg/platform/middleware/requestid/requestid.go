// Package requestid propagates a request id through X-Request-ID.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"complyhub/pkg/requestcontext"
)

const Header = "X-Request-ID"

// Middleware reuses the caller's X-Request-ID or generates one, stores it in
// the context and echoes it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(requestcontext.WithRequestID(r.Context(), id)))
	})
}
