package testutil

import (
	"net/http"

	"complyhub/pkg/requestcontext"
)

// WithRequestID attaches a request id the way the requestid middleware would.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}

// WithClientMetadata attaches caller metadata the way the metadata middleware
// would.
func WithClientMetadata(req *http.Request, clientIP, userAgent string) *http.Request {
	return req.WithContext(requestcontext.WithClientMetadata(req.Context(), clientIP, userAgent))
}
