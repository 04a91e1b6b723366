package roleauth

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader is read from requests and echoed on responses.
const RequestIDHeader = "X-Request-ID"

// RequestContext creates middleware that puts a request ID into the context so
// that roleauth logs can be correlated with the host's access logs. An
// incoming X-Request-ID is reused; otherwise a UUID is generated.
//
// Example:
//
//	router.Use(roleauth.RequestContext())
func RequestContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			ctx := WithRequestID(r.Context(), requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
