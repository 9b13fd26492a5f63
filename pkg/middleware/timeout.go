package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout installs a deadline on every request context. Repositories run
// their queries with this context, so when the deadline passes the driver
// cancels the statement instead of leaving it running on the server; the
// handler boundary maps the resulting context error to a 408 response.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
