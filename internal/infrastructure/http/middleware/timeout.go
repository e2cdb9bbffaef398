package middleware

import (
	"context"
	"net/http"
	"time"
)

// ExtendedTimeout wraps a handler to apply a longer per-request deadline.
// Export endpoints fetch every page of a report before building the workbook,
// so they need more room than the default request timeout.
func ExtendedTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
