package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"dispatch/internal/handlers/rest/respond"
)

// Middleware отвечает 503 на новые запросы, как только ongoingCtx отменен во время остановки.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				w.Header().Set("Connection", "close")
				_ = respond.Fail(w, http.StatusServiceUnavailable, "service is shutting down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
