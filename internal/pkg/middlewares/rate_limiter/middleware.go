package rate_limiter

import (
	"net/http"
	"strconv"

	"dispatch/internal/handlers/rest/respond"
	"dispatch/pkg/logger"

	"github.com/gorilla/mux"
)

const exceededMessage = "rate limit exceeded, try again later"

// Пробы оркестратора и скрейп метрик не расходуют токены.
var exemptPaths = map[string]struct{}{
	"/healthcheck": {},
	"/metrics":     {},
	"/ping":        {},
}

type Options struct {
	// QPS уходит только в заголовок X-RateLimit-Limit.
	QPS     int
	Limiter Limiter
}

func Middleware(log handlerLogger, opts Options) func(http.Handler) http.Handler {
	limitHeader := strconv.Itoa(opts.QPS)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok || opts.Limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := routeOf(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			reqLog := log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			)
			reqLog.Warn("rate limit exceeded")

			w.Header().Set("X-RateLimit-Limit", limitHeader)
			w.Header().Set("Retry-After", "1")
			if err := respond.Fail(w, http.StatusTooManyRequests, exceededMessage); err != nil {
				reqLog.Error("write rate limit response", logger.NewField("error", err))
			}
		})
	}
}

func routeOf(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}
