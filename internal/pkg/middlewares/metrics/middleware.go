package metrics

import (
	"net/http"
	"strconv"
	"time"

	"dispatch/internal/pkg/middlewares/request_id"
	"dispatch/pkg/logger"

	"github.com/gorilla/mux"
)

// служебные маршруты логируются на debug, чтобы пробы не забивали access log
var quietRoutes = map[string]struct{}{
	"/healthcheck": {},
	"/metrics":     {},
	"/ping":        {},
}

func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			statusCode := strconv.Itoa(rw.statusCode)
			route := routeTemplate(r)

			HTTPRequestDuration.WithLabelValues(r.Method, route, statusCode).Observe(duration.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, route, statusCode).Inc()
			HTTPResponseSize.WithLabelValues(route).Observe(float64(rw.written))

			accessLog := log.With(
				logger.NewField("request_id", request_id.FromContext(r.Context())),
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("status", statusCode),
				logger.NewField("bytes", rw.written),
				logger.NewField("duration", duration.String()),
			)
			if _, quiet := quietRoutes[route]; quiet {
				accessLog.Debug("HTTP request")
				return
			}
			accessLog.Info("HTTP request")
		})
	}
}

// routeTemplate шаблон маршрута, чтобы id заказа не раздувал кардинальность.
// Для запросов мимо роутера (404) берется фиксированная метка.
func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unmatched"
	}
	template, err := route.GetPathTemplate()
	if err != nil {
		return "unmatched"
	}
	return template
}

type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	written     int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += n
	return n, err
}
