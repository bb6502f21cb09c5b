package recovery

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"dispatch/internal/dto"
	"dispatch/internal/pkg/middlewares/request_id"
	"dispatch/pkg/logger"
)

// Middleware превращает панику обработчика в 500 с общим сообщением.
// http.ErrAbortHandler пробрасывается дальше, как того ожидает net/http.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.With(
					logger.NewField("request_id", request_id.FromContext(r.Context())),
					logger.NewField("method", r.Method),
					logger.NewField("path", r.URL.Path),
					logger.NewField("recover", rec),
					logger.NewField("stack", string(debug.Stack())),
				).Error("handler panic")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(dto.Fail("internal server error"))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
