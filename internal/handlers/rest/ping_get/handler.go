package ping_get

import (
	"net/http"

	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/pkg/middlewares/request_id"
	"dispatch/pkg/logger"
)

const pong = "pong"

// Handler liveness без обращения к зависимостям, в отличие от /healthcheck.
type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "ping")),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	if err := respond.OK(w, http.StatusOK, pong); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("request_id", request_id.FromContext(r.Context())),
		).Error("encode JSON response")
	}
}
