package validate_post

import (
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/pkg/logger"
)

// Handler вся проверка выполняется auth middleware до вызова.
type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "validate_post")),
	}
}

func (h *Handler) ServeAuthenticated(w http.ResponseWriter, r *http.Request, _ entities.Session) {
	err := respond.OK(w, http.StatusOK, "token is valid")
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
