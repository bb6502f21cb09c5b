package logout_post

import (
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/service/token"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "logout_post")),
		service: service,
	}
}

func (h *Handler) ServeAuthenticated(w http.ResponseWriter, r *http.Request, session entities.Session) {
	var err error
	switch revokeErr := h.service.Revoke(r.Context(), session.Token); {
	case revokeErr == nil:
		err = respond.OK(w, http.StatusOK, "logout successful")
	case errors.Is(revokeErr, token.ErrAlreadyRevoked):
		// параллельный logout тем же токеном
		err = respond.Fail(w, http.StatusUnauthorized, "Token already blacklisted")
	default:
		h.log.With(
			logger.NewField("error", revokeErr),
			logger.NewField("user_id", session.User.ID),
		).Error("revoke token")
		err = respond.Fail(w, http.StatusInternalServerError, "internal server error")
	}

	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
