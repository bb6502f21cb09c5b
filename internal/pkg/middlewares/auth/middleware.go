package auth

import (
	"errors"
	"net/http"

	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/pkg/middlewares/request_id"
	authsvc "dispatch/internal/service/auth"
	"dispatch/internal/service/token"
	"dispatch/pkg/logger"
)

type Middleware struct {
	log  handlerLogger
	gate Gate
}

func New(log handlerLogger, gate Gate) *Middleware {
	return &Middleware{
		log:  log.With(logger.NewField("middleware", "auth")),
		gate: gate,
	}
}

// Wrap пропускает запрос к next только с валидной сессией.
func (m *Middleware) Wrap(next Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bearer := authsvc.ExtractBearer(r.Header.Get("Authorization"))

		session, err := m.gate.Authenticate(r.Context(), bearer)
		if err != nil {
			status, message := rejection(err)
			if status == http.StatusInternalServerError {
				m.log.With(
					logger.NewField("error", err),
					logger.NewField("request_id", request_id.FromContext(r.Context())),
				).Error("authenticate request")
			}
			m.reject(w, status, message)
			return
		}

		next.ServeAuthenticated(w, r, *session)
	})
}

func rejection(err error) (int, string) {
	switch {
	case errors.Is(err, authsvc.ErrMissingToken):
		return http.StatusUnauthorized, "token is missing!"
	case errors.Is(err, authsvc.ErrRevokedToken):
		return http.StatusUnauthorized, "Token is blacklisted. Please login again"
	case errors.Is(err, token.ErrExpiredToken):
		return http.StatusUnauthorized, "token has expired"
	case errors.Is(err, token.ErrMalformedToken),
		errors.Is(err, authsvc.ErrUnknownUser):
		return http.StatusUnauthorized, "token is invalid"
	case errors.Is(err, authsvc.ErrAccountDeactivated):
		return http.StatusUnauthorized, "You have been deactivated"
	case errors.Is(err, authsvc.ErrAccountPending):
		return http.StatusUnauthorized, "Your account is pending"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func (m *Middleware) reject(w http.ResponseWriter, status int, message string) {
	if err := respond.Fail(w, status, message); err != nil {
		m.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
