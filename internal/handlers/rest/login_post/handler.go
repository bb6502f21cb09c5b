package login_post

import (
	"context"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/service/account"
	"dispatch/pkg/logger"
)

const badCredentials = "Email, Phone No or password is incorrect"

type loginFunc func(ctx context.Context, creds entities.Credentials) (*entities.Session, error)

// Handler логин через HTTP basic auth: username это email или телефон.
type Handler struct {
	log      handlerLogger
	login    loginFunc
	withRole bool
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:   log.With(logger.NewField("handler", "login_post")),
		login: service.Login,
	}
}

// NewRider логин райдера: не-райдер получает 404, в ответе есть role.
func NewRider(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:      log.With(logger.NewField("handler", "rider_login_post")),
		login:    service.LoginRider,
		withRole: true,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	username, password, ok := r.BasicAuth()
	if !ok {
		h.write(w, http.StatusUnprocessableEntity, dto.Fail("please, fill all fields"))
		return
	}

	session, err := h.login(r.Context(), entities.Credentials{
		Username: username,
		Password: password,
	})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingRequiredFields):
			h.write(w, http.StatusUnprocessableEntity, dto.Fail("please, fill all fields"))
		case errors.Is(err, account.ErrUserNotFound),
			errors.Is(err, account.ErrNotRider):
			h.write(w, http.StatusNotFound, dto.Fail(badCredentials))
		case errors.Is(err, account.ErrWrongPassword):
			h.write(w, http.StatusUnauthorized, dto.Fail(badCredentials))
		case errors.Is(err, account.ErrAccountDeactivated):
			h.write(w, http.StatusUnauthorized, dto.Fail("You have been deactivated"))
		case errors.Is(err, account.ErrAccountPending):
			h.write(w, http.StatusUnauthorized, dto.Fail("Your registration is pending"))
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("login")
			h.write(w, http.StatusInternalServerError, dto.Fail("internal server error"))
		}
		return
	}

	h.write(w, http.StatusOK, dto.LoginResponse{
		Token:   session.Token,
		Details: dto.FromUser(session.User, h.withRole),
	})
}

func (h *Handler) write(w http.ResponseWriter, status int, body any) {
	err := respond.JSON(w, status, body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
