package user_post

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/service/account"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "user_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var userCreateDTO dto.UserCreate
	err := json.NewDecoder(r.Body).Decode(&userCreateDTO)
	if err != nil {
		h.write(w, http.StatusBadRequest, dto.Fail("data format not JSON"))
		return
	}

	registration := entities.Registration{
		Name:     userCreateDTO.Name,
		Email:    userCreateDTO.Email,
		PhoneNo:  userCreateDTO.PhoneNo,
		Password: userCreateDTO.Password,
		Role:     entities.UserCustomer,
	}

	_, err = h.service.Register(r.Context(), registration)
	if err != nil {
		status, message := RegistrationError(err)
		if status == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
			).Error("register customer")
		}
		h.write(w, status, dto.Fail(message))
		return
	}

	h.write(w, http.StatusCreated, dto.OK("registration successful"))
}

// RegistrationError общий маппинг ошибок регистрации, используется и для райдеров.
func RegistrationError(err error) (int, string) {
	var conflict *account.ConflictError
	switch {
	case errors.Is(err, account.ErrMissingRequiredFields):
		return http.StatusUnprocessableEntity, "please, fill all fields"
	case errors.Is(err, account.ErrInvalidCategory):
		return http.StatusUnprocessableEntity, "Invalid category"
	case errors.Is(err, account.ErrFieldTooLong):
		return http.StatusUnprocessableEntity, "invalid data"
	case errors.As(err, &conflict):
		switch {
		case errors.Is(conflict, account.ErrEmailTaken):
			return http.StatusConflict, fmt.Sprintf("user with email: %s exists", conflict.Value)
		case errors.Is(conflict, account.ErrPhoneTaken):
			return http.StatusConflict, fmt.Sprintf("user with phone number: %s exists", conflict.Value)
		default:
			return http.StatusConflict, "number plate exists"
		}
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func (h *Handler) write(w http.ResponseWriter, status int, body dto.Response) {
	err := respond.JSON(w, status, body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
