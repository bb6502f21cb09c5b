package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/service/order"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "order_post")),
		service: service,
	}
}

func (h *Handler) ServeAuthenticated(w http.ResponseWriter, r *http.Request, session entities.Session) {
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		h.write(w, http.StatusBadRequest, dto.Fail("data format not JSON"))
		return
	}

	date, err := order.ParseDate(orderCreateDTO.Time)
	if err != nil {
		h.write(w, http.StatusUnprocessableEntity, dto.Fail("invalid data"))
		return
	}

	created, err := h.service.Create(r.Context(), session.User, dto.ToOrderModify(orderCreateDTO, date))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			h.write(w, http.StatusUnprocessableEntity, dto.Fail("please, fill all fields"))
		case errors.Is(err, order.ErrFieldTooLong):
			h.write(w, http.StatusUnprocessableEntity, dto.Fail("invalid data"))
		case errors.Is(err, order.ErrForbidden):
			h.write(w, http.StatusForbidden, dto.Fail("forbidden"))
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("customer_id", session.User.ID),
			).Error("create order")
			h.write(w, http.StatusInternalServerError, dto.Fail("internal server error"))
		}
		return
	}

	h.write(w, http.StatusOK, dto.OrderResponse{
		Message: "order placed successfully",
		Order:   dto.FromOrder(*created),
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
