package order_put

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/service/order"
	"dispatch/pkg/logger"

	"github.com/gorilla/mux"
)

type transitionFunc func(ctx context.Context, orderID int64, rider entities.User) (*entities.Order, error)

// Handler переводит заказ {id} в следующий статус от имени райдера.
type Handler struct {
	log        handlerLogger
	transition transitionFunc
	message    string
}

func NewAccept(log handlerLogger, service Service) *Handler {
	return newHandler(log, "order_accept_put", service.Accept, "order confirmed successfully")
}

func NewPickedUp(log handlerLogger, service Service) *Handler {
	return newHandler(log, "order_picked_put", service.MarkPickedUp, "order picked")
}

func NewCompleted(log handlerLogger, service Service) *Handler {
	return newHandler(log, "order_completed_put", service.Complete, "order completed")
}

func newHandler(log handlerLogger, name string, transition transitionFunc, message string) *Handler {
	return &Handler{
		log:        log.With(logger.NewField("handler", name)),
		transition: transition,
		message:    message,
	}
}

func (h *Handler) ServeAuthenticated(w http.ResponseWriter, r *http.Request, session entities.Session) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || orderID <= 0 {
		h.write(w, http.StatusNotFound, dto.Fail("order does not exist"))
		return
	}

	updated, err := h.transition(r.Context(), orderID, session.User)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			h.write(w, http.StatusNotFound, dto.Fail("order does not exist"))
		case errors.Is(err, order.ErrInvalidTransition):
			h.write(w, http.StatusConflict, dto.Fail("order status cannot be changed"))
		case errors.Is(err, order.ErrForbidden):
			h.write(w, http.StatusForbidden, dto.Fail("forbidden"))
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order_id", orderID),
				logger.NewField("user_id", session.User.ID),
			).Error("order transition")
			h.write(w, http.StatusInternalServerError, dto.Fail("internal server error"))
		}
		return
	}

	h.write(w, http.StatusOK, dto.OrderResponse{
		Message: h.message,
		Order:   dto.FromOrder(*updated),
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
