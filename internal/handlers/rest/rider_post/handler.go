package rider_post

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/handlers/rest/user_post"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "rider_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var riderCreateDTO dto.RiderCreate
	err := json.NewDecoder(r.Body).Decode(&riderCreateDTO)
	if err != nil {
		h.write(w, http.StatusBadRequest, dto.Fail("data format not JSON"))
		return
	}

	registration := entities.Registration{
		Name:         riderCreateDTO.Name,
		Email:        riderCreateDTO.Email,
		PhoneNo:      riderCreateDTO.PhoneNo,
		Password:     riderCreateDTO.Password,
		Role:         entities.UserRider,
		NumberPlate:  riderCreateDTO.NumberPlate,
		RideCategory: int(riderCreateDTO.Category),
	}

	_, err = h.service.Register(r.Context(), registration)
	if err != nil {
		status, message := user_post.RegistrationError(err)
		if status == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
			).Error("register rider")
		}
		h.write(w, status, dto.Fail(message))
		return
	}

	h.write(w, http.StatusCreated, dto.OK("registration successful"))
}

func (h *Handler) write(w http.ResponseWriter, status int, body dto.Response) {
	err := respond.JSON(w, status, body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
