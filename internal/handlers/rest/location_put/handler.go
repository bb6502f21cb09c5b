package location_put

import (
	"encoding/json"
	"errors"
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
	return &Handler{
		log:     log.With(logger.NewField("handler", "location_put")),
		service: service,
	}
}

func (h *Handler) ServeAuthenticated(w http.ResponseWriter, r *http.Request, session entities.Session) {
	var locationDTO dto.LocationUpdate
	err := json.NewDecoder(r.Body).Decode(&locationDTO)
	if err != nil {
		h.write(w, http.StatusBadRequest, dto.Fail("data format not JSON"))
		return
	}

	location := entities.Location{
		Lat: locationDTO.Lat,
		Lng: locationDTO.Lng,
	}

	err = h.service.UpdateLocation(r.Context(), session.User.ID, location)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingRequiredFields):
			h.write(w, http.StatusUnprocessableEntity, dto.Fail("please, fill all fields"))
		case errors.Is(err, account.ErrInvalidLocation):
			h.write(w, http.StatusUnprocessableEntity, dto.Fail("invalid data"))
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("user_id", session.User.ID),
			).Error("update location")
			h.write(w, http.StatusInternalServerError, dto.Fail("internal server error"))
		}
		return
	}

	h.write(w, http.StatusOK, dto.OK("location updated successfully"))
}

func (h *Handler) write(w http.ResponseWriter, status int, body dto.Response) {
	err := respond.JSON(w, status, body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
