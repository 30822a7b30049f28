package update_attendance

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/campusrec/RoomBookingService/internal/api/handlers"
	"github.com/campusrec/RoomBookingService/internal/service/rooms"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные запроса"
	msgRoomNotFound       = "комната не найдена"
	msgInvalidAccessCode  = "неверный код доступа"
	msgAlreadyAttending   = "участник уже записан в эту комнату"
	msgNotAttending       = "участник не записан в эту комнату"
)

type Handler struct {
	service RoomsService
	logger  Logger
}

func NewHandler(service RoomsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/rooms/{id}/attendees
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["id"]

	var req UpdateAttendanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/{id}/attendees - Invalid request body: room=%s, error=%v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetAttendance(r.Context(), roomID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{id}/attendees - Room not found: id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rooms.ErrInvalidAccessCode):
			h.logger.Warn("POST /rooms/{id}/attendees - Invalid access code: room=%s, member=%s", roomID, req.MemberID)
			handlers.RespondBadRequest(w, msgInvalidAccessCode)

		case errors.Is(err, rooms.ErrAlreadyAttending):
			h.logger.Warn("POST /rooms/{id}/attendees - Already attending: room=%s, member=%s", roomID, req.MemberID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyAttending)

		case errors.Is(err, rooms.ErrNotAttending):
			h.logger.Warn("POST /rooms/{id}/attendees - Not attending: room=%s, member=%s", roomID, req.MemberID)
			handlers.RespondError(w, http.StatusConflict, msgNotAttending)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /rooms/{id}/attendees - Invalid input: room=%s: %v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rooms/{id}/attendees - Failed: room=%s, member=%s, error=%v", roomID, req.MemberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/{id}/attendees - Attendance updated: room=%s, member=%s, action=%s",
		roomID, req.MemberID, req.Action)
	handlers.RespondJSON(w, http.StatusOK, &UpdateAttendanceResponse{Room: *result})
}
