package get_room

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/campusrec/RoomBookingService/internal/api/handlers"
	"github.com/campusrec/RoomBookingService/internal/service/rooms"
)

const (
	msgMemberIDRequired = "не указан идентификатор участника"
	msgRoomNotFound     = "комната не найдена"
	msgAccessDenied     = "нет доступа к этой комнате"
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

// Handle GET /api/rooms/{id}?memberId={memberId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["id"]

	memberID := r.URL.Query().Get("memberId")
	if memberID == "" {
		h.logger.Warn("GET /rooms/{id} - Missing memberId, room=%s", roomID)
		handlers.RespondBadRequest(w, msgMemberIDRequired)
		return
	}

	result, err := h.service.GetByID(r.Context(), roomID, memberID)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id} - Room not found: id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("GET /rooms/{id} - Access denied: room=%s, member=%s", roomID, memberID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /rooms/{id} - Failed to fetch room: id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id} - Room fetched: id=%s, member=%s", roomID, memberID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
