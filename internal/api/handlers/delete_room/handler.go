package delete_room

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
	msgOnlyOwnerDeletes = "удалить комнату может только владелец"
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

// Handle DELETE /api/rooms/{id}?memberId={memberId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["id"]

	memberID := r.URL.Query().Get("memberId")
	if memberID == "" {
		h.logger.Warn("DELETE /rooms/{id} - Missing memberId, room=%s", roomID)
		handlers.RespondBadRequest(w, msgMemberIDRequired)
		return
	}

	if err := h.service.Remove(r.Context(), roomID, memberID); err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("DELETE /rooms/{id} - Room not found: id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("DELETE /rooms/{id} - Not an owner: room=%s, member=%s", roomID, memberID)
			handlers.RespondForbidden(w, msgOnlyOwnerDeletes)

		default:
			h.logger.Error("DELETE /rooms/{id} - Failed: room=%s, member=%s, error=%v", roomID, memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rooms/{id} - Room deleted: id=%s, member=%s", roomID, memberID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
