package private_access

import (
	"errors"
	"net/http"

	"github.com/campusrec/RoomBookingService/internal/api/handlers"
	"github.com/campusrec/RoomBookingService/internal/service/rooms"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные запроса"
	msgInvalidAccessCode  = "неверный код доступа"
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

// Handle POST /api/rooms/private-access
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PrivateAccessRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/private-access - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.LookupPrivateByCode(r.Context(), req.MemberID, req.AccessCode)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidAccessCode):
			h.logger.Warn("POST /rooms/private-access - Invalid access code: member=%s", req.MemberID)
			handlers.RespondNotFound(w, msgInvalidAccessCode)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /rooms/private-access - Invalid input: member=%s: %v", req.MemberID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rooms/private-access - Failed: member=%s, error=%v", req.MemberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/private-access - Room unlocked: id=%s, member=%s", result.ID, req.MemberID)
	handlers.RespondJSON(w, http.StatusOK, &PrivateAccessResponse{Room: *result})
}
