package get_rooms

import (
	"net/http"
	"strconv"

	"github.com/campusrec/RoomBookingService/internal/api/handlers"
)

const (
	msgMemberIDRequired = "не указан идентификатор участника"
	msgInvalidLookahead = "некорректный горизонт поиска"
)

type Handler struct {
	service RoomsService
	// Горизонт поиска по умолчанию, когда запрос его не указывает
	defaultLookaheadDays int
	logger               Logger
}

func NewHandler(service RoomsService, defaultLookaheadDays int, logger Logger) *Handler {
	return &Handler{
		service:              service,
		defaultLookaheadDays: defaultLookaheadDays,
		logger:               logger,
	}
}

// Handle GET /api/rooms?memberId={id}&lookaheadDays={n}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID := r.URL.Query().Get("memberId")
	if memberID == "" {
		h.logger.Warn("GET /rooms - Missing memberId")
		handlers.RespondBadRequest(w, msgMemberIDRequired)
		return
	}

	lookaheadDays := h.defaultLookaheadDays
	if raw := r.URL.Query().Get("lookaheadDays"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /rooms - Invalid lookaheadDays: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidLookahead)
			return
		}
		lookaheadDays = parsed
	}

	result, err := h.service.ListRooms(r.Context(), memberID, lookaheadDays)
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: member=%s, error=%v", memberID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - Returned %d rooms for member=%s", len(result.Rooms), memberID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
