package get_profile

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/campusrec/RoomBookingService/internal/api/handlers"
	"github.com/campusrec/RoomBookingService/internal/service/rooms"
)

const (
	msgInvalidInput     = "некорректные данные запроса"
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

// Handle GET /api/profile/{memberId}?lookaheadDays={n}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID := mux.Vars(r)["memberId"]

	lookaheadDays := h.defaultLookaheadDays
	if raw := r.URL.Query().Get("lookaheadDays"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /profile/{memberId} - Invalid lookaheadDays: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidLookahead)
			return
		}
		lookaheadDays = parsed
	}

	result, err := h.service.Profile(r.Context(), memberID, lookaheadDays)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("GET /profile/{memberId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /profile/{memberId} - Failed: member=%s, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /profile/{memberId} - Profile built: member=%s, owned=%d, joined=%d",
		memberID, len(result.Owned), len(result.Joined))
	handlers.RespondJSON(w, http.StatusOK, result)
}
