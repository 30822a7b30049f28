package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/campusrec/RoomBookingService/internal/api/handlers"
	getAvailableDates "github.com/campusrec/RoomBookingService/internal/usecase/get_available_dates"
)

const (
	msgLocationRequired = "не указана площадка"
	msgInvalidDuration  = "длительность должна быть кратна 30 минутам и не превышать 60"
	msgInvalidLookahead = "некорректный горизонт поиска"
	msgUnknownLocation  = "площадка не найдена в каталоге"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/availability/dates?location={loc}&durationMinutes={n}&lookaheadDays={d}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	location := query.Get("location")
	if location == "" {
		h.logger.Warn("GET /availability/dates - Missing location")
		handlers.RespondBadRequest(w, msgLocationRequired)
		return
	}

	durationMinutes, err := strconv.Atoi(query.Get("durationMinutes"))
	if err != nil {
		h.logger.Warn("GET /availability/dates - Invalid duration: %s", query.Get("durationMinutes"))
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	lookaheadDays := 0
	if raw := query.Get("lookaheadDays"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil || parsed < 0 {
			h.logger.Warn("GET /availability/dates - Invalid lookaheadDays: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidLookahead)
			return
		}
		lookaheadDays = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{
		Location:        location,
		DurationMinutes: durationMinutes,
		LookaheadDays:   lookaheadDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrUnknownLocation):
			h.logger.Warn("GET /availability/dates - Unknown location: %s", location)
			handlers.RespondNotFound(w, msgUnknownLocation)

		case errors.Is(err, getAvailableDates.ErrInvalidDuration),
			errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /availability/dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /availability/dates - Failed: location=%s, error=%v", location, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/dates - %d dates at %s", len(result.Dates), result.Location)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
