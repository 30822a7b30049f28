package get_available_times

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/campusrec/RoomBookingService/internal/api/handlers"
	"github.com/campusrec/RoomBookingService/internal/domain"
	getAvailableTimes "github.com/campusrec/RoomBookingService/internal/usecase/get_available_times"
)

const (
	msgLocationRequired = "не указана площадка"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration  = "длительность должна быть кратна 30 минутам и не превышать 60"
	msgUnknownLocation  = "площадка не найдена в каталоге"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/availability/times?location={loc}&date={YYYY-MM-DD}&durationMinutes={n}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	location := query.Get("location")
	if location == "" {
		h.logger.Warn("GET /availability/times - Missing location")
		handlers.RespondBadRequest(w, msgLocationRequired)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, query.Get("date"), time.Local)
	if err != nil {
		h.logger.Warn("GET /availability/times - Invalid date: %s", query.Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	durationMinutes, err := strconv.Atoi(query.Get("durationMinutes"))
	if err != nil {
		h.logger.Warn("GET /availability/times - Invalid duration: %s", query.Get("durationMinutes"))
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableTimes.Request{
		Location:        location,
		Date:            date,
		DurationMinutes: durationMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimes.ErrUnknownLocation):
			h.logger.Warn("GET /availability/times - Unknown location: %s", location)
			handlers.RespondNotFound(w, msgUnknownLocation)

		case errors.Is(err, getAvailableTimes.ErrInvalidDuration),
			errors.Is(err, getAvailableTimes.ErrInvalidInput):
			h.logger.Warn("GET /availability/times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /availability/times - Failed: location=%s, error=%v", location, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/times - %d slots at %s on %s",
		len(result.Times), result.Location, result.Date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
