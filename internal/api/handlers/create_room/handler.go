package create_room

import (
	"errors"
	"net/http"

	"github.com/campusrec/RoomBookingService/internal/api/handlers"
	createRoom "github.com/campusrec/RoomBookingService/internal/usecase/create_room"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateTime     = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput        = "некорректные данные комнаты"
	msgUnknownLocation     = "площадка не найдена в каталоге"
	msgLocationNotAllowed  = "площадка не подходит для выбранного типа активности"
	msgMisalignedStart     = "время начала должно попадать на 30-минутную сетку"
	msgInvalidDuration     = "длительность должна быть кратна 30 минутам и не превышать 60"
	msgSlotConflict        = "выбранный слот уже занят"
)

type Handler struct {
	useCase CreateRoomUseCase
	logger  Logger
}

func NewHandler(useCase CreateRoomUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /rooms - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createRoom.ErrSlotConflict):
			h.logger.Warn("POST /rooms - Slot conflict: member=%s, location=%s", req.MemberID, req.Location)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createRoom.ErrUnknownLocation):
			h.logger.Warn("POST /rooms - Unknown location: %s", req.Location)
			handlers.RespondNotFound(w, msgUnknownLocation)

		case errors.Is(err, createRoom.ErrLocationNotAllowed):
			h.logger.Warn("POST /rooms - Location not allowed: location=%s, activity=%s", req.Location, req.ActivityType)
			handlers.RespondBadRequest(w, msgLocationNotAllowed)

		case errors.Is(err, createRoom.ErrMisalignedStart):
			h.logger.Warn("POST /rooms - Misaligned start: member=%s, start=%s %s", req.MemberID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgMisalignedStart)

		case errors.Is(err, createRoom.ErrInvalidDuration):
			h.logger.Warn("POST /rooms - Invalid duration: member=%s, duration=%d", req.MemberID, req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createRoom.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Invalid input: member=%s: %v", req.MemberID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rooms - Failed to create room: member=%s, error=%v", req.MemberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created: id=%s, member=%s, location=%s",
		result.Reservation.ID, req.MemberID, result.Reservation.Location)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, req.MemberID))
}
