package get_available_times

import (
	"context"
	"fmt"
	"time"

	"github.com/campusrec/RoomBookingService/internal/domain"
)

// UseCase use case для перечисления свободных времен начала на день
type UseCase struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case перечисления свободных стартов.
// Чтение идет без блокировок: окончательная проверка конфликта
// все равно выполняется при создании брони.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: location=%s, date=%s, duration=%d",
		req.Location, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTimes: validation failed: %v", err)
		return nil, err
	}

	location, _ := domain.CanonicalLocation(req.Location)

	// 2. Берем брони, чьи интервалы задевают запрошенный день.
	// Выборка идет по пересечению интервалов, поэтому бронь,
	// начавшаяся накануне и заходящая в этот день, тоже попадет
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	snapshot, err := uc.reservationRepo.ListByLocation(ctx, location, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 3. Фильтруем сетку слотов дня
	now := uc.timeProvider.Now()
	times := listBookableStarts(location, req.Date, req.DurationMinutes, snapshot, now)

	uc.logger.Info("GetAvailableTimes: %d bookable starts at %s on %s",
		len(times), location, req.Date.Format(domain.DateFormat))

	return &Response{
		Location:        location,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Times:           times,
	}, nil
}
