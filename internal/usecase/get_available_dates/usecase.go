package get_available_dates

import (
	"context"
	"fmt"
	"time"

	"github.com/campusrec/RoomBookingService/internal/domain"
)

// UseCase use case для перечисления дат, на которые еще можно записаться
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

// Execute выполняет use case. Дата попадает в ответ, если в ней есть
// хотя бы один свободный старт нужной длительности. Сегодняшний день
// учитывает уже прошедшие слоты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: location=%s, duration=%d, lookahead=%d",
		req.Location, req.DurationMinutes, req.LookaheadDays)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	location, _ := domain.CanonicalLocation(req.Location)

	lookahead := req.LookaheadDays
	if lookahead <= 0 {
		lookahead = domain.DefaultLookaheadDays
	}

	now := uc.timeProvider.Now()
	windowStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	windowEnd := windowStart.AddDate(0, 0, lookahead)

	// 2. Одна выборка на весь горизонт вместо запроса на каждый день
	snapshot, err := uc.reservationRepo.ListByLocation(ctx, location, windowStart, windowEnd)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 3. Проверяем каждый день окна на наличие хотя бы одного свободного старта
	dates := make([]string, 0, lookahead)
	for day := 0; day < lookahead; day++ {
		date := windowStart.AddDate(0, 0, day)
		if hasBookableStart(location, date, req.DurationMinutes, snapshot, now) {
			dates = append(dates, date.Format(domain.DateFormat))
		}
	}

	uc.logger.Info("GetAvailableDates: %d bookable dates at %s", len(dates), location)

	return &Response{
		Location:        location,
		DurationMinutes: req.DurationMinutes,
		Dates:           dates,
	}, nil
}

// hasBookableStart проверяет, остался ли в дне хотя бы один свободный
// слот нужной длительности, не ушедший в прошлое
func hasBookableStart(
	location string,
	date time.Time,
	durationMinutes int,
	snapshot []*domain.Reservation,
	now time.Time,
) bool {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	for i := 0; i < domain.SlotsPerDay; i++ {
		slotStart := dayStart.Add(time.Duration(i*domain.SlotMinutes) * time.Minute)
		if slotStart.Before(now) {
			continue
		}
		if domain.IsAvailable(location, slotStart, durationMinutes, snapshot) {
			return true
		}
	}
	return false
}
