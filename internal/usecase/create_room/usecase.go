package create_room

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campusrec/RoomBookingService/internal/domain"
)

// UseCase use case для создания брони комнаты
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания брони.
// Проверка доступности и вставка идут в одной сериализуемой транзакции
// с блокировкой строк локации, чтобы между check и insert никто не вклинился.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRoom: actor=%s, location=%s, start=%s, duration=%d, privacy=%s",
		req.ActorID, req.Location, req.Start.Format(domain.DateTimeFormat), req.DurationMinutes, req.Privacy)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRoom: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем поля
	location, _ := domain.CanonicalLocation(req.Location)

	capacity := req.Capacity
	if capacity == 0 {
		capacity = domain.DefaultCapacity(req.ActivityType)
		uc.logger.Info("CreateRoom: using default capacity %d for type %s", capacity, req.ActivityType)
	}

	accessCode, err := resolveAccessCode(req)
	if err != nil {
		uc.logger.Error("CreateRoom: %v", err)
		return nil, err
	}

	reservation := &domain.Reservation{
		ID:              uuid.NewString(),
		Name:            req.Name,
		OwnerID:         req.ActorID,
		Participants:    []string{req.ActorID},
		Location:        location,
		Start:           req.Start,
		DurationMinutes: req.DurationMinutes,
		Privacy:         req.Privacy,
		AccessCode:      accessCode,
		Capacity:        capacity,
		ActivityType:    req.ActivityType,
	}

	// 3. Check-then-insert атомарно относительно других писателей
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.reservationRepo.ListByLocation(txCtx, location, req.Start, reservation.End())
		if err != nil {
			uc.logger.Error("CreateRoom: failed to list reservations for %s: %v", location, err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		// Проверяем доступность против актуального состояния, а не
		// против снапшота, который вызывающий читал ранее
		if !domain.IsAvailable(location, req.Start, req.DurationMinutes, existing) {
			uc.logger.Warn("CreateRoom: slot conflict at %s for %s",
				location, req.Start.Format(domain.DateTimeFormat))
			return ErrSlotConflict
		}

		if _, err := uc.reservationRepo.Create(txCtx, reservation); err != nil {
			uc.logger.Error("CreateRoom: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateRoom: successfully created reservation id=%s at %s", reservation.ID, location)

	return &Response{
		Reservation: reservation,
		OpenSeats:   domain.OpenSeats(reservation),
	}, nil
}
