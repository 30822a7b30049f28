package create_room

import (
	"fmt"
	"strings"

	"github.com/campusrec/RoomBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Проверка доступности слота сюда не входит, она выполняется
// в транзакции на момент коммита.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ActorID) == "" {
		return fmt.Errorf("%w: actorId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if !domain.ValidActivityType(req.ActivityType) {
		return fmt.Errorf("%w: unknown activity type %q", ErrInvalidInput, req.ActivityType)
	}

	if !domain.ValidPrivacy(req.Privacy) {
		return fmt.Errorf("%w: privacy must be public or private", ErrInvalidInput)
	}

	if !domain.IsKnownLocation(req.Location) {
		return ErrUnknownLocation
	}

	if !domain.IsValidLocationForType(req.Location, req.ActivityType) {
		return ErrLocationNotAllowed
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}

	if !domain.IsOnSlotGrid(req.Start) {
		return ErrMisalignedStart
	}

	if req.DurationMinutes <= 0 || req.DurationMinutes%domain.SlotMinutes != 0 {
		return fmt.Errorf("%w: duration must be a positive multiple of %d minutes", ErrInvalidDuration, domain.SlotMinutes)
	}
	if req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must not exceed %d minutes", ErrInvalidDuration, domain.MaxDurationMinutes)
	}

	if req.Capacity < 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}

	if req.Privacy != domain.PrivacyPrivate && strings.TrimSpace(req.AccessCode) != "" {
		return fmt.Errorf("%w: access code is only allowed for private rooms", ErrInvalidInput)
	}

	return nil
}
