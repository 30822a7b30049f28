package get_available_times

import (
	"fmt"

	"github.com/campusrec/RoomBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !domain.IsKnownLocation(req.Location) {
		return ErrUnknownLocation
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 || req.DurationMinutes%domain.SlotMinutes != 0 {
		return fmt.Errorf("%w: duration must be a positive multiple of %d minutes", ErrInvalidDuration, domain.SlotMinutes)
	}
	if req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must not exceed %d minutes", ErrInvalidDuration, domain.MaxDurationMinutes)
	}

	return nil
}
