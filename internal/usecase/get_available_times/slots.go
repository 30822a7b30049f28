package get_available_times

import (
	"time"

	"github.com/campusrec/RoomBookingService/internal/domain"
	"github.com/campusrec/RoomBookingService/pkg/types"
)

// listBookableStarts фильтрует сетку слотов дня: остаются старты,
// которые (а) не в прошлом относительно now и (б) свободны от конфликтов
// в переданном снапшоте. Граничные случаи: слот, начинающийся ровно там,
// где заканчивается существующая бронь, считается свободным.
func listBookableStarts(
	location string,
	date time.Time,
	durationMinutes int,
	snapshot []*domain.Reservation,
	now time.Time,
) []types.TimeString {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	out := make([]types.TimeString, 0, domain.SlotsPerDay)
	for i := 0; i < domain.SlotsPerDay; i++ {
		slotStart := dayStart.Add(time.Duration(i*domain.SlotMinutes) * time.Minute)
		if slotStart.Before(now) {
			continue
		}
		if !domain.IsAvailable(location, slotStart, durationMinutes, snapshot) {
			continue
		}
		out = append(out, types.NewTimeString(slotStart))
	}
	return out
}
