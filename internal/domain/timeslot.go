package domain

import (
	"time"

	"github.com/campusrec/RoomBookingService/pkg/types"
)

// Overlaps reports whether the half-open intervals [startA, startA+durA)
// and [startB, startB+durB) intersect. Touching endpoints do not count:
// a reservation ending at 11:00 does not conflict with one starting at 11:00.
// This is the single source of truth for conflict detection.
func Overlaps(startA time.Time, durationMinutesA int, startB time.Time, durationMinutesB int) bool {
	endA := startA.Add(time.Duration(durationMinutesA) * time.Minute)
	endB := startB.Add(time.Duration(durationMinutesB) * time.Minute)
	return startA.Before(endB) && startB.Before(endA)
}

// IsOnSlotGrid reports whether t falls exactly on a slot boundary:
// minute in {0, 30}, seconds and sub-second components zero.
func IsOnSlotGrid(t time.Time) bool {
	if t.Minute()%SlotMinutes != 0 {
		return false
	}
	return t.Second() == 0 && t.Nanosecond() == 0
}

// CeilToNextSlot rounds t up to the nearest slot boundary. Used when
// proposing default start times; caller-supplied misaligned starts are
// rejected, never corrected with this.
func CeilToNextSlot(t time.Time) time.Time {
	t = t.Truncate(time.Minute)
	add := (SlotMinutes - t.Minute()%SlotMinutes) % SlotMinutes
	if add != 0 {
		t = t.Add(time.Duration(add) * time.Minute)
	}
	return t
}

// EnumerateSlotsForDay returns every slot boundary of the given day as
// "HH:MM" strings, from 00:00 up to but not including the next day.
// 48 entries at the default 30-minute granularity.
func EnumerateSlotsForDay(date time.Time) []types.TimeString {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	out := make([]types.TimeString, 0, SlotsPerDay)
	for i := 0; i < SlotsPerDay; i++ {
		out = append(out, types.NewTimeString(start.Add(time.Duration(i*SlotMinutes)*time.Minute)))
	}
	return out
}

// IsAvailable reports whether the proposed (location, start, duration)
// window is free of conflicts in the given snapshot. Location matching is
// case-insensitive; a location with no reservations is trivially available.
//
// Pure function of the snapshot: no I/O, no locks. Safe to call
// speculatively against a client-held copy before committing; the store
// re-checks against its authoritative state at commit time.
func IsAvailable(location string, start time.Time, durationMinutes int, snapshot []*Reservation) bool {
	key := NormalizeLocation(location)
	for _, r := range snapshot {
		if r.LocationKey() != key {
			continue
		}
		if Overlaps(r.Start, r.DurationMinutes, start, durationMinutes) {
			return false
		}
	}
	return true
}
