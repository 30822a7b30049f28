package domain

// EffectiveCapacity returns the reservation's declared capacity when set
// and positive, else the default for its activity type.
func EffectiveCapacity(r *Reservation) int {
	if r.Capacity > 0 {
		return r.Capacity
	}
	return DefaultCapacity(r.ActivityType)
}

// OpenSeats returns the remaining seats, floored at zero. A participant
// count above capacity is the waitlist state and still reports zero.
func OpenSeats(r *Reservation) int {
	open := EffectiveCapacity(r) - len(r.Participants)
	if open < 0 {
		return 0
	}
	return open
}

// IsNearlyFull reports whether the share of open seats is at or below the
// threshold. Capacity zero is never nearly full.
func IsNearlyFull(r *Reservation, threshold float64) bool {
	capacity := EffectiveCapacity(r)
	if capacity <= 0 {
		return false
	}
	return float64(OpenSeats(r))/float64(capacity) <= threshold
}

// LocationLoad aggregates occupancy across all reservations at one
// location, regardless of their time windows.
type LocationLoad struct {
	Location         string
	ReservationCount int
	TotalCapacity    int
	TotalOpenSeats   int
}

// SummarizeLocationLoad groups reservations by case-insensitive location
// key and sums capacity and open seats per group. The Location field keeps
// the spelling of the first reservation seen for the group.
func SummarizeLocationLoad(reservations []*Reservation) map[string]LocationLoad {
	summary := make(map[string]LocationLoad)
	for _, r := range reservations {
		key := r.LocationKey()
		entry, ok := summary[key]
		if !ok {
			entry = LocationLoad{Location: r.Location}
		}
		entry.ReservationCount++
		entry.TotalCapacity += EffectiveCapacity(r)
		entry.TotalOpenSeats += OpenSeats(r)
		summary[key] = entry
	}
	return summary
}
