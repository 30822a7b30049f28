package domain

import (
	"strings"
	"time"
)

// Privacy represents the visibility of a reservation
type Privacy string

const (
	PrivacyPublic  Privacy = "public"
	PrivacyPrivate Privacy = "private"
)

// ActivityType constrains valid locations and the default capacity
type ActivityType string

const (
	ActivitySoccer     ActivityType = "soccer"
	ActivityFootball   ActivityType = "football"
	ActivityBasketball ActivityType = "basketball"
	ActivityGeneral    ActivityType = "general"
)

// Reservation represents a booked time window at a location.
//
// ID, OwnerID and AccessCode are immutable after creation. Participants is
// the only field mutated during the reservation's lifetime; the owner stays
// the owner-of-record even after leaving the participant list.
type Reservation struct {
	ID              string
	Name            string
	OwnerID         string
	Participants    []string
	Location        string
	Start           time.Time
	DurationMinutes int
	Privacy         Privacy
	AccessCode      string // set only for private reservations
	Capacity        int
	ActivityType    ActivityType

	CreatedAt time.Time
	UpdatedAt time.Time
}

// End returns the exclusive end of the reserved window
func (r *Reservation) End() time.Time {
	return r.Start.Add(time.Duration(r.DurationMinutes) * time.Minute)
}

// IsPrivate returns true if joining requires the access code
func (r *Reservation) IsPrivate() bool {
	return r.Privacy == PrivacyPrivate
}

// IsOwner returns true if memberID created the reservation
func (r *Reservation) IsOwner(memberID string) bool {
	return r.OwnerID == memberID
}

// HasParticipant returns true if memberID is currently in the participant set
func (r *Reservation) HasParticipant(memberID string) bool {
	for _, p := range r.Participants {
		if p == memberID {
			return true
		}
	}
	return false
}

// LocationKey returns the case-insensitive grouping key for the location
func (r *Reservation) LocationKey() string {
	return NormalizeLocation(r.Location)
}

// MatchesAccessCode compares codes case-insensitively; both sides are
// normalized to uppercase, matching how codes are generated
func (r *Reservation) MatchesAccessCode(code string) bool {
	if r.AccessCode == "" {
		return false
	}
	return strings.ToUpper(strings.TrimSpace(code)) == strings.ToUpper(r.AccessCode)
}

// ValidPrivacy reports whether p is a known privacy value
func ValidPrivacy(p Privacy) bool {
	return p == PrivacyPublic || p == PrivacyPrivate
}

// ValidActivityType reports whether t is a known activity type
func ValidActivityType(t ActivityType) bool {
	switch t {
	case ActivitySoccer, ActivityFootball, ActivityBasketball, ActivityGeneral:
		return true
	default:
		return false
	}
}
