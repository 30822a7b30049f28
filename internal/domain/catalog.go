package domain

import "strings"

// Fixed catalog of bookable locations per activity type. The "general"
// type may book any location.
var typeLocations = map[ActivityType][]string{
	ActivitySoccer:     {"Soccer Field A", "Soccer Field B", "Soccer Field C"},
	ActivityFootball:   {"North Field", "South Field"},
	ActivityBasketball: {"Gym Court 1", "Gym Court 2"},
}

// Default capacity per activity type, used when a reservation does not
// declare its own capacity.
var typeCapacity = map[ActivityType]int{
	ActivitySoccer:     16,
	ActivityFootball:   22,
	ActivityBasketball: 10,
	ActivityGeneral:    12,
}

var allLocations = func() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, t := range []ActivityType{ActivitySoccer, ActivityFootball, ActivityBasketball} {
		for _, loc := range typeLocations[t] {
			key := NormalizeLocation(loc)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, loc)
		}
	}
	return out
}()

// NormalizeLocation returns the case-insensitive comparison key for a location
func NormalizeLocation(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}

// LocationsForType returns a copy of the locations bookable for the given type
func LocationsForType(t ActivityType) []string {
	if t == ActivityGeneral || !ValidActivityType(t) {
		return append([]string(nil), allLocations...)
	}
	return append([]string(nil), typeLocations[t]...)
}

// AllLocations returns the full location catalog
func AllLocations() []string {
	return append([]string(nil), allLocations...)
}

// IsKnownLocation reports whether location is in the catalog (case-insensitive)
func IsKnownLocation(location string) bool {
	key := NormalizeLocation(location)
	for _, loc := range allLocations {
		if NormalizeLocation(loc) == key {
			return true
		}
	}
	return false
}

// IsValidLocationForType reports whether location may be booked for the
// given activity type (case-insensitive)
func IsValidLocationForType(location string, t ActivityType) bool {
	key := NormalizeLocation(location)
	for _, loc := range LocationsForType(t) {
		if NormalizeLocation(loc) == key {
			return true
		}
	}
	return false
}

// CanonicalLocation returns the catalog spelling for a location, so stored
// records keep a single casing regardless of caller input
func CanonicalLocation(location string) (string, bool) {
	key := NormalizeLocation(location)
	for _, loc := range allLocations {
		if NormalizeLocation(loc) == key {
			return loc, true
		}
	}
	return "", false
}

// DefaultCapacity returns the capacity assumed for reservations of the
// given type when none is declared
func DefaultCapacity(t ActivityType) int {
	if c, ok := typeCapacity[t]; ok {
		return c
	}
	return typeCapacity[ActivityGeneral]
}
