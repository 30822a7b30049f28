package domain

// Slot grid configuration
const (
	SlotMinutes        = 30
	MaxDurationMinutes = 60
	SlotsPerDay        = 24 * 60 / SlotMinutes
)

// Occupancy defaults
const (
	NearlyFullThreshold = 0.2
)

// Access code configuration
const (
	AccessCodeLength = 6
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // wire format for reservation start times
)

// Listing defaults
const (
	DefaultLookaheadDays = 7
)
