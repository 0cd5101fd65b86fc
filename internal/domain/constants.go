package domain

import "time"

// Booking rules
const (
	OpeningHour        = 8  // earliest start hour
	ClosingHour        = 18 // latest end, 18:00 inclusive
	MaxBookingDuration = 4 * time.Hour
	MaxAdvanceDays     = 30
	MinPurposeLength   = 10
)

// DateFormat YYYY-MM-DD
const DateFormat = "2006-01-02"

// DefaultSubmissionsLimit how many journal entries a user listing returns by default
const DefaultSubmissionsLimit = 20

// MaxSubmissionsLimit upper bound for the listing limit
const MaxSubmissionsLimit = 100
