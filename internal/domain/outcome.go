package domain

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingGateway/pkg/types"
)

// OutcomeKind result of a booking submission
type OutcomeKind string

const (
	OutcomeCreated  OutcomeKind = "created"
	OutcomeConflict OutcomeKind = "conflict"
	OutcomeFailed   OutcomeKind = "failed"
)

// Outcome of Submit. Message carries the gateway text for Conflict and Failed.
type Outcome struct {
	Kind      OutcomeKind
	Message   string
	BookingID *int64 // set when the gateway returned the created booking
	AttemptID string // journal id of this attempt, empty when journaling is off
}

func (o Outcome) IsCreated() bool {
	return o.Kind == OutcomeCreated
}

func (o Outcome) IsConflict() bool {
	return o.Kind == OutcomeConflict
}

// AlternativeSuggestion a room offered instead of the conflicting one, for the requested window
type AlternativeSuggestion struct {
	Room      Room
	Date      string
	StartTime string
	EndTime   string
}

// Submission journal entry of one submit attempt
type Submission struct {
	ID          string
	UserID      int64
	RoomID      int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Purpose     string
	Outcome     OutcomeKind
	Message     *string
	CreatedAt   time.Time
}
