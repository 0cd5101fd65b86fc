package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-RoomBookingGateway/pkg/types"
)

// BookingDraft is a reservation being composed in the form, not yet persisted.
// Every field may be empty; values are kept as typed by the user and parsed during validation.
type BookingDraft struct {
	RoomID      string
	BookingDate string // YYYY-MM-DD
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	Purpose     string
}

// TrimmedPurpose returns the purpose without surrounding whitespace
func (d *BookingDraft) TrimmedPurpose() string {
	return strings.TrimSpace(d.Purpose)
}

// RoomNumber coerces the room reference to its canonical integer identifier
func (d *BookingDraft) RoomNumber() (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(d.RoomID), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Key identifies the draft's reservation window for a given requester
func (d *BookingDraft) Key(userID int64) string {
	return fmt.Sprintf("%d|%s|%s|%s|%s",
		userID,
		strings.TrimSpace(d.RoomID),
		strings.TrimSpace(d.BookingDate),
		strings.TrimSpace(d.StartTime),
		strings.TrimSpace(d.EndTime),
	)
}

// BookingWindow is the parsed date and clock range of a draft
type BookingWindow struct {
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Duration returns end - start
func (w BookingWindow) Duration() time.Duration {
	return w.EndTime.Sub(w.StartTime)
}

// Requester is the identity on whose behalf a booking is submitted
type Requester struct {
	UserID int64
}

// IsAnonymous returns true if no identity was supplied
func (r Requester) IsAnonymous() bool {
	return r.UserID <= 0
}
