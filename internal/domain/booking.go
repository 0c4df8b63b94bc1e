package domain

import "time"

// Booking links exactly one flight to exactly one owning user.
// Date is a calendar date; only the date part is significant.
type Booking struct {
	ID         int64
	FlightID   int64
	UserID     int64
	Date       time.Time
	Passengers int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BookingPatch is a partial update: nil fields are left unchanged on
// the stored record.
type BookingPatch struct {
	Date       *time.Time
	Passengers *int
}

// IsZero reports whether the patch would change nothing.
func (p BookingPatch) IsZero() bool {
	return p.Date == nil && p.Passengers == nil
}

// PastBooking is a booking joined with the destination of its flight,
// as returned by the past-bookings query.
type PastBooking struct {
	Booking
	Destination string
}
