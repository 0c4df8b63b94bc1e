package mapper

import "github.com/avelov/flightdesk/internal/domain"

// Booking is the compact booking shape used in collections: the flight
// field carries the destination text, never the flight id or record.
type Booking struct {
	ID     int64  `json:"id"`
	Date   string `json:"date"`
	Flight string `json:"flight"`
}

// NewBooking maps a booking record, substituting the linked flight's
// destination for its identifier.
func NewBooking(b domain.Booking, destination string) Booking {
	return Booking{
		ID:     b.ID,
		Date:   b.Date.Format(DateLayout),
		Flight: destination,
	}
}

// BookingDetail is the expanded booking shape with the full embedded
// flight representation and the derived total cost.
type BookingDetail struct {
	ID         int64   `json:"id"`
	Date       string  `json:"date"`
	Passengers int     `json:"passengers"`
	Flight     Flight  `json:"flight"`
	Total      float64 `json:"total"`
}

// NewBookingDetail maps a booking together with its resolved flight.
// The caller must have resolved the flight; an unresolvable flight is a
// data-integrity fault and must fail upstream rather than default here.
func NewBookingDetail(b domain.Booking, f domain.Flight) BookingDetail {
	return BookingDetail{
		ID:         b.ID,
		Date:       b.Date.Format(DateLayout),
		Passengers: b.Passengers,
		Flight:     NewFlight(f),
		Total:      Total(f.PriceCents, b.Passengers),
	}
}

// Total computes flight price times passenger count. Integer cent math,
// divided down only at the edge, so the product is exact.
func Total(priceCents int64, passengers int) float64 {
	return centsToPrice(priceCents * int64(passengers))
}
