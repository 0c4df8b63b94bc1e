// Package mapper converts stored records into the representations the
// API returns. Every function here is a pure transformation: derived
// fields (total, tier, resolved destination) are recomputed on each
// call and never stored.
package mapper

import (
	"time"

	"github.com/avelov/flightdesk/internal/domain"
)

// DateLayout renders booking calendar dates.
const DateLayout = "2006-01-02"

// Flight is the external shape of a flight record.
type Flight struct {
	ID          int64     `json:"id"`
	Destination string    `json:"destination"`
	Time        time.Time `json:"time"`
	Price       float64   `json:"price"`
}

// NewFlight maps a flight record. Read path only, no validation.
func NewFlight(f domain.Flight) Flight {
	return Flight{
		ID:          f.ID,
		Destination: f.Destination,
		Time:        f.Time,
		Price:       centsToPrice(f.PriceCents),
	}
}

// NewFlights maps a collection, preserving order.
func NewFlights(flights []domain.Flight) []Flight {
	out := make([]Flight, 0, len(flights))
	for _, f := range flights {
		out = append(out, NewFlight(f))
	}
	return out
}

func centsToPrice(cents int64) float64 {
	return float64(cents) / 100
}
