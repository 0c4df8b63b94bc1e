package domain

import "time"

// Flight is immutable reference data maintained by an administrative
// process outside this service.
type Flight struct {
	ID          int64
	Destination string
	Time        time.Time
	PriceCents  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
