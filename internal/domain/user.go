package domain

import "time"

// User is owned by the credential store: this service only reads the
// display fields and creates new accounts through the store.
type User struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile holds the loyalty miles for exactly one user. Miles are
// accrued by an out-of-scope process on completed flights.
type Profile struct {
	ID     int64
	UserID int64
	Miles  int64
}
