package mapper

import "github.com/avelov/flightdesk/internal/domain"

// Loyalty tiers, lowest to highest.
const (
	TierBlue     = "Blue"
	TierSilver   = "Silver"
	TierGold     = "Gold"
	TierPlatinum = "Platinum"
)

// UserInfo projects a user down to display-name fields. Username,
// identifier and credential fields are deliberately excluded: this
// shape is embedded in contexts where account identifiers must not
// leak.
type UserInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// NewUserInfo maps a user record to its display projection.
func NewUserInfo(u domain.User) UserInfo {
	return UserInfo{
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Profile is the composite loyalty representation.
type Profile struct {
	User         UserInfo  `json:"user"`
	Miles        int64     `json:"miles"`
	Tier         string    `json:"tier"`
	PastBookings []Booking `json:"past_bookings"`
}

// NewProfile assembles the profile representation from its parts. The
// past bookings must already be filtered to dates before today; this
// function only embeds them.
func NewProfile(p domain.Profile, u domain.User, past []Booking) Profile {
	if past == nil {
		past = []Booking{}
	}
	return Profile{
		User:         NewUserInfo(u),
		Miles:        p.Miles,
		Tier:         Tier(p.Miles),
		PastBookings: past,
	}
}

// Tier classifies accumulated miles. Ranges are half-open and
// contiguous, so the exact boundary values 10000, 60000 and 100000
// land in the higher tier; anything that falls through (negative
// miles from a corrupt record) classifies as Blue.
func Tier(miles int64) string {
	switch {
	case miles >= 0 && miles < 10000:
		return TierBlue
	case miles >= 10000 && miles < 60000:
		return TierSilver
	case miles >= 60000 && miles < 100000:
		return TierGold
	case miles >= 100000:
		return TierPlatinum
	default:
		return TierBlue
	}
}
