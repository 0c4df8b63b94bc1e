package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/avelov/flightdesk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTier_Boundaries(t *testing.T) {
	cases := []struct {
		miles int64
		want  string
	}{
		{0, TierBlue},
		{9999, TierBlue},
		{10000, TierSilver},
		{59999, TierSilver},
		{60000, TierGold},
		{99999, TierGold},
		{100000, TierPlatinum},
		{250000, TierPlatinum},
		{-5, TierBlue},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Tier(tc.miles), "miles=%d", tc.miles)
	}
}

func TestTier_Total(t *testing.T) {
	known := map[string]bool{TierBlue: true, TierSilver: true, TierGold: true, TierPlatinum: true}
	for _, miles := range []int64{0, 1, 9999, 10000, 55000, 60000, 99999, 100000, 1 << 40} {
		assert.True(t, known[Tier(miles)], "miles=%d", miles)
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 750.00, Total(25000, 3))
	assert.Equal(t, 0.0, Total(25000, 0))
	assert.Equal(t, 99.99, Total(9999, 1))
}

func TestNewFlight_Lossless(t *testing.T) {
	departure := time.Date(2025, 7, 4, 9, 30, 0, 0, time.UTC)
	f := domain.Flight{
		ID:          42,
		Destination: "Lisbon",
		Time:        departure,
		PriceCents:  12550,
	}

	repr := NewFlight(f)

	assert.Equal(t, int64(42), repr.ID)
	assert.Equal(t, "Lisbon", repr.Destination)
	assert.Equal(t, departure, repr.Time)
	assert.Equal(t, 125.50, repr.Price)
}

func TestNewBooking_SubstitutesDestination(t *testing.T) {
	b := domain.Booking{
		ID:       7,
		FlightID: 42,
		Date:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	repr := NewBooking(b, "Lisbon")

	assert.Equal(t, int64(7), repr.ID)
	assert.Equal(t, "2025-03-01", repr.Date)
	assert.Equal(t, "Lisbon", repr.Flight)
}

func TestNewBookingDetail(t *testing.T) {
	b := domain.Booking{
		ID:         7,
		FlightID:   42,
		Date:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Passengers: 3,
	}
	f := domain.Flight{
		ID:          42,
		Destination: "Lisbon",
		Time:        time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
		PriceCents:  25000,
	}

	detail := NewBookingDetail(b, f)

	assert.Equal(t, int64(7), detail.ID)
	assert.Equal(t, "2025-03-01", detail.Date)
	assert.Equal(t, 3, detail.Passengers)
	assert.Equal(t, NewFlight(f), detail.Flight)
	assert.Equal(t, 750.00, detail.Total)
}

func TestNewUserInfo_ProjectsDisplayFieldsOnly(t *testing.T) {
	u := domain.User{
		ID:           11,
		Username:     "alice",
		FirstName:    "A",
		LastName:     "L",
		PasswordHash: "$2a$10$secret",
	}

	data, err := json.Marshal(NewUserInfo(u))
	assert.NoError(t, err)

	var fields map[string]any
	assert.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, map[string]any{"first_name": "A", "last_name": "L"}, fields)
}

func TestNewProfile(t *testing.T) {
	p := domain.Profile{ID: 3, UserID: 11, Miles: 61000}
	u := domain.User{ID: 11, Username: "alice", FirstName: "A", LastName: "L"}
	past := []Booking{{ID: 7, Date: "2025-03-01", Flight: "Lisbon"}}

	repr := NewProfile(p, u, past)

	assert.Equal(t, UserInfo{FirstName: "A", LastName: "L"}, repr.User)
	assert.Equal(t, int64(61000), repr.Miles)
	assert.Equal(t, TierGold, repr.Tier)
	assert.Equal(t, past, repr.PastBookings)
}

func TestNewProfile_EmptyPastBookings(t *testing.T) {
	repr := NewProfile(domain.Profile{Miles: 500}, domain.User{}, nil)

	assert.NotNil(t, repr.PastBookings)
	assert.Len(t, repr.PastBookings, 0)

	// The collection must serialize as [], not null.
	data, err := json.Marshal(repr)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"past_bookings":[]`)
}
