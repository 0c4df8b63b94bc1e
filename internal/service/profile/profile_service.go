package profile

import (
	"context"
	"time"

	"github.com/avelov/flightdesk/internal/mapper"
	"github.com/avelov/flightdesk/internal/repository"
)

type ProfileUseCase interface {
	Get(ctx context.Context, id int64) (mapper.Profile, error)
}

type ProfileService struct {
	profiles repository.ProfileRepository
	users    repository.UserRepository
	bookings repository.BookingRepository
	now      func() time.Time
}

type ProfileServiceOption func(*ProfileService)

// WithClock overrides the mapping-time clock. Tests pin it so the
// strict date < today boundary is exact.
func WithClock(now func() time.Time) ProfileServiceOption {
	return func(s *ProfileService) {
		s.now = now
	}
}

func NewProfileService(
	profiles repository.ProfileRepository,
	users repository.UserRepository,
	bookings repository.BookingRepository,
	opts ...ProfileServiceOption,
) *ProfileService {
	service := &ProfileService{
		profiles: profiles,
		users:    users,
		bookings: bookings,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Get assembles the loyalty representation: user-info projection, tier
// from miles, and the basic representations of bookings dated strictly
// before today (most recent first).
func (s *ProfileService) Get(ctx context.Context, id int64) (mapper.Profile, error) {
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return mapper.Profile{}, err
	}

	user, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		return mapper.Profile{}, err
	}

	today := truncateToDay(s.now())
	past, err := s.bookings.ListPastByUser(ctx, p.UserID, today)
	if err != nil {
		return mapper.Profile{}, err
	}

	pastReprs := make([]mapper.Booking, 0, len(past))
	for _, b := range past {
		pastReprs = append(pastReprs, mapper.NewBooking(b.Booking, b.Destination))
	}

	return mapper.NewProfile(*p, *user, pastReprs), nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var _ ProfileUseCase = (*ProfileService)(nil)
