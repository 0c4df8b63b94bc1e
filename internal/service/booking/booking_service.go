package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/avelov/flightdesk/internal/domain"
	"github.com/avelov/flightdesk/internal/kafka"
	"github.com/avelov/flightdesk/internal/lib/sl"
	"github.com/avelov/flightdesk/internal/mapper"
	"github.com/avelov/flightdesk/internal/repository"
)

type BookingUseCase interface {
	Detail(ctx context.Context, id int64) (mapper.BookingDetail, error)
	// StaffUpdate accepts date and/or passenger-count; backdating is
	// allowed for administrative correction.
	StaffUpdate(ctx context.Context, id int64, input StaffUpdateInput) (UpdateResult, error)
	// SelfUpdate accepts passenger-count only; a booking's date is
	// never mutable by its owner after creation.
	SelfUpdate(ctx context.Context, id int64, input SelfUpdateInput) (UpdateResult, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// StaffUpdateInput is a partial update: nil fields leave the stored
// value unchanged.
type StaffUpdateInput struct {
	Date       *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Passengers *int    `json:"passengers" validate:"omitempty,gt=0"`
}

// SelfUpdateInput carries the only field a booking's owner may change.
type SelfUpdateInput struct {
	Passengers *int `json:"passengers" validate:"required,gt=0"`
}

// UpdateResult echoes the booking id and the fields the update accepted.
type UpdateResult struct {
	ID         int64   `json:"id"`
	Date       *string `json:"date,omitempty"`
	Passengers *int    `json:"passengers,omitempty"`
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	producer           Producer
	notificationsTopic string
	log                *slog.Logger
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, notificationsTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.notificationsTopic = notificationsTopic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	log *slog.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings: bookings,
		flights:  flights,
		log:      log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) Detail(ctx context.Context, id int64) (mapper.BookingDetail, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return mapper.BookingDetail{}, err
	}

	flight, err := s.flights.GetByID(ctx, booking.FlightID)
	if err != nil {
		// A booking pointing at a missing flight is corrupt data, not a
		// not-found: never default the price to zero.
		if errors.Is(err, domain.ErrNotFound) {
			return mapper.BookingDetail{}, fmt.Errorf("booking %d flight %d: %w", booking.ID, booking.FlightID, domain.ErrFlightIntegrity)
		}
		return mapper.BookingDetail{}, err
	}

	return mapper.NewBookingDetail(*booking, *flight), nil
}

func (s *BookingService) StaffUpdate(ctx context.Context, id int64, input StaffUpdateInput) (UpdateResult, error) {
	patch := domain.BookingPatch{Passengers: input.Passengers}
	if input.Date != nil {
		date, err := time.Parse(mapper.DateLayout, *input.Date)
		if err != nil {
			return UpdateResult{}, domain.NewFieldError("date", "must be a date in format 2006-01-02")
		}
		patch.Date = &date
	}
	return s.applyPatch(ctx, id, patch)
}

func (s *BookingService) SelfUpdate(ctx context.Context, id int64, input SelfUpdateInput) (UpdateResult, error) {
	if input.Passengers == nil {
		return UpdateResult{}, domain.NewFieldError("passengers", "is required")
	}
	return s.applyPatch(ctx, id, domain.BookingPatch{Passengers: input.Passengers})
}

func (s *BookingService) applyPatch(ctx context.Context, id int64, patch domain.BookingPatch) (UpdateResult, error) {
	if patch.Passengers != nil && *patch.Passengers <= 0 {
		return UpdateResult{}, domain.NewFieldError("passengers", "must be a positive integer")
	}
	if patch.IsZero() {
		// Nothing to change; still confirm the booking exists.
		if _, err := s.bookings.GetByID(ctx, id); err != nil {
			return UpdateResult{}, err
		}
		return UpdateResult{ID: id}, nil
	}

	updated, err := s.bookings.UpdateFields(ctx, id, patch)
	if err != nil {
		return UpdateResult{}, err
	}

	result := UpdateResult{ID: updated.ID}
	var fields []string
	if patch.Date != nil {
		date := updated.Date.Format(mapper.DateLayout)
		result.Date = &date
		fields = append(fields, "date")
	}
	if patch.Passengers != nil {
		passengers := updated.Passengers
		result.Passengers = &passengers
		fields = append(fields, "passengers")
	}

	event := kafka.NewNotificationEvent(kafka.EventBookingUpdated)
	event.BookingID = updated.ID
	event.Fields = fields
	s.publish(ctx, event)
	return result, nil
}

// publish is best effort: a notification failure never fails the update.
func (s *BookingService) publish(ctx context.Context, event kafka.NotificationEvent) {
	if s.producer == nil || s.notificationsTopic == "" {
		return
	}
	key := strconv.FormatInt(event.BookingID, 10)
	if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
		s.log.Warn("publish booking notification failed", sl.Err(err))
	}
}

var _ BookingUseCase = (*BookingService)(nil)
