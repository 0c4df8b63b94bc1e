package email

import (
	"context"
	"log/slog"

	"github.com/avelov/flightdesk/internal/kafka"
)

// Sender delivers user-facing notices. Delivery is logged; the actual
// mail transport sits behind an out-of-scope relay.
type Sender struct {
	log *slog.Logger
}

func NewSender(log *slog.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.NotificationEvent) error {
	switch event.Type {
	case kafka.EventAccountRegistered:
		s.log.Info("send welcome notice", slog.String("username", event.Username))
	case kafka.EventBookingUpdated:
		s.log.Info("send booking update notice",
			slog.Int64("booking_id", event.BookingID),
			slog.Any("fields", event.Fields))
	default:
		s.log.Warn("skip unknown notification type", slog.String("type", event.Type))
	}
	return nil
}
