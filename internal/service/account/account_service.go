package account

import (
	"context"
	"log/slog"

	"github.com/avelov/flightdesk/internal/credentials"
	"github.com/avelov/flightdesk/internal/kafka"
	"github.com/avelov/flightdesk/internal/lib/sl"
)

type AccountUseCase interface {
	Register(ctx context.Context, input RegisterInput) (Registration, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// RegisterInput is the signup payload. All fields are required; no
// password-strength policy is applied here.
type RegisterInput struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

// Registration is the signup response: the accepted input minus the
// password. No password-bearing field is ever echoed.
type Registration struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AccountService struct {
	store              credentials.Store
	producer           Producer
	notificationsTopic string
	log                *slog.Logger
}

type AccountServiceOption func(*AccountService)

func WithProducer(producer Producer, notificationsTopic string) AccountServiceOption {
	return func(s *AccountService) {
		s.producer = producer
		s.notificationsTopic = notificationsTopic
	}
}

func NewAccountService(store credentials.Store, log *slog.Logger, opts ...AccountServiceOption) *AccountService {
	service := &AccountService{store: store, log: log}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *AccountService) Register(ctx context.Context, input RegisterInput) (Registration, error) {
	user, err := s.store.CreateAccount(ctx, input.Username, input.Password, input.FirstName, input.LastName)
	if err != nil {
		return Registration{}, err
	}

	if s.producer != nil && s.notificationsTopic != "" {
		event := kafka.NewNotificationEvent(kafka.EventAccountRegistered)
		event.Username = user.Username
		if err := s.producer.Publish(ctx, s.notificationsTopic, user.Username, event); err != nil {
			s.log.Warn("publish registration notification failed", sl.Err(err))
		}
	}

	return Registration{
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

var _ AccountUseCase = (*AccountService)(nil)
