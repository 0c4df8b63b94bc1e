package flights

import (
	"context"

	"github.com/avelov/flightdesk/internal/mapper"
	"github.com/avelov/flightdesk/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]mapper.Flight, error)
	GetByID(ctx context.Context, id int64) (mapper.Flight, error)
}

// Cache holds the mapped flight list between requests.
type Cache interface {
	GetFlights(ctx context.Context) ([]mapper.Flight, error)
	SetFlights(ctx context.Context, flights []mapper.Flight) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) List(ctx context.Context) ([]mapper.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	flights := mapper.NewFlights(records)
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (mapper.Flight, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return mapper.Flight{}, err
	}
	return mapper.NewFlight(*f), nil
}

var _ FlightUseCase = (*FlightService)(nil)
