package associations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
	"github.com/PilarGuataquira/202214-BaseProject/internal/kafka"
	"github.com/PilarGuataquira/202214-BaseProject/internal/logger"
	"github.com/PilarGuataquira/202214-BaseProject/internal/metrics"
	"github.com/PilarGuataquira/202214-BaseProject/internal/repository"
)

const (
	opAdd     = "add"
	opFind    = "find"
	opList    = "list"
	opReplace = "replace"
	opRemove  = "remove"
)

type AssociationUseCase interface {
	AddAirport(ctx context.Context, airlineID, airportID string) (*domain.Airline, error)
	FindAirport(ctx context.Context, airlineID, airportID string) (*domain.Airport, error)
	ListAirports(ctx context.Context, airlineID string) ([]domain.Airport, error)
	ReplaceAirports(ctx context.Context, airlineID string, airports []domain.Airport) (*domain.Airline, error)
	RemoveAirport(ctx context.Context, airlineID, airportID string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type AssociationService struct {
	airports repository.AirportRepository
	airlines repository.AirlineRepository
	producer Producer
	topic    string
	log      logger.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

type Option func(*AssociationService)

// WithProducer publishes an AssociationEvent to topic after every change.
func WithProducer(producer Producer, topic string) Option {
	return func(s *AssociationService) {
		s.producer = producer
		s.topic = topic
	}
}

func WithLogger(log logger.Logger) Option {
	return func(s *AssociationService) {
		s.log = log
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *AssociationService) {
		s.metrics = m
	}
}

func NewAssociationService(
	airports repository.AirportRepository,
	airlines repository.AirlineRepository,
	opts ...Option,
) *AssociationService {
	service := &AssociationService{
		airports: airports,
		airlines: airlines,
		log:      logger.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *AssociationService) AddAirport(ctx context.Context, airlineID, airportID string) (result *domain.Airline, err error) {
	defer s.observe(opAdd, &err)

	airport, err := s.airport(ctx, airportID)
	if err != nil {
		return nil, err
	}
	airline, err := s.airline(ctx, airlineID)
	if err != nil {
		return nil, err
	}

	airline.Airports = append(airline.Airports, *airport)
	saved, err := s.airlines.Save(ctx, airline)
	if err != nil {
		return nil, fmt.Errorf("save airline %s: %w", airlineID, err)
	}

	s.log.Info("airport added to airline", "airline_id", airlineID, "airport_id", airportID)
	s.publish(ctx, kafka.EventAirportAdded, airlineID, []string{airportID})
	return saved, nil
}

func (s *AssociationService) FindAirport(ctx context.Context, airlineID, airportID string) (result *domain.Airport, err error) {
	defer s.observe(opFind, &err)

	airport, err := s.airport(ctx, airportID)
	if err != nil {
		return nil, err
	}
	airline, err := s.airline(ctx, airlineID)
	if err != nil {
		return nil, err
	}

	linked, ok := airline.FindAirport(airport.ID)
	if !ok {
		return nil, domain.ErrAirportNotAssociated()
	}
	return linked, nil
}

func (s *AssociationService) ListAirports(ctx context.Context, airlineID string) (result []domain.Airport, err error) {
	defer s.observe(opList, &err)

	airline, err := s.airline(ctx, airlineID)
	if err != nil {
		return nil, err
	}
	return airline.Airports, nil
}

// ReplaceAirports overwrites the airline's whole airport set with airports,
// keeping order and duplicates. Every airport must exist.
func (s *AssociationService) ReplaceAirports(ctx context.Context, airlineID string, airports []domain.Airport) (result *domain.Airline, err error) {
	defer s.observe(opReplace, &err)

	airline, err := s.airline(ctx, airlineID)
	if err != nil {
		return nil, err
	}

	replacement := make([]domain.Airport, 0, len(airports))
	for _, requested := range airports {
		stored, err := s.airport(ctx, requested.ID)
		if err != nil {
			return nil, err
		}
		replacement = append(replacement, *stored)
	}

	airline.Airports = replacement
	saved, err := s.airlines.Save(ctx, airline)
	if err != nil {
		return nil, fmt.Errorf("save airline %s: %w", airlineID, err)
	}

	s.log.Info("airline airports replaced", "airline_id", airlineID, "count", len(replacement))
	s.publish(ctx, kafka.EventAirportsReplaced, airlineID, saved.AirportIDs())
	return saved, nil
}

func (s *AssociationService) RemoveAirport(ctx context.Context, airlineID, airportID string) (err error) {
	defer s.observe(opRemove, &err)

	airport, err := s.airport(ctx, airportID)
	if err != nil {
		return err
	}
	airline, err := s.airline(ctx, airlineID)
	if err != nil {
		return err
	}

	if _, ok := airline.FindAirport(airport.ID); !ok {
		return domain.ErrAirportNotAssociated()
	}

	airline.Airports = airline.WithoutAirport(airportID)
	if _, err := s.airlines.Save(ctx, airline); err != nil {
		return fmt.Errorf("save airline %s: %w", airlineID, err)
	}

	s.log.Info("airport removed from airline", "airline_id", airlineID, "airport_id", airportID)
	s.publish(ctx, kafka.EventAirportRemoved, airlineID, []string{airportID})
	return nil
}

func (s *AssociationService) airport(ctx context.Context, id string) (*domain.Airport, error) {
	airport, err := s.airports.GetByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrAirportNotFound()
		}
		return nil, fmt.Errorf("get airport %s: %w", id, err)
	}
	return airport, nil
}

// airline always loads the linked airports.
func (s *AssociationService) airline(ctx context.Context, id string) (*domain.Airline, error) {
	airline, err := s.airlines.GetByID(ctx, id, true)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrAirlineNotFound()
		}
		return nil, fmt.Errorf("get airline %s: %w", id, err)
	}
	return airline, nil
}

func (s *AssociationService) observe(operation string, err *error) {
	result := "ok"
	if *err != nil {
		result = domain.Kind(*err)
	}
	s.metrics.ObserveAssociation(operation, result)
}

func (s *AssociationService) publish(ctx context.Context, eventType, airlineID string, airportIDs []string) {
	if s.producer == nil || s.topic == "" {
		return
	}
	event := kafka.AssociationEvent{
		Type:       eventType,
		AirlineID:  airlineID,
		AirportIDs: airportIDs,
		OccurredAt: s.now().UTC(),
	}
	if err := s.producer.Publish(ctx, s.topic, airlineID, event); err != nil {
		s.log.Warn("failed to publish association event", "type", eventType, "airline_id", airlineID, "error", err)
	}
}

var _ AssociationUseCase = (*AssociationService)(nil)
