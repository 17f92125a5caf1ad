package airports

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
	"github.com/PilarGuataquira/202214-BaseProject/internal/logger"
	"github.com/PilarGuataquira/202214-BaseProject/internal/repository"
	"github.com/google/uuid"
)

type AirportUseCase interface {
	List(ctx context.Context) ([]domain.Airport, error)
	GetByID(ctx context.Context, id string) (*domain.Airport, error)
	Create(ctx context.Context, input AirportInput) (*domain.Airport, error)
	Update(ctx context.Context, id string, input AirportInput) (*domain.Airport, error)
	Delete(ctx context.Context, id string) error
}

// AirportCache holds the full airport list. A nil slice from GetAirports is a miss.
type AirportCache interface {
	GetAirports(ctx context.Context) ([]domain.Airport, error)
	SetAirports(ctx context.Context, airports []domain.Airport) error
	InvalidateAirports(ctx context.Context) error
}

type AirportInput struct {
	Name    string
	Code    string
	Country string
	City    string
}

func (in AirportInput) validate() error {
	missing := make([]string, 0, 4)
	for _, f := range []struct{ name, value string }{
		{"name", in.Name},
		{"code", in.Code},
		{"country", in.Country},
		{"city", in.City},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return domain.ErrInvalid("airport %s is required", strings.Join(missing, ", "))
	}
	return nil
}

type AirportService struct {
	repo  repository.AirportRepository
	cache AirportCache
	log   logger.Logger
}

type Option func(*AirportService)

// WithCache serves List from cache and drops it on every write.
func WithCache(cache AirportCache) Option {
	return func(s *AirportService) {
		s.cache = cache
	}
}

func WithLogger(log logger.Logger) Option {
	return func(s *AirportService) {
		s.log = log
	}
}

func NewAirportService(repo repository.AirportRepository, opts ...Option) *AirportService {
	service := &AirportService{repo: repo, log: logger.NewNop()}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *AirportService) List(ctx context.Context) ([]domain.Airport, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAirports(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.log.Warn("airport cache read failed", "error", err)
		}
	}

	airports, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list airports: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.SetAirports(ctx, airports); err != nil {
			s.log.Warn("airport cache write failed", "error", err)
		}
	}
	return airports, nil
}

func (s *AirportService) GetByID(ctx context.Context, id string) (*domain.Airport, error) {
	airport, err := s.repo.GetByID(ctx, id, true)
	if err != nil {
		return nil, s.translate(err, id)
	}
	return airport, nil
}

func (s *AirportService) Create(ctx context.Context, input AirportInput) (*domain.Airport, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	airport := &domain.Airport{
		ID:      uuid.NewString(),
		Name:    input.Name,
		Code:    input.Code,
		Country: input.Country,
		City:    input.City,
	}
	if err := s.repo.Create(ctx, airport); err != nil {
		return nil, fmt.Errorf("create airport: %w", err)
	}

	s.log.Info("airport created", "airport_id", airport.ID, "code", airport.Code)
	s.invalidate(ctx)
	return airport, nil
}

func (s *AirportService) Update(ctx context.Context, id string, input AirportInput) (*domain.Airport, error) {
	current, err := s.repo.GetByID(ctx, id, false)
	if err != nil {
		return nil, s.translate(err, id)
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	current.Name = input.Name
	current.Code = input.Code
	current.Country = input.Country
	current.City = input.City
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, s.translate(err, id)
	}

	s.invalidate(ctx)
	return current, nil
}

// Delete removes the airport together with its airline links.
func (s *AirportService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translate(err, id)
	}
	s.log.Info("airport deleted", "airport_id", id)
	s.invalidate(ctx)
	return nil
}

func (s *AirportService) translate(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domain.ErrAirportNotFound()
	}
	return fmt.Errorf("airport %s: %w", id, err)
}

func (s *AirportService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAirports(ctx); err != nil {
		s.log.Warn("airport cache invalidation failed", "error", err)
	}
}

var _ AirportUseCase = (*AirportService)(nil)
