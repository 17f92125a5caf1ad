package airlines

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
	"github.com/PilarGuataquira/202214-BaseProject/internal/logger"
	"github.com/PilarGuataquira/202214-BaseProject/internal/repository"
	"github.com/google/uuid"
)

type AirlineUseCase interface {
	List(ctx context.Context) ([]domain.Airline, error)
	GetByID(ctx context.Context, id string) (*domain.Airline, error)
	Create(ctx context.Context, input AirlineInput) (*domain.Airline, error)
	Update(ctx context.Context, id string, input AirlineInput) (*domain.Airline, error)
	Delete(ctx context.Context, id string) error
}

type AirlineInput struct {
	Name        string
	Description string
	FoundedAt   time.Time
	Website     string
}

func (in AirlineInput) validate() error {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description")
	}
	if in.FoundedAt.IsZero() {
		missing = append(missing, "founding date")
	}
	if strings.TrimSpace(in.Website) == "" {
		missing = append(missing, "website")
	}
	if len(missing) > 0 {
		return domain.ErrInvalid("airline %s is required", strings.Join(missing, ", "))
	}
	return nil
}

type AirlineService struct {
	repo repository.AirlineRepository
	log  logger.Logger
}

func NewAirlineService(repo repository.AirlineRepository, log logger.Logger) *AirlineService {
	if log == nil {
		log = logger.NewNop()
	}
	return &AirlineService{repo: repo, log: log}
}

func (s *AirlineService) List(ctx context.Context) ([]domain.Airline, error) {
	airlines, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list airlines: %w", err)
	}
	return airlines, nil
}

func (s *AirlineService) GetByID(ctx context.Context, id string) (*domain.Airline, error) {
	airline, err := s.repo.GetByID(ctx, id, true)
	if err != nil {
		return nil, translate(err, id)
	}
	return airline, nil
}

func (s *AirlineService) Create(ctx context.Context, input AirlineInput) (*domain.Airline, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	airline := &domain.Airline{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		FoundedAt:   input.FoundedAt,
		Website:     input.Website,
		Airports:    []domain.Airport{},
	}
	if err := s.repo.Create(ctx, airline); err != nil {
		return nil, fmt.Errorf("create airline: %w", err)
	}

	s.log.Info("airline created", "airline_id", airline.ID, "name", airline.Name)
	return airline, nil
}

// Update rewrites the attributes and leaves the airport links as they are.
func (s *AirlineService) Update(ctx context.Context, id string, input AirlineInput) (*domain.Airline, error) {
	current, err := s.repo.GetByID(ctx, id, true)
	if err != nil {
		return nil, translate(err, id)
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	current.Name = input.Name
	current.Description = input.Description
	current.FoundedAt = input.FoundedAt
	current.Website = input.Website
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, translate(err, id)
	}
	return current, nil
}

func (s *AirlineService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err, id)
	}
	s.log.Info("airline deleted", "airline_id", id)
	return nil
}

func translate(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domain.ErrAirlineNotFound()
	}
	return fmt.Errorf("airline %s: %w", id, err)
}

var _ AirlineUseCase = (*AirlineService)(nil)
