package api

import (
	"context"

	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
	"github.com/PilarGuataquira/202214-BaseProject/internal/service/airlines"
	"github.com/PilarGuataquira/202214-BaseProject/internal/service/airports"
	"github.com/stretchr/testify/mock"
)

type MockAirportUseCase struct {
	mock.Mock
}

func (m *MockAirportUseCase) List(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockAirportUseCase) GetByID(ctx context.Context, id string) (*domain.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportUseCase) Create(ctx context.Context, input airports.AirportInput) (*domain.Airport, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportUseCase) Update(ctx context.Context, id string, input airports.AirportInput) (*domain.Airport, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportUseCase) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockAirlineUseCase struct {
	mock.Mock
}

func (m *MockAirlineUseCase) List(ctx context.Context) ([]domain.Airline, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airline), args.Error(1)
}

func (m *MockAirlineUseCase) GetByID(ctx context.Context, id string) (*domain.Airline, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airline), args.Error(1)
}

func (m *MockAirlineUseCase) Create(ctx context.Context, input airlines.AirlineInput) (*domain.Airline, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airline), args.Error(1)
}

func (m *MockAirlineUseCase) Update(ctx context.Context, id string, input airlines.AirlineInput) (*domain.Airline, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airline), args.Error(1)
}

func (m *MockAirlineUseCase) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockAssociationUseCase struct {
	mock.Mock
}

func (m *MockAssociationUseCase) AddAirport(ctx context.Context, airlineID, airportID string) (*domain.Airline, error) {
	args := m.Called(ctx, airlineID, airportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airline), args.Error(1)
}

func (m *MockAssociationUseCase) FindAirport(ctx context.Context, airlineID, airportID string) (*domain.Airport, error) {
	args := m.Called(ctx, airlineID, airportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAssociationUseCase) ListAirports(ctx context.Context, airlineID string) ([]domain.Airport, error) {
	args := m.Called(ctx, airlineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockAssociationUseCase) ReplaceAirports(ctx context.Context, airlineID string, airports []domain.Airport) (*domain.Airline, error) {
	args := m.Called(ctx, airlineID, airports)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airline), args.Error(1)
}

func (m *MockAssociationUseCase) RemoveAirport(ctx context.Context, airlineID, airportID string) error {
	return m.Called(ctx, airlineID, airportID).Error(0)
}
