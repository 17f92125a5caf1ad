package associations

import (
	"context"

	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) GetByID(ctx context.Context, id string, withAirlines bool) (*domain.Airport, error) {
	args := m.Called(ctx, id, withAirlines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	return m.Called(ctx, airport).Error(0)
}

func (m *MockAirportRepository) Update(ctx context.Context, airport *domain.Airport) error {
	return m.Called(ctx, airport).Error(0)
}

func (m *MockAirportRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockAirlineRepository struct {
	mock.Mock
}

func (m *MockAirlineRepository) List(ctx context.Context, withAirports bool) ([]domain.Airline, error) {
	args := m.Called(ctx, withAirports)
	return args.Get(0).([]domain.Airline), args.Error(1)
}

func (m *MockAirlineRepository) GetByID(ctx context.Context, id string, withAirports bool) (*domain.Airline, error) {
	args := m.Called(ctx, id, withAirports)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airline), args.Error(1)
}

func (m *MockAirlineRepository) Create(ctx context.Context, airline *domain.Airline) error {
	return m.Called(ctx, airline).Error(0)
}

func (m *MockAirlineRepository) Update(ctx context.Context, airline *domain.Airline) error {
	return m.Called(ctx, airline).Error(0)
}

func (m *MockAirlineRepository) Save(ctx context.Context, airline *domain.Airline) (*domain.Airline, error) {
	args := m.Called(ctx, airline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airline), args.Error(1)
}

func (m *MockAirlineRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}
