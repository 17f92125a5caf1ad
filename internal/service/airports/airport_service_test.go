package airports

import (
	"context"
	"errors"
	"testing"

	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
	"github.com/PilarGuataquira/202214-BaseProject/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetAirports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockCache) SetAirports(ctx context.Context, airports []domain.Airport) error {
	return m.Called(ctx, airports).Error(0)
}

func (m *MockCache) InvalidateAirports(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func sampleAirports() []domain.Airport {
	return []domain.Airport{
		{ID: "ap-1", Name: "El Dorado", Code: "BOG", Country: "Colombia", City: "Bogotá"},
		{ID: "ap-2", Name: "José María Córdova", Code: "MDE", Country: "Colombia", City: "Rionegro"},
	}
}

func validInput() AirportInput {
	return AirportInput{Name: "El Dorado", Code: "BOG", Country: "Colombia", City: "Bogotá"}
}

func TestAirportService_List_CacheMiss(t *testing.T) {
	mockRepo := &MockAirportRepository{}
	mockCache := &MockCache{}
	service := NewAirportService(mockRepo, WithCache(mockCache))
	ctx := context.Background()
	airports := sampleAirports()

	mockCache.On("GetAirports", ctx).Return(([]domain.Airport)(nil), nil).Once()
	mockRepo.On("List", ctx).Return(airports, nil).Once()
	mockCache.On("SetAirports", ctx, airports).Return(nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, airports, result)
	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestAirportService_List_CacheHit(t *testing.T) {
	mockRepo := &MockAirportRepository{}
	mockCache := &MockCache{}
	service := NewAirportService(mockRepo, WithCache(mockCache))
	ctx := context.Background()
	airports := sampleAirports()

	mockCache.On("GetAirports", ctx).Return(airports, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, airports, result)
	mockRepo.AssertNotCalled(t, "List", mock.Anything)
	mockCache.AssertNotCalled(t, "SetAirports", mock.Anything, mock.Anything)
}

func TestAirportService_List_CacheError(t *testing.T) {
	mockRepo := &MockAirportRepository{}
	mockCache := &MockCache{}
	service := NewAirportService(mockRepo, WithCache(mockCache))
	ctx := context.Background()
	airports := sampleAirports()

	mockCache.On("GetAirports", ctx).Return(([]domain.Airport)(nil), errors.New("cache error")).Once()
	mockRepo.On("List", ctx).Return(airports, nil).Once()
	mockCache.On("SetAirports", ctx, airports).Return(errors.New("cache error")).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, airports, result)
	mockCache.AssertExpectations(t)
}

func TestAirportService_List_RepositoryError(t *testing.T) {
	mockRepo := &MockAirportRepository{}
	service := NewAirportService(mockRepo)
	ctx := context.Background()

	expectedErr := errors.New("database error")
	mockRepo.On("List", ctx).Return([]domain.Airport{}, expectedErr).Once()

	result, err := service.List(ctx)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, expectedErr)
}

func TestAirportService_GetByID(t *testing.T) {
	mockRepo := &MockAirportRepository{}
	service := NewAirportService(mockRepo)
	ctx := context.Background()
	airport := sampleAirports()[0]

	mockRepo.On("GetByID", ctx, "ap-1", true).Return(&airport, nil).Once()
	mockRepo.On("GetByID", ctx, "0", true).Return(nil, repository.ErrNotFound).Once()

	result, err := service.GetByID(ctx, "ap-1")
	require.NoError(t, err)
	assert.Equal(t, airport, *result)

	_, err = service.GetByID(ctx, "0")
	assert.EqualError(t, err, domain.AirportNotFoundMessage)
	assert.Equal(t, domain.KindNotFound, domain.Kind(err))
}

func TestAirportService_Create(t *testing.T) {
	mockRepo := &MockAirportRepository{}
	mockCache := &MockCache{}
	service := NewAirportService(mockRepo, WithCache(mockCache))
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.Airport) bool {
		return a.ID != "" && a.Code == "BOG"
	})).Return(nil).Once()
	mockCache.On("InvalidateAirports", ctx).Return(nil).Once()

	result, err := service.Create(ctx, validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "El Dorado", result.Name)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestAirportService_Create_Invalid(t *testing.T) {
	mockRepo := &MockAirportRepository{}
	service := NewAirportService(mockRepo)

	input := validInput()
	input.Code = ""
	input.City = "  "

	_, err := service.Create(context.Background(), input)

	assert.EqualError(t, err, "airport code, city is required")
	assert.Equal(t, domain.KindBadRequest, domain.Kind(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAirportService_Update(t *testing.T) {
	mockRepo := &MockAirportRepository{}
	mockCache := &MockCache{}
	service := NewAirportService(mockRepo, WithCache(mockCache))
	ctx := context.Background()
	current := sampleAirports()[1]

	input := validInput()
	input.Name = "Nuevo nombre"
	mockRepo.On("GetByID", ctx, "ap-2", false).Return(&current, nil).Once()
	mockRepo.On("Update", ctx, mock.MatchedBy(func(a *domain.Airport) bool {
		return a.ID == "ap-2" && a.Name == "Nuevo nombre"
	})).Return(nil).Once()
	mockCache.On("InvalidateAirports", ctx).Return(errors.New("redis down")).Once()

	result, err := service.Update(ctx, "ap-2", input)

	require.NoError(t, err)
	assert.Equal(t, "ap-2", result.ID)
	assert.Equal(t, "Nuevo nombre", result.Name)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestAirportService_Update_NotFound(t *testing.T) {
	mockRepo := &MockAirportRepository{}
	service := NewAirportService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, "0", false).Return(nil, repository.ErrNotFound).Once()

	_, err := service.Update(ctx, "0", validInput())

	assert.EqualError(t, err, domain.AirportNotFoundMessage)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAirportService_Delete(t *testing.T) {
	mockRepo := &MockAirportRepository{}
	mockCache := &MockCache{}
	service := NewAirportService(mockRepo, WithCache(mockCache))
	ctx := context.Background()

	mockRepo.On("Delete", ctx, "ap-1").Return(nil).Once()
	mockRepo.On("Delete", ctx, "0").Return(repository.ErrNotFound).Once()
	mockCache.On("InvalidateAirports", ctx).Return(nil).Once()

	assert.NoError(t, service.Delete(ctx, "ap-1"))

	err := service.Delete(ctx, "0")
	assert.EqualError(t, err, domain.AirportNotFoundMessage)
	assert.Equal(t, domain.KindNotFound, domain.Kind(err))
	mockCache.AssertExpectations(t)
}
