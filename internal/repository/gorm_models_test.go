package repository

import (
	"testing"
	"time"

	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGormModels_TableNames(t *testing.T) {
	assert.Equal(t, "airports", Airports{}.TableName())
	assert.Equal(t, "airlines", Airlines{}.TableName())
}

func TestAirlineFromModel_WithAirports(t *testing.T) {
	founded := time.Date(1919, 12, 5, 0, 0, 0, 0, time.UTC)
	m := Airlines{
		ID:          "al-1",
		Name:        "Avianca",
		Description: "Aerolínea de bandera",
		FoundedAt:   founded,
		Website:     "https://www.avianca.com",
		Airports: []Airports{
			{ID: "ap-1", Name: "El Dorado", Code: "BOG", Country: "Colombia", City: "Bogotá"},
		},
	}

	l := airlineFromModel(m)

	assert.Equal(t, "Avianca", l.Name)
	assert.Equal(t, founded, l.FoundedAt)
	assert.Equal(t, []domain.Airport{
		{ID: "ap-1", Name: "El Dorado", Code: "BOG", Country: "Colombia", City: "Bogotá"},
	}, l.Airports)
}

func TestAirlineFromModel_NoPreload(t *testing.T) {
	l := airlineFromModel(Airlines{ID: "al-1"})
	assert.Nil(t, l.Airports)
}

func TestAirportToModel(t *testing.T) {
	a := &domain.Airport{ID: "ap-1", Name: "El Dorado", Code: "BOG", Country: "Colombia", City: "Bogotá"}

	m := airportToModel(a)

	assert.Equal(t, a.ID, m.ID)
	assert.Equal(t, a.Code, m.Code)
	assert.Nil(t, m.Airlines)
	assert.Equal(t, *a, airportFromModel(m))
}

func TestGormNotFound(t *testing.T) {
	assert.ErrorIs(t, gormNotFound(gorm.ErrRecordNotFound), ErrNotFound)
	assert.Equal(t, assert.AnError, gormNotFound(assert.AnError))
}

func TestNewGormRepositories(t *testing.T) {
	db := &gorm.DB{}
	assert.NotNil(t, NewGormAirportRepository(db))
	assert.NotNil(t, NewGormAirlineRepository(db))
}
