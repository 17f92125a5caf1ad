package repository

import (
	"context"
	"errors"

	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the tables used by the GORM repositories.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Airports{}, &Airlines{})
}

// GormAirportRepository implements AirportRepository with GORM
type GormAirportRepository struct {
	db *gorm.DB
}

func NewGormAirportRepository(db *gorm.DB) AirportRepository {
	return &GormAirportRepository{db: db}
}

func (r *GormAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	var models []Airports
	if err := r.db.WithContext(ctx).Order("name, id").Find(&models).Error; err != nil {
		return nil, err
	}
	airports := make([]domain.Airport, 0, len(models))
	for _, m := range models {
		airports = append(airports, airportFromModel(m))
	}
	return airports, nil
}

func (r *GormAirportRepository) GetByID(ctx context.Context, id string, withAirlines bool) (*domain.Airport, error) {
	q := r.db.WithContext(ctx)
	if withAirlines {
		q = q.Preload("Airlines")
	}
	var m Airports
	if err := q.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, gormNotFound(err)
	}
	if withAirlines && m.Airlines == nil {
		m.Airlines = []Airlines{}
	}
	a := airportFromModel(m)
	return &a, nil
}

func (r *GormAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	m := airportToModel(airport)
	if err := r.db.WithContext(ctx).Omit("Airlines").Create(&m).Error; err != nil {
		return err
	}
	airport.CreatedAt, airport.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *GormAirportRepository) Update(ctx context.Context, airport *domain.Airport) error {
	res := r.db.WithContext(ctx).Model(&Airports{}).Where("id = ?", airport.ID).Updates(map[string]interface{}{
		"name":    airport.Name,
		"code":    airport.Code,
		"country": airport.Country,
		"city":    airport.City,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormAirportRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := Airports{ID: id}
		if err := tx.Model(&m).Association("Airlines").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&Airports{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// GormAirlineRepository implements AirlineRepository with GORM
type GormAirlineRepository struct {
	db *gorm.DB
}

func NewGormAirlineRepository(db *gorm.DB) AirlineRepository {
	return &GormAirlineRepository{db: db}
}

func (r *GormAirlineRepository) List(ctx context.Context, withAirports bool) ([]domain.Airline, error) {
	q := r.db.WithContext(ctx)
	if withAirports {
		q = q.Preload("Airports")
	}
	var models []Airlines
	if err := q.Order("name, id").Find(&models).Error; err != nil {
		return nil, err
	}
	airlines := make([]domain.Airline, 0, len(models))
	for _, m := range models {
		if withAirports && m.Airports == nil {
			m.Airports = []Airports{}
		}
		airlines = append(airlines, airlineFromModel(m))
	}
	return airlines, nil
}

func (r *GormAirlineRepository) GetByID(ctx context.Context, id string, withAirports bool) (*domain.Airline, error) {
	q := r.db.WithContext(ctx)
	if withAirports {
		q = q.Preload("Airports")
	}
	var m Airlines
	if err := q.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, gormNotFound(err)
	}
	if withAirports && m.Airports == nil {
		m.Airports = []Airports{}
	}
	l := airlineFromModel(m)
	return &l, nil
}

func (r *GormAirlineRepository) Create(ctx context.Context, airline *domain.Airline) error {
	m := airlineToModel(airline)
	if err := r.db.WithContext(ctx).Omit("Airports").Create(&m).Error; err != nil {
		return err
	}
	airline.CreatedAt, airline.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *GormAirlineRepository) Update(ctx context.Context, airline *domain.Airline) error {
	res := r.db.WithContext(ctx).Model(&Airlines{}).Where("id = ?", airline.ID).Updates(map[string]interface{}{
		"name":        airline.Name,
		"description": airline.Description,
		"founded_at":  airline.FoundedAt,
		"website":     airline.Website,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormAirlineRepository) Save(ctx context.Context, airline *domain.Airline) (*domain.Airline, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := airlineToModel(airline)
		if err := tx.Omit("Airports").Save(&m).Error; err != nil {
			return err
		}
		airline.CreatedAt, airline.UpdatedAt = m.CreatedAt, m.UpdatedAt

		ids := uniqueIDs(airline.Airports)
		if len(ids) == 0 {
			return tx.Model(&m).Association("Airports").Clear()
		}
		refs := make([]Airports, 0, len(ids))
		for _, id := range ids {
			refs = append(refs, Airports{ID: id})
		}
		// links only; the airport rows themselves are not upserted
		return tx.Model(&m).Omit("Airports.*").Association("Airports").Replace(refs)
	})
	if err != nil {
		return nil, err
	}
	return airline, nil
}

func (r *GormAirlineRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := Airlines{ID: id}
		if err := tx.Model(&m).Association("Airports").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&Airlines{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func gormNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

var (
	_ AirportRepository = (*GormAirportRepository)(nil)
	_ AirlineRepository = (*GormAirlineRepository)(nil)
)
