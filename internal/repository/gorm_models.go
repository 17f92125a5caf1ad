package repository

import (
	"time"

	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
)

// Airports GORM model for database mapping
type Airports struct {
	ID        string     `gorm:"column:id;primaryKey;type:text"`
	Name      string     `gorm:"column:name;not null"`
	Code      string     `gorm:"column:code;not null"`
	Country   string     `gorm:"column:country;not null"`
	City      string     `gorm:"column:city;not null"`
	Airlines  []Airlines `gorm:"many2many:airline_airports;joinForeignKey:AirportID;joinReferences:AirlineID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Airports) TableName() string {
	return "airports"
}

// Airlines GORM model for database mapping
type Airlines struct {
	ID          string     `gorm:"column:id;primaryKey;type:text"`
	Name        string     `gorm:"column:name;not null"`
	Description string     `gorm:"column:description;not null"`
	FoundedAt   time.Time  `gorm:"column:founded_at;not null"`
	Website     string     `gorm:"column:website;not null"`
	Airports    []Airports `gorm:"many2many:airline_airports;joinForeignKey:AirlineID;joinReferences:AirportID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Airlines) TableName() string {
	return "airlines"
}

func airportFromModel(m Airports) domain.Airport {
	a := domain.Airport{
		ID:        m.ID,
		Name:      m.Name,
		Code:      m.Code,
		Country:   m.Country,
		City:      m.City,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Airlines != nil {
		a.Airlines = make([]domain.Airline, 0, len(m.Airlines))
		for _, l := range m.Airlines {
			a.Airlines = append(a.Airlines, airlineFromModel(l))
		}
	}
	return a
}

func airportToModel(a *domain.Airport) Airports {
	return Airports{
		ID:        a.ID,
		Name:      a.Name,
		Code:      a.Code,
		Country:   a.Country,
		City:      a.City,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func airlineFromModel(m Airlines) domain.Airline {
	l := domain.Airline{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		FoundedAt:   m.FoundedAt,
		Website:     m.Website,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Airports != nil {
		l.Airports = make([]domain.Airport, 0, len(m.Airports))
		for _, a := range m.Airports {
			l.Airports = append(l.Airports, airportFromModel(a))
		}
	}
	return l
}

// airlineToModel maps attributes only; links are written through the
// association API.
func airlineToModel(l *domain.Airline) Airlines {
	return Airlines{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		FoundedAt:   l.FoundedAt,
		Website:     l.Website,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
