package repository

import (
	"context"
	"errors"

	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const airportColumns = `id, name, code, country, city, created_at, updated_at`

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT `+airportColumns+` FROM airports ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		a, err := scanAirport(rows)
		if err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id string, withAirlines bool) (*domain.Airport, error) {
	a, err := scanAirport(r.db.QueryRow(ctx, `SELECT `+airportColumns+` FROM airports WHERE id=$1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	if !withAirlines {
		return &a, nil
	}

	rows, err := r.db.Query(ctx, `SELECT l.id, l.name, l.description, l.founded_at, l.website, l.created_at, l.updated_at
		FROM airlines l JOIN airline_airports aa ON aa.airline_id = l.id
		WHERE aa.airport_id=$1 ORDER BY l.name, l.id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	a.Airlines = make([]domain.Airline, 0)
	for rows.Next() {
		l, err := scanAirline(rows)
		if err != nil {
			return nil, err
		}
		a.Airlines = append(a.Airlines, l)
	}
	return &a, rows.Err()
}

func (r *PGAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	return r.db.QueryRow(ctx, `INSERT INTO airports (id, name, code, country, city)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`, airport.ID, airport.Name, airport.Code, airport.Country, airport.City).
		Scan(&airport.CreatedAt, &airport.UpdatedAt)
}

func (r *PGAirportRepository) Update(ctx context.Context, airport *domain.Airport) error {
	err := r.db.QueryRow(ctx, `UPDATE airports SET name=$1, code=$2, country=$3, city=$4, updated_at=now()
		WHERE id=$5 RETURNING created_at, updated_at`, airport.Name, airport.Code, airport.Country, airport.City, airport.ID).
		Scan(&airport.CreatedAt, &airport.UpdatedAt)
	return notFound(err)
}

func (r *PGAirportRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM airports WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanAirport(row pgx.Row) (domain.Airport, error) {
	var a domain.Airport
	err := row.Scan(&a.ID, &a.Name, &a.Code, &a.Country, &a.City, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// notFound maps pgx.ErrNoRows to ErrNotFound and passes anything else through.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

var _ AirportRepository = (*PGAirportRepository)(nil)
