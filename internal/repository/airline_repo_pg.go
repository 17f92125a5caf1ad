package repository

import (
	"context"

	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const airlineColumns = `id, name, description, founded_at, website, created_at, updated_at`

type PGAirlineRepository struct {
	db *pgxpool.Pool
}

func NewAirlineRepository(db *pgxpool.Pool) AirlineRepository {
	return &PGAirlineRepository{db: db}
}

func (r *PGAirlineRepository) List(ctx context.Context, withAirports bool) ([]domain.Airline, error) {
	rows, err := r.db.Query(ctx, `SELECT `+airlineColumns+` FROM airlines ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airlines := make([]domain.Airline, 0)
	index := make(map[string]int)
	for rows.Next() {
		l, err := scanAirline(rows)
		if err != nil {
			return nil, err
		}
		index[l.ID] = len(airlines)
		airlines = append(airlines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if !withAirports {
		return airlines, nil
	}

	for i := range airlines {
		airlines[i].Airports = make([]domain.Airport, 0)
	}
	links, err := r.db.Query(ctx, `SELECT aa.airline_id, a.id, a.name, a.code, a.country, a.city, a.created_at, a.updated_at
		FROM airline_airports aa JOIN airports a ON a.id = aa.airport_id
		ORDER BY aa.airline_id, aa.position, a.id`)
	if err != nil {
		return nil, err
	}
	defer links.Close()

	for links.Next() {
		var airlineID string
		var a domain.Airport
		if err := links.Scan(&airlineID, &a.ID, &a.Name, &a.Code, &a.Country, &a.City, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		if i, ok := index[airlineID]; ok {
			airlines[i].Airports = append(airlines[i].Airports, a)
		}
	}
	return airlines, links.Err()
}

func (r *PGAirlineRepository) GetByID(ctx context.Context, id string, withAirports bool) (*domain.Airline, error) {
	l, err := scanAirline(r.db.QueryRow(ctx, `SELECT `+airlineColumns+` FROM airlines WHERE id=$1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	if !withAirports {
		return &l, nil
	}

	airports, err := r.linkedAirports(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	l.Airports = airports
	return &l, nil
}

func (r *PGAirlineRepository) Create(ctx context.Context, airline *domain.Airline) error {
	return r.db.QueryRow(ctx, `INSERT INTO airlines (id, name, description, founded_at, website)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`, airline.ID, airline.Name, airline.Description, airline.FoundedAt, airline.Website).
		Scan(&airline.CreatedAt, &airline.UpdatedAt)
}

func (r *PGAirlineRepository) Update(ctx context.Context, airline *domain.Airline) error {
	err := r.db.QueryRow(ctx, `UPDATE airlines SET name=$1, description=$2, founded_at=$3, website=$4, updated_at=now()
		WHERE id=$5 RETURNING created_at, updated_at`, airline.Name, airline.Description, airline.FoundedAt, airline.Website, airline.ID).
		Scan(&airline.CreatedAt, &airline.UpdatedAt)
	return notFound(err)
}

func (r *PGAirlineRepository) Save(ctx context.Context, airline *domain.Airline) (*domain.Airline, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO airlines (id, name, description, founded_at, website)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, description=EXCLUDED.description,
			founded_at=EXCLUDED.founded_at, website=EXCLUDED.website, updated_at=now()
		RETURNING created_at, updated_at`, airline.ID, airline.Name, airline.Description, airline.FoundedAt, airline.Website).
		Scan(&airline.CreatedAt, &airline.UpdatedAt); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM airline_airports WHERE airline_id=$1`, airline.ID); err != nil {
		return nil, err
	}
	for pos, airportID := range uniqueIDs(airline.Airports) {
		if _, err := tx.Exec(ctx, `INSERT INTO airline_airports (airline_id, airport_id, position) VALUES ($1, $2, $3)`,
			airline.ID, airportID, pos); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return airline, nil
}

func (r *PGAirlineRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM airlines WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *PGAirlineRepository) linkedAirports(ctx context.Context, q querier, airlineID string) ([]domain.Airport, error) {
	rows, err := q.Query(ctx, `SELECT a.id, a.name, a.code, a.country, a.city, a.created_at, a.updated_at
		FROM airports a JOIN airline_airports aa ON aa.airport_id = a.id
		WHERE aa.airline_id=$1 ORDER BY aa.position, a.id`, airlineID)
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

func scanAirline(row pgx.Row) (domain.Airline, error) {
	var l domain.Airline
	err := row.Scan(&l.ID, &l.Name, &l.Description, &l.FoundedAt, &l.Website, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

var _ AirlineRepository = (*PGAirlineRepository)(nil)
