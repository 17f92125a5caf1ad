// Package repository persists airlines, airports and the links between them.
//
// Every backend keeps the association in a single place (a join table or an
// id list on the airline document), so an airport is linked to an airline iff
// the airline appears among the airport's airlines.
package repository

import (
	"context"

	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
	"github.com/juju/errors"
)

// ErrNotFound is returned when the requested record does not exist.
const ErrNotFound = errors.ConstError("record not found")

type AirportRepository interface {
	List(ctx context.Context) ([]domain.Airport, error)
	GetByID(ctx context.Context, id string, withAirlines bool) (*domain.Airport, error)
	Create(ctx context.Context, airport *domain.Airport) error
	Update(ctx context.Context, airport *domain.Airport) error
	Delete(ctx context.Context, id string) error
}

type AirlineRepository interface {
	List(ctx context.Context, withAirports bool) ([]domain.Airline, error)
	GetByID(ctx context.Context, id string, withAirports bool) (*domain.Airline, error)
	Create(ctx context.Context, airline *domain.Airline) error
	// Update changes attributes only; links are left untouched.
	Update(ctx context.Context, airline *domain.Airline) error
	// Save writes attributes and overwrites the airline's whole airport set.
	Save(ctx context.Context, airline *domain.Airline) (*domain.Airline, error)
	Delete(ctx context.Context, id string) error
}

// uniqueIDs keeps the first occurrence of every id, in order. Link storage
// is a set, so duplicates appended by callers collapse on write.
func uniqueIDs(airports []domain.Airport) []string {
	seen := make(map[string]struct{}, len(airports))
	ids := make([]string, 0, len(airports))
	for _, ap := range airports {
		if _, ok := seen[ap.ID]; ok {
			continue
		}
		seen[ap.ID] = struct{}{}
		ids = append(ids, ap.ID)
	}
	return ids
}
