package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
)

// MemoryStore keeps airports, airlines and links in process memory. Both
// memory repositories share one store so links stay consistent in both
// directions; values are copied on the way in and out.
type MemoryStore struct {
	mu       sync.RWMutex
	airports map[string]domain.Airport
	airlines map[string]domain.Airline
	links    map[string][]string // airline id -> airport ids
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		airports: map[string]domain.Airport{},
		airlines: map[string]domain.Airline{},
		links:    map[string][]string{},
		now:      time.Now,
	}
}

type MemoryAirportRepository struct {
	store *MemoryStore
}

func NewMemoryAirportRepository(store *MemoryStore) AirportRepository {
	return &MemoryAirportRepository{store: store}
}

func (r *MemoryAirportRepository) List(_ context.Context) ([]domain.Airport, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	airports := make([]domain.Airport, 0, len(s.airports))
	for _, a := range s.airports {
		airports = append(airports, a)
	}
	sort.Slice(airports, func(i, j int) bool {
		if airports[i].Name != airports[j].Name {
			return airports[i].Name < airports[j].Name
		}
		return airports[i].ID < airports[j].ID
	})
	return airports, nil
}

func (r *MemoryAirportRepository) GetByID(_ context.Context, id string, withAirlines bool) (*domain.Airport, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.airports[id]
	if !ok {
		return nil, ErrNotFound
	}
	if withAirlines {
		a.Airlines = s.airlinesOf(id)
	}
	return &a, nil
}

func (r *MemoryAirportRepository) Create(_ context.Context, airport *domain.Airport) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	airport.CreatedAt, airport.UpdatedAt = now, now
	stored := *airport
	stored.Airlines = nil
	s.airports[airport.ID] = stored
	return nil
}

func (r *MemoryAirportRepository) Update(_ context.Context, airport *domain.Airport) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.airports[airport.ID]
	if !ok {
		return ErrNotFound
	}
	airport.CreatedAt = current.CreatedAt
	airport.UpdatedAt = s.now()
	stored := *airport
	stored.Airlines = nil
	s.airports[airport.ID] = stored
	return nil
}

func (r *MemoryAirportRepository) Delete(_ context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.airports[id]; !ok {
		return ErrNotFound
	}
	delete(s.airports, id)
	for airlineID, ids := range s.links {
		s.links[airlineID] = removeID(ids, id)
	}
	return nil
}

type MemoryAirlineRepository struct {
	store *MemoryStore
}

func NewMemoryAirlineRepository(store *MemoryStore) AirlineRepository {
	return &MemoryAirlineRepository{store: store}
}

func (r *MemoryAirlineRepository) List(_ context.Context, withAirports bool) ([]domain.Airline, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	airlines := make([]domain.Airline, 0, len(s.airlines))
	for _, l := range s.airlines {
		if withAirports {
			l.Airports = s.airportsOf(l.ID)
		}
		airlines = append(airlines, l)
	}
	sort.Slice(airlines, func(i, j int) bool {
		if airlines[i].Name != airlines[j].Name {
			return airlines[i].Name < airlines[j].Name
		}
		return airlines[i].ID < airlines[j].ID
	})
	return airlines, nil
}

func (r *MemoryAirlineRepository) GetByID(_ context.Context, id string, withAirports bool) (*domain.Airline, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.airlines[id]
	if !ok {
		return nil, ErrNotFound
	}
	if withAirports {
		l.Airports = s.airportsOf(id)
	}
	return &l, nil
}

func (r *MemoryAirlineRepository) Create(_ context.Context, airline *domain.Airline) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	airline.CreatedAt, airline.UpdatedAt = now, now
	stored := *airline
	stored.Airports = nil
	s.airlines[airline.ID] = stored
	s.links[airline.ID] = []string{}
	return nil
}

func (r *MemoryAirlineRepository) Update(_ context.Context, airline *domain.Airline) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.airlines[airline.ID]
	if !ok {
		return ErrNotFound
	}
	airline.CreatedAt = current.CreatedAt
	airline.UpdatedAt = s.now()
	stored := *airline
	stored.Airports = nil
	s.airlines[airline.ID] = stored
	return nil
}

func (r *MemoryAirlineRepository) Save(_ context.Context, airline *domain.Airline) (*domain.Airline, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if current, ok := s.airlines[airline.ID]; ok {
		airline.CreatedAt = current.CreatedAt
	} else if airline.CreatedAt.IsZero() {
		airline.CreatedAt = now
	}
	airline.UpdatedAt = now

	stored := *airline
	stored.Airports = nil
	s.airlines[airline.ID] = stored

	ids := make([]string, 0, len(airline.Airports))
	for _, id := range uniqueIDs(airline.Airports) {
		if _, ok := s.airports[id]; ok {
			ids = append(ids, id)
		}
	}
	s.links[airline.ID] = ids
	return airline, nil
}

func (r *MemoryAirlineRepository) Delete(_ context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.airlines[id]; !ok {
		return ErrNotFound
	}
	delete(s.airlines, id)
	delete(s.links, id)
	return nil
}

// airportsOf expects s.mu to be held.
func (s *MemoryStore) airportsOf(airlineID string) []domain.Airport {
	ids := s.links[airlineID]
	airports := make([]domain.Airport, 0, len(ids))
	for _, id := range ids {
		if a, ok := s.airports[id]; ok {
			airports = append(airports, a)
		}
	}
	return airports
}

// airlinesOf expects s.mu to be held.
func (s *MemoryStore) airlinesOf(airportID string) []domain.Airline {
	airlines := make([]domain.Airline, 0)
	for airlineID, ids := range s.links {
		if !containsID(ids, airportID) {
			continue
		}
		if l, ok := s.airlines[airlineID]; ok {
			airlines = append(airlines, l)
		}
	}
	sort.Slice(airlines, func(i, j int) bool {
		if airlines[i].Name != airlines[j].Name {
			return airlines[i].Name < airlines[j].Name
		}
		return airlines[i].ID < airlines[j].ID
	})
	return airlines
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	kept := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}

var (
	_ AirportRepository = (*MemoryAirportRepository)(nil)
	_ AirlineRepository = (*MemoryAirlineRepository)(nil)
)
