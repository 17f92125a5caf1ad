package domain

import "time"

type Airline struct {
	ID          string
	Name        string
	Description string
	FoundedAt   time.Time
	Website     string
	Airports    []Airport
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FindAirport returns the first linked airport with the given id.
func (a *Airline) FindAirport(airportID string) (*Airport, bool) {
	for i := range a.Airports {
		if a.Airports[i].ID == airportID {
			return &a.Airports[i], true
		}
	}
	return nil, false
}

// WithoutAirport returns the linked airports minus every entry with the given id.
func (a *Airline) WithoutAirport(airportID string) []Airport {
	kept := make([]Airport, 0, len(a.Airports))
	for _, ap := range a.Airports {
		if ap.ID != airportID {
			kept = append(kept, ap)
		}
	}
	return kept
}

// AirportIDs returns the ids of the linked airports in order.
func (a *Airline) AirportIDs() []string {
	ids := make([]string, 0, len(a.Airports))
	for _, ap := range a.Airports {
		ids = append(ids, ap.ID)
	}
	return ids
}
