package api

import (
	"time"

	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
)

const dateLayout = "2006-01-02"

type airportRequest struct {
	Name    string `json:"name" binding:"required"`
	Code    string `json:"code" binding:"required"`
	Country string `json:"country" binding:"required"`
	City    string `json:"city" binding:"required"`
}

type airlineRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description" binding:"required"`
	FoundingDate string `json:"founding_date" binding:"required"`
	Website      string `json:"website" binding:"required"`
}

// foundedAt accepts a plain date or an RFC 3339 timestamp.
func (r airlineRequest) foundedAt() (time.Time, error) {
	if t, err := time.Parse(dateLayout, r.FoundingDate); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, r.FoundingDate)
	if err != nil {
		return time.Time{}, domain.ErrInvalid("invalid founding_date %q", r.FoundingDate)
	}
	return t, nil
}

type airportRef struct {
	ID string `json:"id" binding:"required"`
}

type airportResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Code      string            `json:"code"`
	Country   string            `json:"country"`
	City      string            `json:"city"`
	Airlines  []airlineResponse `json:"airlines,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type airlineResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	FoundingDate string            `json:"founding_date"`
	Website      string            `json:"website"`
	Airports     []airportResponse `json:"airports,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func toAirportResponse(a domain.Airport) airportResponse {
	resp := airportResponse{
		ID:        a.ID,
		Name:      a.Name,
		Code:      a.Code,
		Country:   a.Country,
		City:      a.City,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	for _, l := range a.Airlines {
		l.Airports = nil
		resp.Airlines = append(resp.Airlines, toAirlineResponse(l))
	}
	return resp
}

func toAirportResponses(airports []domain.Airport) []airportResponse {
	out := make([]airportResponse, 0, len(airports))
	for _, a := range airports {
		out = append(out, toAirportResponse(a))
	}
	return out
}

func toAirlineResponse(l domain.Airline) airlineResponse {
	resp := airlineResponse{
		ID:           l.ID,
		Name:         l.Name,
		Description:  l.Description,
		FoundingDate: l.FoundedAt.Format(dateLayout),
		Website:      l.Website,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
	for _, a := range l.Airports {
		a.Airlines = nil
		resp.Airports = append(resp.Airports, toAirportResponse(a))
	}
	return resp
}

func toAirlineResponses(airlines []domain.Airline) []airlineResponse {
	out := make([]airlineResponse, 0, len(airlines))
	for _, l := range airlines {
		out = append(out, toAirlineResponse(l))
	}
	return out
}
