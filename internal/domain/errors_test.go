package domain

import (
	"fmt"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestBusinessErrors(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		message string
		kind    string
	}{
		{"airport not found", ErrAirportNotFound(), AirportNotFoundMessage, KindNotFound},
		{"airline not found", ErrAirlineNotFound(), AirlineNotFoundMessage, KindNotFound},
		{"airport not associated", ErrAirportNotAssociated(), AirportNotFoundMessage, KindPreconditionFailed},
		{"invalid", ErrInvalid("name is required"), "name is required", KindBadRequest},
		{"plain", fmt.Errorf("boom"), "boom", KindInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.message, tc.err.Error())
			assert.Equal(t, tc.kind, Kind(tc.err))
		})
	}
}

func TestKind_Wrapped(t *testing.T) {
	err := fmt.Errorf("add airport: %w", ErrAirlineNotFound())

	assert.Equal(t, KindNotFound, Kind(err))
	assert.True(t, errors.Is(err, errors.NotFound))
	assert.False(t, errors.Is(err, PreconditionFailed))
	assert.Equal(t, "", Kind(nil))
}

func TestAirline_FindAndFilter(t *testing.T) {
	airline := &Airline{
		ID: "al-1",
		Airports: []Airport{
			{ID: "ap-1", Name: "El Dorado"},
			{ID: "ap-2", Name: "Rionegro"},
			{ID: "ap-1", Name: "El Dorado"},
		},
	}

	found, ok := airline.FindAirport("ap-2")
	assert.True(t, ok)
	assert.Equal(t, "Rionegro", found.Name)

	_, ok = airline.FindAirport("ap-3")
	assert.False(t, ok)

	assert.Equal(t, []string{"ap-1", "ap-2", "ap-1"}, airline.AirportIDs())
	assert.Equal(t, []Airport{{ID: "ap-2", Name: "Rionegro"}}, airline.WithoutAirport("ap-1"))
}
