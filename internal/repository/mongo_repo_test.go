package repository

import (
	"testing"
	"time"

	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestAirlineDocument_BSONRoundTrip(t *testing.T) {
	founded := time.Date(1919, 12, 5, 0, 0, 0, 0, time.UTC)
	doc := airlineDocument{
		ID:         "al-1",
		Name:       "Avianca",
		FoundedAt:  founded,
		Website:    "https://www.avianca.com",
		AirportIDs: []string{"ap-2", "ap-1"},
	}

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var fields bson.M
	require.NoError(t, bson.Unmarshal(raw, &fields))
	assert.Equal(t, "al-1", fields["_id"])
	assert.Contains(t, fields, "airport_ids")

	l := doc.toDomain()
	assert.Equal(t, "Avianca", l.Name)
	assert.Equal(t, founded, l.FoundedAt)
	assert.Nil(t, l.Airports)
}

func TestOrderAirports(t *testing.T) {
	byID := map[string]domain.Airport{
		"ap-1": {ID: "ap-1", Code: "BOG"},
		"ap-2": {ID: "ap-2", Code: "MDE"},
	}

	got := orderAirports([]string{"ap-2", "missing", "ap-1"}, byID)

	assert.Equal(t, []domain.Airport{{ID: "ap-2", Code: "MDE"}, {ID: "ap-1", Code: "BOG"}}, got)
}

func TestMongoNotFound(t *testing.T) {
	assert.ErrorIs(t, mongoNotFound(mongo.ErrNoDocuments), ErrNotFound)
	assert.Equal(t, assert.AnError, mongoNotFound(assert.AnError))
}

func TestUniqueIDs(t *testing.T) {
	ids := uniqueIDs([]domain.Airport{{ID: "a"}, {ID: "b"}, {ID: "a"}, {ID: "c"}})
	assert.Equal(t, []string{"a", "b", "c"}, ids)
	assert.Empty(t, uniqueIDs(nil))
}
