package repository

import (
	"context"
	"errors"
	"time"

	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	airportsCollection = "airports"
	airlinesCollection = "airlines"
)

type airportDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Code      string    `bson:"code"`
	Country   string    `bson:"country"`
	City      string    `bson:"city"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// airlineDocument carries the ordered list of linked airport ids; it is the
// only place a link is stored.
type airlineDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	FoundedAt   time.Time `bson:"founded_at"`
	Website     string    `bson:"website"`
	AirportIDs  []string  `bson:"airport_ids"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (d airportDocument) toDomain() domain.Airport {
	return domain.Airport{
		ID:        d.ID,
		Name:      d.Name,
		Code:      d.Code,
		Country:   d.Country,
		City:      d.City,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (d airlineDocument) toDomain() domain.Airline {
	return domain.Airline{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		FoundedAt:   d.FoundedAt,
		Website:     d.Website,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func mongoNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// MongoAirportRepository implements AirportRepository on a mongo database.
type MongoAirportRepository struct {
	airports *mongo.Collection
	airlines *mongo.Collection
}

func NewMongoAirportRepository(db *mongo.Database) AirportRepository {
	return &MongoAirportRepository{
		airports: db.Collection(airportsCollection),
		airlines: db.Collection(airlinesCollection),
	}
}

func (r *MongoAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.airports.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	airports := make([]domain.Airport, 0)
	for cursor.Next(ctx) {
		var doc airportDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		airports = append(airports, doc.toDomain())
	}
	return airports, cursor.Err()
}

func (r *MongoAirportRepository) GetByID(ctx context.Context, id string, withAirlines bool) (*domain.Airport, error) {
	var doc airportDocument
	if err := r.airports.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, mongoNotFound(err)
	}
	a := doc.toDomain()
	if !withAirlines {
		return &a, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.airlines.Find(ctx, bson.M{"airport_ids": id}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	a.Airlines = make([]domain.Airline, 0)
	for cursor.Next(ctx) {
		var ld airlineDocument
		if err := cursor.Decode(&ld); err != nil {
			return nil, err
		}
		a.Airlines = append(a.Airlines, ld.toDomain())
	}
	return &a, cursor.Err()
}

func (r *MongoAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	now := time.Now().UTC()
	doc := airportDocument{
		ID:        airport.ID,
		Name:      airport.Name,
		Code:      airport.Code,
		Country:   airport.Country,
		City:      airport.City,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.airports.InsertOne(ctx, doc); err != nil {
		return err
	}
	airport.CreatedAt, airport.UpdatedAt = now, now
	return nil
}

func (r *MongoAirportRepository) Update(ctx context.Context, airport *domain.Airport) error {
	now := time.Now().UTC()
	res, err := r.airports.UpdateOne(ctx, bson.M{"_id": airport.ID}, bson.M{"$set": bson.M{
		"name":       airport.Name,
		"code":       airport.Code,
		"country":    airport.Country,
		"city":       airport.City,
		"updated_at": now,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	airport.UpdatedAt = now
	return nil
}

func (r *MongoAirportRepository) Delete(ctx context.Context, id string) error {
	res, err := r.airports.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	_, err = r.airlines.UpdateMany(ctx, bson.M{"airport_ids": id}, bson.M{"$pull": bson.M{"airport_ids": id}})
	return err
}

// MongoAirlineRepository implements AirlineRepository on a mongo database.
type MongoAirlineRepository struct {
	airports *mongo.Collection
	airlines *mongo.Collection
}

func NewMongoAirlineRepository(db *mongo.Database) AirlineRepository {
	return &MongoAirlineRepository{
		airports: db.Collection(airportsCollection),
		airlines: db.Collection(airlinesCollection),
	}
}

func (r *MongoAirlineRepository) List(ctx context.Context, withAirports bool) ([]domain.Airline, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.airlines.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	airlines := make([]domain.Airline, 0)
	for cursor.Next(ctx) {
		var doc airlineDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		l := doc.toDomain()
		if withAirports {
			if l.Airports, err = r.resolveAirports(ctx, doc.AirportIDs); err != nil {
				return nil, err
			}
		}
		airlines = append(airlines, l)
	}
	return airlines, cursor.Err()
}

func (r *MongoAirlineRepository) GetByID(ctx context.Context, id string, withAirports bool) (*domain.Airline, error) {
	var doc airlineDocument
	if err := r.airlines.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, mongoNotFound(err)
	}
	l := doc.toDomain()
	if withAirports {
		airports, err := r.resolveAirports(ctx, doc.AirportIDs)
		if err != nil {
			return nil, err
		}
		l.Airports = airports
	}
	return &l, nil
}

func (r *MongoAirlineRepository) Create(ctx context.Context, airline *domain.Airline) error {
	now := time.Now().UTC()
	doc := airlineDocument{
		ID:          airline.ID,
		Name:        airline.Name,
		Description: airline.Description,
		FoundedAt:   airline.FoundedAt,
		Website:     airline.Website,
		AirportIDs:  []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.airlines.InsertOne(ctx, doc); err != nil {
		return err
	}
	airline.CreatedAt, airline.UpdatedAt = now, now
	return nil
}

func (r *MongoAirlineRepository) Update(ctx context.Context, airline *domain.Airline) error {
	now := time.Now().UTC()
	res, err := r.airlines.UpdateOne(ctx, bson.M{"_id": airline.ID}, bson.M{"$set": bson.M{
		"name":        airline.Name,
		"description": airline.Description,
		"founded_at":  airline.FoundedAt,
		"website":     airline.Website,
		"updated_at":  now,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	airline.UpdatedAt = now
	return nil
}

func (r *MongoAirlineRepository) Save(ctx context.Context, airline *domain.Airline) (*domain.Airline, error) {
	now := time.Now().UTC()
	opts := options.Update().SetUpsert(true)
	_, err := r.airlines.UpdateOne(ctx, bson.M{"_id": airline.ID}, bson.M{
		"$set": bson.M{
			"name":        airline.Name,
			"description": airline.Description,
			"founded_at":  airline.FoundedAt,
			"website":     airline.Website,
			"airport_ids": uniqueIDs(airline.Airports),
			"updated_at":  now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}, opts)
	if err != nil {
		return nil, err
	}
	if airline.CreatedAt.IsZero() {
		airline.CreatedAt = now
	}
	airline.UpdatedAt = now
	return airline, nil
}

func (r *MongoAirlineRepository) Delete(ctx context.Context, id string) error {
	res, err := r.airlines.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// resolveAirports loads the airports for ids, keeping the id order and
// skipping ids whose airport no longer exists.
func (r *MongoAirlineRepository) resolveAirports(ctx context.Context, ids []string) ([]domain.Airport, error) {
	airports := make([]domain.Airport, 0, len(ids))
	if len(ids) == 0 {
		return airports, nil
	}

	cursor, err := r.airports.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	byID := make(map[string]domain.Airport, len(ids))
	for cursor.Next(ctx) {
		var doc airportDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		byID[doc.ID] = doc.toDomain()
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return orderAirports(ids, byID), nil
}

func orderAirports(ids []string, byID map[string]domain.Airport) []domain.Airport {
	airports := make([]domain.Airport, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			airports = append(airports, a)
		}
	}
	return airports
}

var (
	_ AirportRepository = (*MongoAirportRepository)(nil)
	_ AirlineRepository = (*MongoAirlineRepository)(nil)
)
