package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/PilarGuataquira/202214-BaseProject/config"
	"github.com/PilarGuataquira/202214-BaseProject/internal/logger"
	"github.com/PilarGuataquira/202214-BaseProject/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Storage is the pair of repositories for the configured driver.
type Storage struct {
	Airports repository.AirportRepository
	Airlines repository.AirlineRepository
	Close    func()
}

// OpenStorage connects to the backend named by cfg.Storage.Driver and
// prepares its schema.
func OpenStorage(ctx context.Context, cfg *config.Config, log logger.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := repository.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Storage{
			Airports: repository.NewAirportRepository(pool),
			Airlines: repository.NewAirlineRepository(pool),
			Close:    pool.Close,
		}, nil

	case config.DriverGorm:
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect gorm: %w", err)
		}
		if err := repository.AutoMigrate(db); err != nil {
			return nil, err
		}
		return &Storage{
			Airports: repository.NewGormAirportRepository(db),
			Airlines: repository.NewGormAirlineRepository(db),
			Close: func() {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			},
		}, nil

	case config.DriverMongo:
		client, err := newMongoClient(ctx, cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		db := client.Database(cfg.Mongo.Database)
		return &Storage{
			Airports: repository.NewMongoAirportRepository(db),
			Airlines: repository.NewMongoAirlineRepository(db),
			Close: func() {
				disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := client.Disconnect(disconnectCtx); err != nil {
					log.Warn("mongo disconnect failed", "error", err)
				}
			},
		}, nil

	case config.DriverMemory:
		log.Warn("using in-memory storage, data is lost on restart")
		store := repository.NewMemoryStore()
		return &Storage{
			Airports: repository.NewMemoryAirportRepository(store),
			Airlines: repository.NewMemoryAirlineRepository(store),
			Close:    func() {},
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func newMongoClient(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(cfg.URI)
	if cfg.User != "" && cfg.Password != "" {
		clientOptions.SetAuth(options.Credential{
			Username: cfg.User,
			Password: cfg.Password,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}
