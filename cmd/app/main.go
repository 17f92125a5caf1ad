package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PilarGuataquira/202214-BaseProject/config"
	"github.com/PilarGuataquira/202214-BaseProject/internal/bootstrap"
	"github.com/PilarGuataquira/202214-BaseProject/internal/cache"
	"github.com/PilarGuataquira/202214-BaseProject/internal/kafka"
	"github.com/PilarGuataquira/202214-BaseProject/internal/logger"
	"github.com/PilarGuataquira/202214-BaseProject/internal/metrics"
	"github.com/PilarGuataquira/202214-BaseProject/internal/service/airlines"
	"github.com/PilarGuataquira/202214-BaseProject/internal/service/airports"
	"github.com/PilarGuataquira/202214-BaseProject/internal/service/associations"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLog := logger.NewLogger(cfg.Log.Level)
	defer appLog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(cfg.Metrics.Namespace, reg)

	storage, err := bootstrap.OpenStorage(ctx, cfg, appLog)
	if err != nil {
		appLog.Fatal("open storage", "driver", cfg.Storage.Driver, "error", err)
	}
	defer storage.Close()

	health := map[string]bootstrap.HealthCheck{}

	airportOpts := []airports.Option{airports.WithLogger(appLog.With("service", "airports"))}
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.AirportsTTLSeconds)*time.Second)
		defer redisCache.Close()
		airportOpts = append(airportOpts, airports.WithCache(redisCache))
		health["redis"] = redisCache.Ping
	}

	associationOpts := []associations.Option{
		associations.WithLogger(appLog.With("service", "associations")),
		associations.WithMetrics(m),
	}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		associationOpts = append(associationOpts, associations.WithProducer(producer, cfg.Kafka.AssociationTopic))
		health["kafka"] = producer.CheckConnection
	}

	services := bootstrap.Services{
		Airports:     airports.NewAirportService(storage.Airports, airportOpts...),
		Airlines:     airlines.NewAirlineService(storage.Airlines, appLog.With("service", "airlines")),
		Associations: associations.NewAssociationService(storage.Airports, storage.Airlines, associationOpts...),
	}

	gin.SetMode(gin.ReleaseMode)
	router := bootstrap.NewRouter(cfg, services, bootstrap.RouterOptions{
		Logger:   appLog.With("component", "http"),
		Metrics:  m,
		Gatherer: reg,
		Health:   health,
	})

	if err := bootstrap.Run(ctx, cfg, router, appLog); err != nil {
		appLog.Error("server error", "error", err)
	}
}
