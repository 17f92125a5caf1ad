package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/PilarGuataquira/202214-BaseProject/config"
	"github.com/PilarGuataquira/202214-BaseProject/internal/audit"
	"github.com/PilarGuataquira/202214-BaseProject/internal/kafka"
	"github.com/PilarGuataquira/202214-BaseProject/internal/logger"
	"github.com/PilarGuataquira/202214-BaseProject/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	kafkaGo "github.com/segmentio/kafka-go"
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

	workerLog := logger.NewLogger(cfg.Log.Level).With("component", "worker")
	if len(cfg.Kafka.Brokers) == 0 {
		workerLog.Fatal("kafka brokers are required for the worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.NewMetrics(cfg.Metrics.Namespace, prometheus.DefaultRegisterer)
	recorder := audit.NewRecorder(workerLog, m)

	if cfg.Metrics.Address != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
				workerLog.Error("metrics listener stopped", "error", err)
			}
		}()
	}

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.AssociationTopic)
	defer consumer.Close()

	workerLog.Info("consuming association events", "topic", cfg.Kafka.AssociationTopic, "group_id", cfg.Kafka.GroupID)
	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		event, err := kafka.DecodeAssociationEvent(msg)
		if err != nil {
			workerLog.Warn("dropping undecodable message", "offset", msg.Offset, "error", err)
			return nil
		}
		return recorder.Record(ctx, event)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		workerLog.Error("consumer stopped", "error", err)
		return
	}
	workerLog.Info("worker shut down")
}
