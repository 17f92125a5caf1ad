package audit

import (
	"context"

	"github.com/PilarGuataquira/202214-BaseProject/internal/kafka"
	"github.com/PilarGuataquira/202214-BaseProject/internal/logger"
	"github.com/PilarGuataquira/202214-BaseProject/internal/metrics"
)

// Recorder writes one audit line per association event.
type Recorder struct {
	log     logger.Logger
	metrics *metrics.Metrics
}

func NewRecorder(log logger.Logger, m *metrics.Metrics) *Recorder {
	return &Recorder{log: log, metrics: m}
}

// Record never fails; unknown event types are logged and skipped so the
// consumer keeps committing.
func (r *Recorder) Record(_ context.Context, event kafka.AssociationEvent) error {
	switch event.Type {
	case kafka.EventAirportAdded, kafka.EventAirportsReplaced, kafka.EventAirportRemoved:
	default:
		r.log.Warn("skipping unknown association event", "type", event.Type, "airline_id", event.AirlineID)
		r.count("unknown")
		return nil
	}

	r.log.Info("association changed",
		"type", event.Type,
		"airline_id", event.AirlineID,
		"airport_ids", event.AirportIDs,
		"occurred_at", event.OccurredAt,
	)
	r.count(event.Type)
	return nil
}

func (r *Recorder) count(eventType string) {
	if r.metrics != nil {
		r.metrics.EventsConsumed.WithLabelValues(eventType).Inc()
	}
}
