package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveAssociation(t *testing.T) {
	m := NewMetrics("test", prometheus.NewRegistry())

	m.ObserveAssociation("add", "ok")
	m.ObserveAssociation("add", "ok")
	m.ObserveAssociation("remove", "NOT_FOUND")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AssociationOps.WithLabelValues("add", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AssociationOps.WithLabelValues("remove", "NOT_FOUND")))
}

func TestObserveAssociation_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveAssociation("add", "ok") })
}
