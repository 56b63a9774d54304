package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestServiceMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewServiceMetrics(reg)

	m.ObserveDoctorSearch("rating", 1)
	m.ObserveDoctorSearch("rating", 0)
	m.ObserveBooking("confirmed")
	m.ObserveBooking("confirmed")
	m.ObserveBooking("missing_information")
	m.ObserveAssistantMessage("user")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.doctorSearchTotal.WithLabelValues("rating", "true")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.doctorSearchTotal.WithLabelValues("rating", "false")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.bookingTotal.WithLabelValues("confirmed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.assistantMessages.WithLabelValues("user")))
}

func TestNilServiceMetricsIsSafe(t *testing.T) {
	var m *ServiceMetrics

	assert.NotPanics(t, func() {
		m.ObserveDoctorSearch("price", 3)
		m.ObserveBooking("confirmed")
		m.ObserveAssistantMessage("assistant")
		m.ObserveConsultationEvent("started")
		m.ObserveHTTPRequest("GET", 200, 0.01)
	})
}
