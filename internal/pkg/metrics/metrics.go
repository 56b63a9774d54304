package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "medconnect"

// ServiceMetrics exposes counters and histograms for the patient-facing flows.
// A nil *ServiceMetrics is valid and records nothing.
type ServiceMetrics struct {
	doctorSearchTotal   *prometheus.CounterVec
	doctorSearchResults *prometheus.HistogramVec
	bookingTotal        *prometheus.CounterVec
	assistantMessages   *prometheus.CounterVec
	consultationEvents  *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

func NewServiceMetrics(reg prometheus.Registerer) *ServiceMetrics {
	m := &ServiceMetrics{
		doctorSearchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "doctors",
			Name:      "search_total",
			Help:      "Total doctor directory searches",
		}, []string{"sort", "empty"}),
		doctorSearchResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "doctors",
			Name:      "search_results",
			Help:      "Number of doctors returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50},
		}, []string{"sort"}),
		bookingTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "booking_total",
			Help:      "Appointment booking attempts by outcome",
		}, []string{"outcome"}),
		assistantMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "assistant",
			Name:      "messages_total",
			Help:      "Messages exchanged with the symptom assistant",
		}, []string{"role"}),
		consultationEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "consultations",
			Name:      "events_total",
			Help:      "Consultation lifecycle and media events",
		}, []string{"event"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.doctorSearchTotal,
		m.doctorSearchResults,
		m.bookingTotal,
		m.assistantMessages,
		m.consultationEvents,
		m.httpRequestDuration,
	)
	return m
}

func (m *ServiceMetrics) ObserveDoctorSearch(sortKey string, resultCount int) {
	if m == nil {
		return
	}
	m.doctorSearchTotal.WithLabelValues(sortKey, strconv.FormatBool(resultCount == 0)).Inc()
	m.doctorSearchResults.WithLabelValues(sortKey).Observe(float64(resultCount))
}

func (m *ServiceMetrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingTotal.WithLabelValues(outcome).Inc()
}

func (m *ServiceMetrics) ObserveAssistantMessage(role string) {
	if m == nil {
		return
	}
	m.assistantMessages.WithLabelValues(role).Inc()
}

func (m *ServiceMetrics) ObserveConsultationEvent(event string) {
	if m == nil {
		return
	}
	m.consultationEvents.WithLabelValues(event).Inc()
}

func (m *ServiceMetrics) ObserveHTTPRequest(method string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(seconds)
}
