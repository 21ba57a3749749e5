// Package metrics holds the Prometheus collectors for the advisory API.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	soilAssessments        *prometheus.CounterVec
	suitabilityEvaluations *prometheus.CounterVec
	diagnoses              *prometheus.CounterVec
	uploadsTotal           *prometheus.CounterVec
	weatherCache           *prometheus.CounterVec
}

// New registers the collectors on a fresh registry together with the Go
// runtime and process collectors.
func New() (*Metrics, error) {
	return NewWithRegistry(prometheus.NewRegistry(), true)
}

func NewWithRegistry(registry *prometheus.Registry, runtime bool) (*Metrics, error) {
	m := &Metrics{registry: registry}
	m.httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cropadvisor_http_requests_total", Help: "Total number of HTTP requests"},
		[]string{"method", "path", "status_code"},
	)
	m.httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "cropadvisor_http_request_duration_seconds", Help: "Time taken for HTTP requests", Buckets: prometheus.DefBuckets},
		[]string{"method", "path"},
	)
	m.soilAssessments = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cropadvisor_soil_assessments_total", Help: "Soil samples assessed, by pH status"},
		[]string{"ph_status"},
	)
	m.suitabilityEvaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cropadvisor_suitability_evaluations_total", Help: "Crop suitability evaluations, by crop and label"},
		[]string{"crop", "suitability"},
	)
	m.diagnoses = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cropadvisor_pest_diagnoses_total", Help: "Pest diagnoses issued, by pest"},
		[]string{"pest"},
	)
	m.uploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cropadvisor_uploads_total", Help: "Images accepted, by purpose"},
		[]string{"purpose"},
	)
	m.weatherCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cropadvisor_weather_cache_lookups_total", Help: "Weather cache lookups, by result"},
		[]string{"result"},
	)

	if err := registry.Register(m); err != nil {
		return nil, err
	}
	if runtime {
		if err := registry.Register(collectors.NewGoCollector()); err != nil {
			return nil, err
		}
		if err := registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.soilAssessments,
		m.suitabilityEvaluations,
		m.diagnoses,
		m.uploadsTotal,
		m.weatherCache,
	}
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	for _, c := range m.collectors() {
		c.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	for _, c := range m.collectors() {
		c.Collect(ch)
	}
}

func (m *Metrics) RecordHTTPRequest(method, path string, status int, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

func (m *Metrics) RecordSoilAssessment(phStatus string) {
	m.soilAssessments.WithLabelValues(phStatus).Inc()
}

func (m *Metrics) RecordSuitability(crop, label string) {
	m.suitabilityEvaluations.WithLabelValues(crop, label).Inc()
}

func (m *Metrics) RecordDiagnosis(pest string) {
	m.diagnoses.WithLabelValues(pest).Inc()
}

func (m *Metrics) RecordUpload(purpose string) {
	m.uploadsTotal.WithLabelValues(purpose).Inc()
}

func (m *Metrics) RecordWeatherCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.weatherCache.WithLabelValues(result).Inc()
}
