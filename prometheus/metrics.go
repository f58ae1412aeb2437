// Package prometheus instruments busroutes services with Prometheus metrics.
// Because the CLI is short-lived, metrics are written to a file in the
// node_exporter textfile format instead of being served over HTTP.
package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/busroutes"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors for one run of the program.
type Metrics struct {
	Registry *prometheus.Registry

	Fetches               *prometheus.CounterVec
	FetchDuration         prometheus.Histogram
	CitiesExtracted       prometheus.Counter
	DestinationsExtracted prometheus.Counter
	DestinationsRejected  prometheus.Counter
}

// NewMetrics creates and registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "busroutes_fetch_total",
			Help: "Number of schedule pages fetched, by result",
		}, []string{"result"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "busroutes_fetch_duration_seconds",
			Help:    "Time taken to fetch a schedule page",
			Buckets: prometheus.DefBuckets,
		}),
		CitiesExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "busroutes_cities_extracted_total",
			Help: "Number of cities extracted from the schedule index",
		}),
		DestinationsExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "busroutes_destinations_extracted_total",
			Help: "Number of destinations extracted from route pages",
		}),
		DestinationsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "busroutes_destinations_rejected_total",
			Help: "Number of destination blocks rejected because stops could not be paired",
		}),
	}
	m.Registry.MustRegister(
		m.Fetches,
		m.FetchDuration,
		m.CitiesExtracted,
		m.DestinationsExtracted,
		m.DestinationsRejected,
	)
	return m
}

// WriteTextfile writes all metrics to path in the textfile collector format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

// Ensure MetricsFetcher implements busroutes.Fetcher.
var _ busroutes.Fetcher = (*MetricsFetcher)(nil)

// MetricsFetcher wraps a Fetcher and records fetch counts and durations.
type MetricsFetcher struct {
	next    busroutes.Fetcher
	metrics *Metrics
}

// NewMetricsFetcher creates a new MetricsFetcher.
func NewMetricsFetcher(next busroutes.Fetcher, metrics *Metrics) *MetricsFetcher {
	return &MetricsFetcher{next: next, metrics: metrics}
}

// Fetch delegates to the wrapped fetcher and records the outcome.
func (f *MetricsFetcher) Fetch(ctx context.Context, url string) (text string, err error) {
	defer func(begin time.Time) {
		f.metrics.FetchDuration.Observe(time.Since(begin).Seconds())
		result := "ok"
		if err != nil {
			result = "error"
		}
		f.metrics.Fetches.WithLabelValues(result).Inc()
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *MetricsFetcher) Close() error {
	return f.next.Close()
}

// Ensure MetricsScheduleService implements busroutes.ScheduleService.
var _ busroutes.ScheduleService = (*MetricsScheduleService)(nil)

// MetricsScheduleService wraps a ScheduleService and counts extracted records.
type MetricsScheduleService struct {
	next    busroutes.ScheduleService
	metrics *Metrics
}

// NewMetricsScheduleService creates a new MetricsScheduleService.
func NewMetricsScheduleService(next busroutes.ScheduleService, metrics *Metrics) *MetricsScheduleService {
	return &MetricsScheduleService{next: next, metrics: metrics}
}

// FindCities delegates to the wrapped service and counts the cities.
func (s *MetricsScheduleService) FindCities(ctx context.Context) ([]busroutes.City, error) {
	cities, err := s.next.FindCities(ctx)
	s.metrics.CitiesExtracted.Add(float64(len(cities)))
	return cities, err
}

// FindRoute delegates to the wrapped service and counts extracted and
// rejected destinations.
func (s *MetricsScheduleService) FindRoute(ctx context.Context, routeID string) (*busroutes.Route, error) {
	route, err := s.next.FindRoute(ctx, routeID)
	if route != nil {
		s.metrics.DestinationsExtracted.Add(float64(len(route.Destinations)))
	}
	s.metrics.DestinationsRejected.Add(float64(len(busroutes.AlignmentErrors(err))))
	return route, err
}
