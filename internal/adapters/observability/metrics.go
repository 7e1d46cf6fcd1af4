package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Plans = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "planner", Name: "plans_total", Help: "Planning attempts by outcome."},
		[]string{"outcome"},
	)
	SampledItems = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "planner", Name: "sampled_items_total", Help: "Items placed in itineraries."},
		[]string{"kind"}, // activities|restaurants
	)
	CatalogLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "planner", Name: "catalog_lookups_total", Help: "Destination lookups."},
		[]string{"result"}, // hit|miss
	)
	InputErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "planner", Name: "input_errors_total", Help: "Rejected answers by field."},
		[]string{"field"},
	)
	ItinerarySize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "planner", Name: "itinerary_items",
			Help:    "Items per sampled list.",
			Buckets: prometheus.LinearBuckets(0, 1, 8),
		},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(Plans, SampledItems, CatalogLookups, InputErrors, ItinerarySize)
	return reg
}

// WriteTextfile dumps the registry in the text exposition format, for
// pickup by a node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}

func ObservePlan(outcome string) { Plans.WithLabelValues(outcome).Inc() }

func ObserveSampled(kind string, n int) {
	SampledItems.WithLabelValues(kind).Add(float64(n))
	ItinerarySize.Observe(float64(n))
}

func ObserveLookup(result string) { CatalogLookups.WithLabelValues(result).Inc() }

func ObserveInputError(field string) { InputErrors.WithLabelValues(field).Inc() }

// Recorder adapts the package-level collectors to domain.Recorder.
type Recorder struct{}

func (Recorder) ObservePlan(outcome string)        { ObservePlan(outcome) }
func (Recorder) ObserveSampled(kind string, n int) { ObserveSampled(kind, n) }
func (Recorder) ObserveLookup(result string)       { ObserveLookup(result) }
func (Recorder) ObserveInputError(field string)    { ObserveInputError(field) }
