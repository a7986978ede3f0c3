package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Registry = prometheus.NewRegistry()

	PairsGenerated = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "glslbind_pairs_generated_total",
		Help: "Total number of shader pairs a binding was written for",
	})
	PairsFailed = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "glslbind_pairs_failed_total",
		Help: "Total number of shader pairs that failed, by error kind",
	}, []string{"kind"})
	UniformsEmitted = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "glslbind_uniforms_emitted_total",
		Help: "Total number of uniform fields emitted",
	})
	AttributesEmitted = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "glslbind_attributes_emitted_total",
		Help: "Total number of vertex attribute fields emitted",
	})
	PairDuration = promauto.With(Registry).NewHistogram(prometheus.HistogramOpts{
		Name:    "glslbind_pair_duration_seconds",
		Help:    "Time spent compiling, introspecting and emitting one shader pair",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})
)

// Init makes every failure kind show up with a zero value.
func Init(kinds []string) {
	for _, k := range kinds {
		PairsFailed.WithLabelValues(k).Add(0)
	}
}

// WriteTextfile writes the registry in the text exposition format, for
// node_exporter's textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("could not write metrics to %s: %w", path, err)
	}
	return nil
}
