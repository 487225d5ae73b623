package narrative

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts narrative processing outcomes.
type Metrics struct {
	NarrativesProcessed prometheus.Counter
	SentencesProcessed  prometheus.Counter
	SentenceErrors      prometheus.Counter
	EntitiesResolved    prometheus.Counter
	ProcessingSeconds   prometheus.Histogram
}

// NewMetrics registers the processing metrics on the given registerer. A
// nil registerer uses the default one.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		NarrativesProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "narragraph_narratives_processed_total",
			Help: "Narratives fully processed.",
		}),
		SentencesProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "narragraph_sentences_processed_total",
			Help: "Sentences processed, paragraph breaks excluded.",
		}),
		SentenceErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "narragraph_sentence_errors_total",
			Help: "Sentences skipped after a processing error.",
		}),
		EntitiesResolved: factory.NewCounter(prometheus.CounterOpts{
			Name: "narragraph_entities_resolved_total",
			Help: "Narrative-scoped entities registered during resolution.",
		}),
		ProcessingSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "narragraph_processing_seconds",
			Help:    "Wall time to process one narrative.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
	}
}
