package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	UploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qarag_uploads_total",
			Help: "Total number of document uploads by outcome",
		},
		[]string{"status"},
	)

	ChunksIndexed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "qarag_chunks_indexed_total",
			Help: "Total number of chunks inserted into the vector index",
		},
	)

	IngestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "qarag_ingest_duration_seconds",
			Help:    "Time spent extracting, chunking and embedding one document",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
	)

	ChatRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qarag_chat_requests_total",
			Help: "Total number of chat requests by outcome",
		},
		[]string{"status"},
	)

	GenerationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qarag_generation_duration_seconds",
			Help:    "Time spent retrieving context and generating one answer",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"model"},
	)

	ModelLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qarag_model_loads_total",
			Help: "Total number of language model loads",
		},
		[]string{"model"},
	)

	WorkerRejections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "qarag_worker_rejections_total",
			Help: "Requests rejected because every worker slot was busy",
		},
	)
)

var initOnce sync.Once

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(UploadsTotal)
		prometheus.MustRegister(ChunksIndexed)
		prometheus.MustRegister(IngestDuration)
		prometheus.MustRegister(ChatRequests)
		prometheus.MustRegister(GenerationDuration)
		prometheus.MustRegister(ModelLoads)
		prometheus.MustRegister(WorkerRejections)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
