package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "challenge_clips",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "challenge_clips",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "route"},
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "challenge_clips",
			Subsystem: "upload",
			Name:      "uploads_total",
			Help:      "Upload attempts by outcome",
		},
		[]string{"outcome"},
	)

	UploadBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "challenge_clips",
			Subsystem: "upload",
			Name:      "upload_bytes_total",
			Help:      "Total bytes written to the object store",
		},
	)

	PayloadReadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "challenge_clips",
			Subsystem: "upload",
			Name:      "payload_reads_total",
			Help:      "Payload read attempts by strategy and status",
		},
		[]string{"strategy", "status"},
	)

	StorageOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "challenge_clips",
			Subsystem: "storage",
			Name:      "operations_total",
			Help:      "Object store operations",
		},
		[]string{"backend", "operation", "status"},
	)

	StorageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "challenge_clips",
			Subsystem: "storage",
			Name:      "duration_seconds",
			Help:      "Object store operation duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 15, 30},
		},
		[]string{"backend", "operation"},
	)

	OrphanedObjectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "challenge_clips",
			Subsystem: "storage",
			Name:      "orphaned_objects_total",
			Help:      "Objects left without a video record",
		},
		[]string{"source", "action"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, route, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, route, status).Inc()
	RequestDuration.WithLabelValues(method, route).Observe(durationSec)
}

// RecordUpload records the outcome of an upload attempt
func RecordUpload(outcome string, bytes int64) {
	UploadsTotal.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		UploadBytesTotal.Add(float64(bytes))
	}
}

// RecordPayloadRead records a payload read strategy attempt
func RecordPayloadRead(strategy, status string) {
	PayloadReadsTotal.WithLabelValues(strategy, status).Inc()
}

// RecordStorageOperation records an object store call
func RecordStorageOperation(backend, operation, status string, durationSec float64) {
	StorageOperationsTotal.WithLabelValues(backend, operation, status).Inc()
	StorageDuration.WithLabelValues(backend, operation).Observe(durationSec)
}

// RecordOrphan records an orphaned object
func RecordOrphan(source, action string) {
	OrphanedObjectsTotal.WithLabelValues(source, action).Inc()
}
