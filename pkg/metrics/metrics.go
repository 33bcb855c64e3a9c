// Package metrics exposes Prometheus counters for the record endpoints.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values
const (
	ResultOK         = "ok"
	ResultIncomplete = "incomplete"
	ResultMalformed  = "malformed"
	ResultError      = "error"
)

var (
	// RecordsSaved counts POST /guardar outcomes
	RecordsSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "temporizadores_records_saved_total",
			Help: "Record save attempts by result",
		},
		[]string{"result"},
	)

	// Exports counts GET /exportar-csv outcomes
	Exports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "temporizadores_exports_total",
			Help: "CSV exports by result",
		},
		[]string{"result"},
	)

	// ExportedRows counts records written to CSV exports
	ExportedRows = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "temporizadores_exported_rows_total",
			Help: "Records written to CSV exports",
		},
	)

	// EventPublishFailures counts records that could not be announced
	EventPublishFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "temporizadores_event_publish_failures_total",
			Help: "Saved records whose event could not be published",
		},
	)
)
