package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReceiptsTotal counts receipt computations by outcome.
	ReceiptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salestax_receipts_total",
		Help: "Number of receipts computed, by status.",
	}, []string{"status"})

	// ReceiptDuration observes end-to-end receipt computation time.
	ReceiptDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "salestax_receipt_duration_seconds",
		Help:    "Time taken to parse orders and compute a receipt.",
		Buckets: prometheus.DefBuckets,
	})

	// ItemsPerReceipt observes distinct cart lines per receipt.
	ItemsPerReceipt = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "salestax_items_per_receipt",
		Help:    "Distinct cart lines per computed receipt.",
		Buckets: []float64{1, 2, 5, 10, 25, 50},
	})

	// ParseFailuresTotal counts rejected order lines.
	ParseFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salestax_parse_failures_total",
		Help: "Number of order inputs rejected by the parser.",
	})

	// HTTPRequestDuration observes request latency by route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "salestax_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)
