package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Orders accepted through POST /placeOrder
	OrdersPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_orders_placed_total",
		Help: "Total number of orders placed",
	})

	// Latency of invoice PDF generation
	InvoiceRenderDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "store_invoice_render_seconds",
		Help:    "Latency of invoice PDF rendering",
		Buckets: prometheus.DefBuckets,
	})

	// Failed status transition attempts (value outside the allowed set)
	StatusRejections = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_status_rejections_total",
		Help: "How many status updates were rejected as invalid",
	})
)

func Init() {
	prometheus.MustRegister(OrdersPlaced, InvoiceRenderDuration, StatusRejections)
}
