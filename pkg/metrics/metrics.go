package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const (
	StatusOK       = "ok"
	StatusRejected = "rejected"
	StatusFailed   = "failed"

	NotificationSent    = "sent"
	NotificationFailed  = "failed"
	NotificationSkipped = "skipped"
)

// Collector owns a private registry. A nil *Collector records nothing.
type Collector struct {
	registry      *prometheus.Registry
	transactions  *prometheus.CounterVec
	amounts       *prometheus.HistogramVec
	notifications *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

func New() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		transactions: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "gobank_transactions_total",
			Help: "Money movements by type and outcome",
		}, []string{"type", "status"}),
		amounts: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gobank_transaction_amount",
			Help:    "Amounts of accepted money movements",
			Buckets: []float64{500, 1000, 5000, 10000, 50000, 100000, 500000},
		}, []string{"type"}),
		notifications: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "gobank_notifications_total",
			Help: "Notification deliveries by outcome",
		}, []string{"status"}),
		httpDuration: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gobank_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "code"}),
	}
}

func (c *Collector) RecordTransaction(txType, status string, amount decimal.Decimal) {
	if c == nil {
		return
	}
	c.transactions.WithLabelValues(txType, status).Inc()
	if status == StatusOK {
		c.amounts.WithLabelValues(txType).Observe(amount.InexactFloat64())
	}
}

func (c *Collector) RecordNotification(status string) {
	if c == nil {
		return
	}
	c.notifications.WithLabelValues(status).Inc()
}

func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware observes request latency labelled by the matched chi route pattern.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	if c == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		c.httpDuration.WithLabelValues(r.Method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}
