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
)

// Notification results.
const (
	ResultSent      = "sent"
	ResultDuplicate = "duplicate"
	ResultNotFound  = "not_found"
	ResultInvalid   = "invalid"
	ResultFailed    = "failed"
)

var (
	leaveNotifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hris",
		Name:      "leave_notifications_total",
		Help:      "Total number of leave decision notifications broken down by action and result.",
	}, []string{"action", "result"})

	leaveNotificationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hris",
		Name:      "leave_notification_latency_seconds",
		Help:      "Latency distribution for leave decision notifications.",
		Buckets: []float64{
			0.01, 0.02, 0.05,
			0.1, 0.2, 0.5,
			1, 2, 5, 10,
		},
	}, []string{"action", "result"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hris",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests broken down by method, route and status.",
	}, []string{"method", "route", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hris",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency distribution for HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func RecordLeaveNotification(action, result string, latency time.Duration) {
	labels := prometheus.Labels{
		"action": action,
		"result": result,
	}
	leaveNotifications.With(labels).Inc()
	leaveNotificationLatency.With(labels).Observe(latency.Seconds())
}

// LeaveNotificationCount reads the counter for one label pair.
func LeaveNotificationCount(action, result string) prometheus.Counter {
	return leaveNotifications.WithLabelValues(action, result)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request counts and latency labelled by chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		httpLatency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
