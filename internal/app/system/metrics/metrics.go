// Package metrics instruments the HTTP surface with Prometheus. The
// collectors are registered via promauto and exposed at /metrics by the
// bootstrap router.
package metrics

import (
	"time"

	"github.com/dalemusser/hrmslite/internal/domain/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hrmslite_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hrmslite_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	attendanceMarksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hrmslite_attendance_marks_total",
		Help: "Count of successful attendance marks by status",
	}, []string{"status"})
)

// ObserveHTTPRequest records one handled request.
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// ObserveAttendanceMark counts a successful mark (create or overwrite).
func ObserveAttendanceMark(status models.AttendanceStatus) {
	attendanceMarksTotal.WithLabelValues(string(status)).Inc()
}
