// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	attendancefeature "github.com/dalemusser/hrmslite/internal/app/features/attendance"
	employeesfeature "github.com/dalemusser/hrmslite/internal/app/features/employees"
	healthfeature "github.com/dalemusser/hrmslite/internal/app/features/health"
	homefeature "github.com/dalemusser/hrmslite/internal/app/features/home"
	"github.com/dalemusser/hrmslite/internal/app/system/metrics"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// HRMS Lite mounts the JSON API under /api, the health and metrics
// endpoints for operators, and the static single-page client at the root.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Request counters and latency histograms for every route.
	r.Use(metrics.Middleware)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.HRMSLiteMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// JSON API
	r.Route("/api", func(api chi.Router) {
		employeesHandler := employeesfeature.NewHandler(deps.HRMSLiteMongoDatabase, logger)
		api.Mount("/employees", employeesfeature.Routes(employeesHandler))

		attendanceHandler := attendancefeature.NewHandler(deps.HRMSLiteMongoDatabase, appCfg.AttendanceRejectFuture, logger)
		api.Mount("/attendance", attendancefeature.Routes(attendanceHandler))
	})

	// Single-page client
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	return r, nil
}
