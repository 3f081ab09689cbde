// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging level, CORS, request limits). AppConfig is where everything
// specific to HRMS Lite lives: the MongoDB connection, pool sizing, and
// attendance policy flags. The struct is passed to most lifecycle hooks,
// so any configuration needed during startup, request handling, or
// shutdown should live here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connections in the driver pool
	MongoMinPoolSize uint64 // Min connections kept warm in the pool

	// Attendance policy
	AttendanceRejectFuture bool // Reject attendance marks dated after today
}
