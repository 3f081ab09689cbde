// internal/app/features/attendance/handler.go
package attendance

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the attendance feature.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger

	// RejectFuture gates the future-date validation rule
	// (attendance_reject_future config key, default on).
	RejectFuture bool
}

// NewHandler constructs an attendance Handler.
func NewHandler(db *mongo.Database, rejectFuture bool, logger *zap.Logger) *Handler {
	return &Handler{
		DB:           db,
		Log:          logger,
		RejectFuture: rejectFuture,
	}
}
