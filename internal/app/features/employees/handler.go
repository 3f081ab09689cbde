// internal/app/features/employees/handler.go
package employees

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the employees feature.
// Handlers are stateless between requests; all state lives in Mongo.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs an employees Handler. It is called from the
// bootstrap BuildHandler function, where the DB and logger are already
// initialized.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
	}
}
