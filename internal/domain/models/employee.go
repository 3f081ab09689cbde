// internal/domain/models/employee.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is one organizational member. EmployeeID is the externally
// supplied natural key; it is immutable after creation and globally unique
// (enforced by the uniq_employees_employee_id index). All cross-references
// from attendance use EmployeeID, not the Mongo _id.
//
// JSON tags are camelCase because that is the wire contract the browser
// client speaks; bson tags follow the usual snake_case collection style.
type Employee struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID string             `bson:"employee_id" json:"employeeId"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Department string             `bson:"department" json:"department"`
	Position   string             `bson:"position" json:"position"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
