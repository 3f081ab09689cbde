package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dalemusser/hrmslite/internal/app/system/indexes"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// EmployeeInput returns a valid employee document for the given natural key,
// ready to feed to the employees store. Tests tweak fields as needed.
func EmployeeInput(employeeID, name string) models.Employee {
	return models.Employee{
		EmployeeID: employeeID,
		Name:       name,
		Email:      fmt.Sprintf("%s@example.com", employeeID),
		Department: "Engineering",
		Position:   "Developer",
	}
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// EnsureIndexes creates the unique indexes, for tests that exercise
// duplicate-key behavior.
func (f *Fixtures) EnsureIndexes(ctx context.Context) {
	f.t.Helper()
	if err := indexes.EnsureAll(ctx, f.db); err != nil {
		f.t.Fatalf("failed to ensure indexes: %v", err)
	}
}

// CreateEmployee inserts a test employee with the given natural key and name.
func (f *Fixtures) CreateEmployee(ctx context.Context, employeeID, name string) models.Employee {
	f.t.Helper()

	emp := EmployeeInput(employeeID, name)
	emp.ID = primitive.NewObjectID()
	emp.CreatedAt = time.Now().UTC()

	if _, err := f.db.Collection("employees").InsertOne(ctx, emp); err != nil {
		f.t.Fatalf("failed to create test employee: %v", err)
	}
	return emp
}

// CreateAttendance inserts a test attendance record directly (bypassing the
// store's upsert) for the given employee and day.
func (f *Fixtures) CreateAttendance(ctx context.Context, employeeID string, date time.Time, status models.AttendanceStatus) models.AttendanceRecord {
	f.t.Helper()

	rec := models.AttendanceRecord{
		ID:         primitive.NewObjectID(),
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	}
	if _, err := f.db.Collection("attendance").InsertOne(ctx, rec); err != nil {
		f.t.Fatalf("failed to create test attendance record: %v", err)
	}
	return rec
}
