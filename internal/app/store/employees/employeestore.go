// internal/app/store/employees/employeestore.go
package employeestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/hrmslite/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("employees")}
}

var (
	// ErrMissingFields is the single combined validation failure for any
	// absent field; callers do not get per-field detail.
	ErrMissingFields = errors.New("all fields are required")

	// ErrDuplicateEmployeeID is returned when the employee_id is already
	// taken. Detection is after-the-fact from the unique index, never a
	// pre-check, so two concurrent creates cannot both win.
	ErrDuplicateEmployeeID = errors.New("employee ID already exists")
)

// Create inserts a new employee. All five fields must be non-empty; the
// record is stamped with a fresh ObjectID and created_at in UTC.
func (s *Store) Create(ctx context.Context, e models.Employee) (models.Employee, error) {
	e.EmployeeID = strings.TrimSpace(e.EmployeeID)
	e.Name = strings.TrimSpace(e.Name)
	e.Email = strings.TrimSpace(e.Email)
	e.Department = strings.TrimSpace(e.Department)
	e.Position = strings.TrimSpace(e.Position)

	if e.EmployeeID == "" || e.Name == "" || e.Email == "" || e.Department == "" || e.Position == "" {
		return models.Employee{}, ErrMissingFields
	}

	e.ID = primitive.NewObjectID()
	e.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, e); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Employee{}, ErrDuplicateEmployeeID
		}
		return models.Employee{}, err
	}
	return e, nil
}

// List returns all employees in the collection's natural order. There is no
// pagination; callers must not rely on any particular ordering.
func (s *Store) List(ctx context.Context) ([]models.Employee, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	employees := []models.Employee{}
	if err := cur.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// GetByEmployeeID loads an employee by its natural key. Returns
// mongo.ErrNoDocuments when absent.
func (s *Store) GetByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error) {
	var e models.Employee
	if err := s.c.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Exists checks whether an employee with the given employee_id exists.
func (s *Store) Exists(ctx context.Context, employeeID string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"employee_id": employeeID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the employee document. Returns mongo.ErrNoDocuments when no
// employee matched. Attendance cleanup is the caller's responsibility (see
// the employees feature's delete handler).
func (s *Store) Delete(ctx context.Context, employeeID string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
