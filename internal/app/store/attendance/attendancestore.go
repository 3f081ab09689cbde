// internal/app/store/attendance/attendancestore.go
package attendancestore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/hrmslite/internal/app/system/days"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("attendance")}
}

// ErrInvalidStatus is returned for any status other than Present or Absent.
var ErrInvalidStatus = errors.New(`status must be "Present" or "Absent"`)

// Mark records status for (employeeID, date) with upsert semantics: one
// atomic insert-or-update keyed on the unique (employee_id, date) index. A
// second mark for the same day overwrites the status instead of erroring, so
// repeated marks converge on the last written value. The date is
// day-normalized before it touches the key.
//
// Marking does not verify the employee exists; the handler checks the
// directory first. Storage-level referential integrity is deliberately not
// enforced.
func (s *Store) Mark(ctx context.Context, employeeID string, date time.Time, status models.AttendanceStatus) (models.AttendanceRecord, error) {
	if !models.ValidAttendanceStatus(status) {
		return models.AttendanceRecord{}, ErrInvalidStatus
	}
	day := days.Normalize(date)

	filter := bson.M{"employee_id": employeeID, "date": day}
	update := bson.M{
		"$set":         bson.M{"status": status},
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID(), "employee_id": employeeID, "date": day},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var rec models.AttendanceRecord
	if err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&rec); err != nil {
		return models.AttendanceRecord{}, err
	}
	return rec, nil
}

// ListByEmployee returns every attendance record for the employee sorted by
// date descending. The ordering is part of the API contract, not incidental.
func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]models.AttendanceRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"employee_id": employeeID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	records := []models.AttendanceRecord{}
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteByEmployee removes all attendance records for an employee. Used by
// the cascading employee delete; runs before the employee document is
// removed. Returns the number of documents deleted.
func (s *Store) DeleteByEmployee(ctx context.Context, employeeID string) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountByEmployee returns the number of attendance records for an employee.
func (s *Store) CountByEmployee(ctx context.Context, employeeID string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"employee_id": employeeID})
}
