// internal/domain/models/attendance.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceStatus is the presence mark for one employee on one day.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// ValidAttendanceStatus reports whether s is one of the two permitted marks.
func ValidAttendanceStatus(s AttendanceStatus) bool {
	return s == StatusPresent || s == StatusAbsent
}

// AttendanceRecord is one employee's presence status for one calendar day.
// Date is always normalized to 00:00:00 UTC before it is written or compared;
// exactly one document exists per (employee_id, date) pair, enforced by the
// uniq_attendance_employee_date index. A second mark for the same day
// overwrites the status (upsert), it never creates a sibling document.
type AttendanceRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID string             `bson:"employee_id" json:"employeeId"`
	Date       time.Time          `bson:"date" json:"date"`
	Status     AttendanceStatus   `bson:"status" json:"status"`
}
