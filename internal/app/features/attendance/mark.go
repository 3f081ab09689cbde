// internal/app/features/attendance/mark.go
package attendance

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	attendancestore "github.com/dalemusser/hrmslite/internal/app/store/attendance"
	employeestore "github.com/dalemusser/hrmslite/internal/app/store/employees"
	"github.com/dalemusser/hrmslite/internal/app/system/days"
	"github.com/dalemusser/hrmslite/internal/app/system/httpjson"
	"github.com/dalemusser/hrmslite/internal/app/system/metrics"
	"github.com/dalemusser/hrmslite/internal/app/system/timeouts"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"go.uber.org/zap"
)

type markAttendanceRequest struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// HandleMark processes POST /api/attendance.
//
// Marking is idempotent per day: a second mark for the same employee and day
// overwrites the stored status (upsert on the unique (employee_id, date)
// index) and still returns 201. The employee must exist; attendance never
// creates one implicitly.
func (h *Handler) HandleMark(w http.ResponseWriter, r *http.Request) {
	var req markAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.Date = strings.TrimSpace(req.Date)
	req.Status = strings.TrimSpace(req.Status)

	if req.EmployeeID == "" || req.Date == "" || req.Status == "" {
		httpjson.Error(w, http.StatusBadRequest, "All fields are required")
		return
	}

	status := models.AttendanceStatus(req.Status)
	if !models.ValidAttendanceStatus(status) {
		httpjson.Error(w, http.StatusBadRequest, "Status must be either Present or Absent")
		return
	}

	day, err := days.Parse(req.Date)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	if h.RejectFuture && days.IsFuture(day, time.Now()) {
		httpjson.Error(w, http.StatusBadRequest, "Attendance cannot be marked for a future date")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	empStore := employeestore.New(h.DB)
	exists, err := empStore.Exists(ctx, req.EmployeeID)
	if err != nil {
		h.Log.Error("employee lookup failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !exists {
		httpjson.Error(w, http.StatusNotFound, "Employee not found")
		return
	}

	attStore := attendancestore.New(h.DB)
	rec, err := attStore.Mark(ctx, req.EmployeeID, day, status)
	if err != nil {
		if err == attendancestore.ErrInvalidStatus {
			httpjson.Error(w, http.StatusBadRequest, "Status must be either Present or Absent")
			return
		}
		h.Log.Error("mark attendance failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Time("date", day),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.ObserveAttendanceMark(rec.Status)
	h.Log.Info("attendance marked",
		zap.String("employee_id", rec.EmployeeID),
		zap.Time("date", rec.Date),
		zap.String("status", string(rec.Status)))
	httpjson.Write(w, http.StatusCreated, rec)
}
