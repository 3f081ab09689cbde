// internal/app/features/employees/delete.go
package employees

import (
	"context"
	"net/http"

	attendancestore "github.com/dalemusser/hrmslite/internal/app/store/attendance"
	employeestore "github.com/dalemusser/hrmslite/internal/app/store/employees"
	"github.com/dalemusser/hrmslite/internal/app/system/httpjson"
	"github.com/dalemusser/hrmslite/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleDelete processes DELETE /api/employees/{employeeID}.
//
// Cascade policy: attendance records are purged first, then the employee
// document. There is no transaction; if the second step fails after the
// first, the employee remains with an empty attendance history, which is a
// consistent (if surprising) state. The reverse order could instead strand
// attendance records with no owning employee.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	empStore := employeestore.New(h.DB)
	attStore := attendancestore.New(h.DB)

	exists, err := empStore.Exists(ctx, employeeID)
	if err != nil {
		h.Log.Error("employee lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !exists {
		httpjson.Error(w, http.StatusNotFound, "Employee not found")
		return
	}

	purged, err := attStore.DeleteByEmployee(ctx, employeeID)
	if err != nil {
		h.Log.Error("attendance purge failed", zap.String("employee_id", employeeID), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := empStore.Delete(ctx, employeeID); err != nil {
		if err == mongo.ErrNoDocuments {
			// Deleted concurrently after the existence check; the attendance
			// purge already ran, which the other deleter would have done too.
			httpjson.Error(w, http.StatusNotFound, "Employee not found")
			return
		}
		h.Log.Error("delete employee failed", zap.String("employee_id", employeeID), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Log.Info("employee deleted",
		zap.String("employee_id", employeeID),
		zap.Int64("attendance_purged", purged))
	httpjson.Message(w, http.StatusOK, "Employee deleted successfully")
}
