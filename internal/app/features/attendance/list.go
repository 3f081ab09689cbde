// internal/app/features/attendance/list.go
package attendance

import (
	"context"
	"net/http"

	attendancestore "github.com/dalemusser/hrmslite/internal/app/store/attendance"
	employeestore "github.com/dalemusser/hrmslite/internal/app/store/employees"
	"github.com/dalemusser/hrmslite/internal/app/system/httpjson"
	"github.com/dalemusser/hrmslite/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleListByEmployee processes GET /api/attendance/{employeeID}. Records
// come back sorted by date descending (most recent first); that ordering is
// part of the contract.
func (h *Handler) HandleListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	empStore := employeestore.New(h.DB)
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

	attStore := attendancestore.New(h.DB)
	records, err := attStore.ListByEmployee(ctx, employeeID)
	if err != nil {
		h.Log.Error("list attendance failed", zap.String("employee_id", employeeID), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, records)
}
