// internal/app/features/employees/create.go
package employees

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	employeestore "github.com/dalemusser/hrmslite/internal/app/store/employees"
	"github.com/dalemusser/hrmslite/internal/app/system/httpjson"
	"github.com/dalemusser/hrmslite/internal/app/system/timeouts"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"go.uber.org/zap"
)

type createEmployeeRequest struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

// HandleCreate processes POST /api/employees.
//
// 201 with the stored employee on success; 400 when any field is missing or
// the employee ID is already taken; 500 otherwise. Duplicate detection comes
// from the unique index after the insert, never from a pre-check, so
// concurrent creates with the same ID cannot both succeed.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Department = strings.TrimSpace(req.Department)
	req.Position = strings.TrimSpace(req.Position)

	// Absence of any field is a single combined failure, not per-field.
	if req.EmployeeID == "" || req.Name == "" || req.Email == "" || req.Department == "" || req.Position == "" {
		httpjson.Error(w, http.StatusBadRequest, "All fields are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := employeestore.New(h.DB)
	emp, err := store.Create(ctx, models.Employee{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Position:   req.Position,
	})
	if err != nil {
		switch err {
		case employeestore.ErrMissingFields:
			httpjson.Error(w, http.StatusBadRequest, "All fields are required")
		case employeestore.ErrDuplicateEmployeeID:
			httpjson.Error(w, http.StatusBadRequest, "Employee ID already exists")
		default:
			h.Log.Error("create employee failed",
				zap.String("employee_id", req.EmployeeID),
				zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.Log.Info("employee created",
		zap.String("employee_id", emp.EmployeeID),
		zap.String("department", emp.Department))
	httpjson.Write(w, http.StatusCreated, emp)
}
