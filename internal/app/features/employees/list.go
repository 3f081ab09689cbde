// internal/app/features/employees/list.go
package employees

import (
	"context"
	"net/http"

	employeestore "github.com/dalemusser/hrmslite/internal/app/store/employees"
	"github.com/dalemusser/hrmslite/internal/app/system/httpjson"
	"github.com/dalemusser/hrmslite/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleList processes GET /api/employees. No filtering or pagination; the
// response is every employee in storage order.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := employeestore.New(h.DB)
	employees, err := store.List(ctx)
	if err != nil {
		h.Log.Error("list employees failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, employees)
}
