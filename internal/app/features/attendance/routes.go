// internal/app/features/attendance/routes.go
package attendance

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /api/attendance.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleMark)
	r.Get("/{employeeID}", h.HandleListByEmployee)

	return r
}
