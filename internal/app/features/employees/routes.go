// internal/app/features/employees/routes.go
package employees

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /api/employees.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleList)
	r.Delete("/{employeeID}", h.HandleDelete)

	return r
}
