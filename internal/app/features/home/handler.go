package home

import (
	"net/http"

	"go.uber.org/zap"
)

// Handler serves the single-page client shell.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		Log: logger,
	}
}

// ServeRoot handles GET /. Every non-API path answers with the SPA shell;
// the client script routes views from there.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "public/index.html")
}
