// Package health implements the liveness probe endpoint.
package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/ntx-bassclub/clubhub/internal/http/response"
)

// Handler serves GET /health.
type Handler struct {
	log *slog.Logger
}

// New creates a health Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"status": "ok",
	}))
}
