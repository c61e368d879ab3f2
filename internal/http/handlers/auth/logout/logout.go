// Package logout implements the HTTP handler for signing out. The token
// presented with the request is revoked; the client discards its copy.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ntx-bassclub/clubhub/internal/http/middlewarectx"
	"github.com/ntx-bassclub/clubhub/internal/http/response"
	"github.com/ntx-bassclub/clubhub/internal/lib/sl"
)

// Service describes the auth operation the handler needs.
type Service interface {
	Logout(ctx context.Context, rawToken string) error
}

// Handler serves POST /logout.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a logout Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	rawToken, ok := r.Context().Value(middlewarectx.RawToken).(string)
	if !ok || rawToken == "" {
		log.Error("token not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.Logout(r.Context(), rawToken); err != nil {
		log.Error("failed to revoke token", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not sign out"))
		return
	}

	log.Info("user signed out")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "signed out",
	}))
}
