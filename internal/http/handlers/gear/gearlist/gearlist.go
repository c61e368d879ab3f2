// Package gearlist implements the HTTP handler that returns the caller's
// gear checklist.
package gearlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ntx-bassclub/clubhub/internal/http/middlewarectx"
	"github.com/ntx-bassclub/clubhub/internal/http/response"
	"github.com/ntx-bassclub/clubhub/internal/lib/sl"
	"github.com/ntx-bassclub/clubhub/internal/models"
)

// Service describes the checklist operation the handler needs.
type Service interface {
	List(ctx context.Context, ownerUID string) ([]*models.GearItem, error)
}

// Handler serves GET /gear.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a gearlist Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.gear.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid, _ := r.Context().Value(middlewarectx.UserUID).(string)
	if uid == "" {
		log.Error("user not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	items, err := h.service.List(r.Context(), uid)
	if err != nil {
		log.Error("failed to list gear", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list gear"))
		return
	}

	if items == nil {
		items = []*models.GearItem{}
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"items": items,
	}))
}
