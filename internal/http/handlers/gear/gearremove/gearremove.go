// Package gearremove implements the HTTP handler that removes an item from
// the caller's gear checklist.
package gearremove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ntx-bassclub/clubhub/internal/http/middlewarectx"
	"github.com/ntx-bassclub/clubhub/internal/http/response"
	"github.com/ntx-bassclub/clubhub/internal/lib/sl"
	"github.com/ntx-bassclub/clubhub/internal/services/gear"
)

// Service describes the checklist operation the handler needs.
type Service interface {
	Delete(ctx context.Context, ownerUID, id string) error
}

// Handler serves DELETE /gear/{id}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a gearremove Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.gear.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("missing item id in path")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing item id"))
		return
	}

	uid, _ := r.Context().Value(middlewarectx.UserUID).(string)
	if uid == "" {
		log.Error("user not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.Delete(r.Context(), uid, id); err != nil {
		if errors.Is(err, gear.ErrItemNotFound) {
			log.Info("gear item not found", slog.String("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("gear item not found"))
			return
		}
		log.Error("failed to delete gear item", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete gear item"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
