// Package practicelist implements the HTTP handler that returns the
// caller's practice sessions, newest first.
package practicelist

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

// Service describes the practice-log operation the handler needs.
type Service interface {
	List(ctx context.Context, ownerUID string) ([]*models.PracticeLog, error)
}

// Handler serves GET /practice.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a practicelist Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.practice.list"
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

	logs, err := h.service.List(r.Context(), uid)
	if err != nil {
		log.Error("failed to list practice logs", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list practice logs"))
		return
	}

	if logs == nil {
		logs = []*models.PracticeLog{}
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"logs": logs,
	}))
}
