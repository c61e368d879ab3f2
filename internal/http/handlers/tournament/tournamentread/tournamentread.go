// Package tournamentread implements the HTTP handler that returns one
// tournament by id.
package tournamentread

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ntx-bassclub/clubhub/internal/http/response"
	"github.com/ntx-bassclub/clubhub/internal/lib/sl"
	"github.com/ntx-bassclub/clubhub/internal/models"
	"github.com/ntx-bassclub/clubhub/internal/services/tournament"
)

// Service describes the schedule read the handler needs.
type Service interface {
	Read(ctx context.Context, id string) (*models.Tournament, error)
}

// Handler serves GET /tournaments/{id}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a tournamentread Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tournament.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("missing tournament id in path")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing tournament id"))
		return
	}

	t, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, tournament.ErrTournamentNotFound) {
			log.Info("tournament not found", slog.String("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("tournament not found"))
			return
		}
		log.Error("failed to read tournament", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read tournament"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"tournament": t,
	}))
}
