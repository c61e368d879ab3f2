// Package tournamentlist implements the HTTP handler that returns the
// tournament schedule, optionally narrowed to upcoming or past events.
package tournamentlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ntx-bassclub/clubhub/internal/http/response"
	"github.com/ntx-bassclub/clubhub/internal/lib/sl"
	"github.com/ntx-bassclub/clubhub/internal/models"
)

// Service describes the schedule reads the handler needs.
type Service interface {
	ListAll(ctx context.Context) ([]*models.Tournament, error)
	ListUpcoming(ctx context.Context) ([]*models.Tournament, error)
	ListPast(ctx context.Context) ([]*models.Tournament, error)
}

// Handler serves GET /tournaments. The filter query parameter is one of
// all, upcoming or past and defaults to all.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a tournamentlist Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tournament.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var (
		tournaments []*models.Tournament
		err         error
	)
	filter := r.URL.Query().Get("filter")
	switch filter {
	case "", "all":
		tournaments, err = h.service.ListAll(r.Context())
	case "upcoming":
		tournaments, err = h.service.ListUpcoming(r.Context())
	case "past":
		tournaments, err = h.service.ListPast(r.Context())
	default:
		log.Error("unknown filter", slog.String("filter", filter))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("filter must be one of all, upcoming, past"))
		return
	}
	if err != nil {
		log.Error("failed to list tournaments", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list tournaments"))
		return
	}

	if tournaments == nil {
		tournaments = []*models.Tournament{}
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"tournaments": tournaments,
	}))
}
