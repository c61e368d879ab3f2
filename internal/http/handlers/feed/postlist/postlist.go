// Package postlist implements the HTTP handler that returns a page of the
// club feed, newest first.
package postlist

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ntx-bassclub/clubhub/internal/http/response"
	"github.com/ntx-bassclub/clubhub/internal/lib/sl"
	"github.com/ntx-bassclub/clubhub/internal/models"
)

// Service describes the feed operation the handler needs.
type Service interface {
	List(ctx context.Context, tournamentID string, limit int, before *time.Time) ([]*models.Post, error)
}

// Handler serves GET /feed.
//
// Query parameters: tournament_id filters to one tournament, limit caps the
// page size and before (RFC 3339) is the pagination cursor. Only posts
// strictly older than the cursor are returned.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a postlist Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.feed.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()
	tournamentID := q.Get("tournament_id")
	limit, _ := strconv.Atoi(q.Get("limit"))

	var before *time.Time
	if raw := q.Get("before"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			log.Error("invalid before cursor", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("before must be an RFC 3339 timestamp"))
			return
		}
		before = &ts
	}

	posts, err := h.service.List(r.Context(), tournamentID, limit, before)
	if err != nil {
		log.Error("failed to list posts", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list posts"))
		return
	}

	if posts == nil {
		posts = []*models.Post{}
	}

	data := map[string]any{"posts": posts}
	// The cursor for the next page is the timestamp of the oldest post.
	if len(posts) > 0 {
		data["next_before"] = posts[len(posts)-1].Timestamp.Format(time.RFC3339Nano)
	}

	render.JSON(w, r, response.StatusOKWithData(data))
}
