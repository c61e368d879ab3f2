// Package postlike implements the HTTP handler that likes a feed post.
package postlike

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
	"github.com/ntx-bassclub/clubhub/internal/services/feed"
)

// Service describes the feed operation the handler needs.
type Service interface {
	Like(ctx context.Context, postID string) (int, error)
}

// Handler serves POST /feed/{id}/like.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a postlike Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.feed.like"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	postID := chi.URLParam(r, "id")
	if postID == "" {
		log.Error("missing post id in path")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing post id"))
		return
	}

	likes, err := h.service.Like(r.Context(), postID)
	if err != nil {
		if errors.Is(err, feed.ErrPostNotFound) {
			log.Info("post not found", slog.String("id", postID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("post not found"))
			return
		}
		log.Error("failed to like post", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not like post"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":    postID,
		"likes": likes,
	}))
}
