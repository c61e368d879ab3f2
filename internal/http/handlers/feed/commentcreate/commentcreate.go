// Package commentcreate implements the HTTP handler that adds a comment
// under a feed post.
package commentcreate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/ntx-bassclub/clubhub/internal/http/middlewarectx"
	"github.com/ntx-bassclub/clubhub/internal/http/response"
	"github.com/ntx-bassclub/clubhub/internal/lib/sl"
	"github.com/ntx-bassclub/clubhub/internal/models"
	"github.com/ntx-bassclub/clubhub/internal/services/feed"
)

// Request carries the comment text.
type Request struct {
	Content string `json:"content" validate:"required"`
}

// Service describes the feed operation the handler needs.
type Service interface {
	AddComment(ctx context.Context, postID, authorUID, authorName, content string) (*models.Comment, error)
}

// Handler serves POST /feed/{id}/comments.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New creates a commentcreate Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.feed.comment"
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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	uid, _ := r.Context().Value(middlewarectx.UserUID).(string)
	name, _ := r.Context().Value(middlewarectx.UserName).(string)
	if uid == "" {
		log.Error("user not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	comment, err := h.service.AddComment(r.Context(), postID, uid, name, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, feed.ErrPostNotFound):
			log.Info("post not found", slog.String("id", postID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("post not found"))
		case errors.Is(err, feed.ErrEmptyContent):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("comment content is empty"))
		default:
			log.Error("failed to add comment", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not add comment"))
		}
		return
	}

	log.Info("comment added", slog.String("post_id", postID), slog.String("comment_id", comment.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"comment": comment,
	}))
}
