// Package postcreate implements the HTTP handler that publishes a new post
// to the club feed.
package postcreate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/ntx-bassclub/clubhub/internal/http/middlewarectx"
	"github.com/ntx-bassclub/clubhub/internal/http/response"
	"github.com/ntx-bassclub/clubhub/internal/lib/sl"
	"github.com/ntx-bassclub/clubhub/internal/models"
	"github.com/ntx-bassclub/clubhub/internal/services/feed"
)

// Request carries the new-post fields. Catch details and gear reminders are
// optional structured payloads for their respective post types.
type Request struct {
	Content      string               `json:"content" validate:"required"`
	Type         string               `json:"type" validate:"required,oneof=note catch gear-reminder tournament-update"`
	TournamentID string               `json:"tournament_id"`
	Images       []string             `json:"images"`
	CatchDetails *models.CatchDetails `json:"catch_details"`
	GearReminder *models.GearReminder `json:"gear_reminder"`
}

// Service describes the feed operation the handler needs.
type Service interface {
	CreatePost(ctx context.Context, authorUID, authorName string, req feed.CreateRequest) (*models.Post, error)
}

// Handler serves POST /feed.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New creates a postcreate Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.feed.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	post, err := h.service.CreatePost(r.Context(), uid, name, feed.CreateRequest{
		Content:      req.Content,
		Type:         req.Type,
		TournamentID: req.TournamentID,
		Images:       req.Images,
		CatchDetails: req.CatchDetails,
		GearReminder: req.GearReminder,
	})
	if err != nil {
		switch {
		case errors.Is(err, feed.ErrEmptyContent):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("post content is empty"))
		case errors.Is(err, feed.ErrInvalidType):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid post type"))
		default:
			log.Error("failed to create post", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create post"))
		}
		return
	}

	log.Info("post created", slog.String("id", post.ID), slog.String("type", post.Type))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"post": post,
	}))
}
