// Package gearupsert implements the HTTP handler that creates or updates
// an item on the caller's gear checklist.
package gearupsert

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
	"github.com/ntx-bassclub/clubhub/internal/services/gear"
)

// Request carries a checklist item. An empty id creates a new item.
type Request struct {
	ID       string `json:"id" validate:"omitempty,uuid"`
	Name     string `json:"name" validate:"required,max=200"`
	Category string `json:"category" validate:"required,oneof=rods reels lures tackle electronics safety other"`
	Checked  bool   `json:"is_checked"`
	Priority string `json:"priority" validate:"required,oneof=essential recommended optional"`
	Notes    string `json:"notes"`
}

// Service describes the checklist operation the handler needs.
type Service interface {
	Upsert(ctx context.Context, ownerUID string, req gear.UpsertRequest) (*models.GearItem, error)
}

// Handler serves PUT /gear.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New creates a gearupsert Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.gear.upsert"
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
	if uid == "" {
		log.Error("user not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	item, err := h.service.Upsert(r.Context(), uid, gear.UpsertRequest{
		ID:       req.ID,
		Name:     req.Name,
		Category: req.Category,
		Checked:  req.Checked,
		Priority: req.Priority,
		Notes:    req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, gear.ErrItemNotFound):
			log.Info("gear item not found", slog.String("id", req.ID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("gear item not found"))
		case errors.Is(err, gear.ErrInvalidCategory), errors.Is(err, gear.ErrInvalidPriority):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
		default:
			log.Error("failed to upsert gear item", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not save gear item"))
		}
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"item": item,
	}))
}
