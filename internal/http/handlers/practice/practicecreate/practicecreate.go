// Package practicecreate implements the HTTP handler that logs a practice
// session for the caller.
package practicecreate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/ntx-bassclub/clubhub/internal/http/middlewarectx"
	"github.com/ntx-bassclub/clubhub/internal/http/response"
	"github.com/ntx-bassclub/clubhub/internal/lib/sl"
	"github.com/ntx-bassclub/clubhub/internal/models"
	"github.com/ntx-bassclub/clubhub/internal/services/practice"
)

// Request carries a new session log. Duration is in minutes.
type Request struct {
	Date       time.Time                 `json:"date" validate:"required"`
	Lake       string                    `json:"lake" validate:"required"`
	Duration   int                       `json:"duration" validate:"required,gt=0"`
	Conditions models.PracticeConditions `json:"conditions"`
	Techniques []string                  `json:"techniques"`
	Catches    []models.PracticeCatch    `json:"catches"`
	Notes      string                    `json:"notes"`
	Rating     int                       `json:"rating" validate:"required,min=1,max=5"`
}

// Service describes the practice-log operation the handler needs.
type Service interface {
	Create(ctx context.Context, ownerUID string, req practice.CreateRequest) (*models.PracticeLog, error)
}

// Handler serves POST /practice.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New creates a practicecreate Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.practice.create"
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

	entry, err := h.service.Create(r.Context(), uid, practice.CreateRequest{
		Date:       req.Date,
		Lake:       req.Lake,
		Duration:   req.Duration,
		Conditions: req.Conditions,
		Techniques: req.Techniques,
		Catches:    req.Catches,
		Notes:      req.Notes,
		Rating:     req.Rating,
	})
	if err != nil {
		switch {
		case errors.Is(err, practice.ErrInvalidRating), errors.Is(err, practice.ErrInvalidDuration):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
		default:
			log.Error("failed to create practice log", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not save practice log"))
		}
		return
	}

	log.Info("practice log created", slog.String("id", entry.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"log": entry,
	}))
}
