// Package ask implements the HTTP handler that answers free-text fishing
// questions through the text-generation provider.
//
// Unlike the rest of the API this endpoint keeps the flat wire format its
// clients already speak: {"prompt"} in, {"plan"} out, {"error"} on failure.
package ask

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ntx-bassclub/clubhub/internal/lib/sl"
	"github.com/ntx-bassclub/clubhub/internal/services/advice"
)

// Request is the flat request body.
type Request struct {
	Prompt string `json:"prompt"`
}

// Response is the flat success body.
type Response struct {
	Plan string `json:"plan"`
}

// ErrorResponse is the flat failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Service describes the advice operation the handler needs.
type Service interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Handler serves POST /advice.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates an ask Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.advice.ask"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Prompt is required"})
		return
	}

	plan, err := h.service.Ask(r.Context(), req.Prompt)
	if err != nil {
		if errors.Is(err, advice.ErrEmptyPrompt) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ErrorResponse{Error: "Prompt is required"})
			return
		}
		// Every provider-side failure collapses into one apology.
		log.Error("advice generation failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{Error: "Failed to generate plan"})
		return
	}

	render.JSON(w, r, Response{Plan: plan})
}
