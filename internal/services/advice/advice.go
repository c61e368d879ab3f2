// Package advice proxies free-text fishing questions to the external
// text-generation provider with a fixed tournament-advisor preamble.
package advice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ntx-bassclub/clubhub/internal/lib/sl"
)

// ErrEmptyPrompt is returned before any remote call when the prompt is
// empty or whitespace.
var ErrEmptyPrompt = errors.New("prompt is required")

// ErrGeneration wraps every provider-side failure. Handlers squash it into
// one user-visible apology message.
var ErrGeneration = errors.New("failed to generate advice")

const preamble = `You are an expert bass fishing tournament advisor with deep knowledge of North Texas lakes and competitive fishing strategies.

%s

Please provide detailed, actionable advice that would help high school bass fishing team members succeed in their tournament. Focus on practical tips, specific techniques, and strategic thinking that applies to competitive bass fishing in North Texas lakes.

Format your response in a clear, organized manner with specific recommendations.`

// Generator describes the text-generation client.
type Generator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// Service formats prompts and forwards them to the provider.
type Service struct {
	generator Generator
	model     string
	log       *slog.Logger
}

// New creates an advice Service bound to one model.
func New(generator Generator, model string, log *slog.Logger) *Service {
	return &Service{
		generator: generator,
		model:     model,
		log:       log,
	}
}

// Ask wraps the question in the advisor preamble and returns the generated
// plan. An empty prompt fails with ErrEmptyPrompt before any remote call.
func (s *Service) Ask(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	text, err := s.generator.GenerateText(ctx, s.model, fmt.Sprintf(preamble, prompt))
	if err != nil {
		s.log.Error("text generation failed", sl.Err(err))
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	return text, nil
}
