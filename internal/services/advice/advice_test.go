package advice_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ntx-bassclub/clubhub/internal/services/advice"
)

type GeneratorMock struct {
	mock.Mock
}

func (m *GeneratorMock) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	args := m.Called(ctx, model, prompt)
	return args.String(0), args.Error(1)
}

func newService(gen *GeneratorMock) *advice.Service {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return advice.New(gen, "gemini-pro", logger)
}

func TestAsk(t *testing.T) {
	gen := new(GeneratorMock)
	svc := newService(gen)

	gen.On("GenerateText", mock.Anything, "gemini-pro", mock.MatchedBy(func(prompt string) bool {
		return len(prompt) > len("How do I fish a jig?") // preamble prepended
	})).Return("Pitch to shallow cover.", nil).Once()

	plan, err := svc.Ask(context.Background(), "How do I fish a jig?")
	require.NoError(t, err)
	assert.Equal(t, "Pitch to shallow cover.", plan)
	gen.AssertExpectations(t)
}

func TestAsk_EmptyPromptSkipsRemoteCall(t *testing.T) {
	gen := new(GeneratorMock)
	svc := newService(gen)

	for _, prompt := range []string{"", "   ", "\t\n"} {
		_, err := svc.Ask(context.Background(), prompt)
		assert.ErrorIs(t, err, advice.ErrEmptyPrompt)
	}
	gen.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything, mock.Anything)
}

func TestAsk_ProviderFailure(t *testing.T) {
	gen := new(GeneratorMock)
	svc := newService(gen)

	gen.On("GenerateText", mock.Anything, "gemini-pro", mock.Anything).
		Return("", errors.New("timeout")).Once()

	_, err := svc.Ask(context.Background(), "Where do bass hold in fall?")
	assert.ErrorIs(t, err, advice.ErrGeneration)
}
