package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	text string
	err  error

	calls     int
	gotSystem string
	gotPrompt string
	gotMax    int
}

func (f *fakeClient) Complete(_ context.Context, system, prompt string, maxTokens int) (string, error) {
	f.calls++
	f.gotSystem = system
	f.gotPrompt = prompt
	f.gotMax = maxTokens
	return f.text, f.err
}

func TestGenerateMockMode(t *testing.T) {
	svc := NewGenerationService(nil)

	result := svc.Generate(context.Background(), "write an intro", 0)
	assert.Equal(t, SourceMock, result.Source)
	assert.Contains(t, result.Text, "write an intro")
	assert.NotEmpty(t, result.Text)
}

func TestGenerateSuccess(t *testing.T) {
	client := &fakeClient{text: "  Once upon a time.  \n"}
	svc := NewGenerationService(client)

	result := svc.Generate(context.Background(), "start a story", 200)
	assert.Equal(t, SourceGenerated, result.Source)
	assert.Equal(t, "Once upon a time.", result.Text, "generated text must be trimmed")

	require.Equal(t, 1, client.calls)
	assert.Equal(t, "start a story", client.gotPrompt)
	assert.Equal(t, 200, client.gotMax)
	assert.Contains(t, client.gotSystem, "helpful writing assistant")
}

func TestGenerateDefaultMaxTokens(t *testing.T) {
	client := &fakeClient{text: "ok"}
	svc := NewGenerationService(client)

	svc.Generate(context.Background(), "p", 0)
	assert.Equal(t, defaultMaxTokens, client.gotMax)
}

func TestGenerateFallbackOnFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	svc := NewGenerationService(client)

	result := svc.Generate(context.Background(), "my prompt", 150)
	assert.Equal(t, SourceFallback, result.Source)
	assert.Contains(t, result.Text, "my prompt")
	assert.NotContains(t, result.Text, "quota exceeded", "upstream errors must not leak to the caller")
}

func TestNewGenerationServiceFromEnv(t *testing.T) {
	t.Run("no key means mock mode", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		svc := NewGenerationServiceFromEnv()
		assert.Nil(t, svc.Client)
	})

	t.Run("placeholder key means mock mode", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "your_openai_api_key_here")
		svc := NewGenerationServiceFromEnv()
		assert.Nil(t, svc.Client)
	})

	t.Run("real key wires the openai client", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		svc := NewGenerationServiceFromEnv()
		assert.NotNil(t, svc.Client)
	})
}
