// ABOUTME: Gemini streaming backend using the official google.golang.org/genai SDK
// ABOUTME: Default backend; gemini-2.0-flash-lite is the cheapest stable model per token
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/MOAZHAGGAG/AI-chatbot/internal/models"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/prompt"
)

// DefaultGeminiModel is the cheapest stable Gemini model.
const DefaultGeminiModel = "gemini-2.0-flash-lite"

// GeminiDispatcher streams chat completions from the Gemini API.
type GeminiDispatcher struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiDispatcher creates a Gemini-backed dispatcher.
func NewGeminiDispatcher(ctx context.Context, apiKey, model string, temperature float64) (*GeminiDispatcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Google API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiDispatcher{
		client:      client,
		model:       model,
		temperature: float32(temperature),
	}, nil
}

// geminiContents converts conversation messages to the SDK's content
// type. Assistant messages map to the model role, everything else to
// the user role.
func geminiContents(msgs []models.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(msgs))
	for _, msg := range msgs {
		role := genai.Role(genai.RoleUser)
		if msg.Role == models.RoleAssistant {
			role = genai.Role(genai.RoleModel)
		}
		contents = append(contents, genai.NewContentFromText(msg.Text, role))
	}
	return contents
}

// Dispatch implements Dispatcher.
func (d *GeminiDispatcher) Dispatch(ctx context.Context, p prompt.Payload) (<-chan string, <-chan error) {
	chunks := make(chan string, 16)
	errc := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errc)

		contents := geminiContents(p.Messages)

		config := &genai.GenerateContentConfig{
			Temperature:       genai.Ptr(d.temperature),
			SystemInstruction: genai.NewContentFromText(p.System, genai.RoleUser),
		}

		emitted := false
		for resp, err := range d.client.Models.GenerateContentStream(ctx, d.model, contents, config) {
			if err != nil {
				errc <- &DispatchError{Provider: ProviderGemini, Err: err}
				return
			}
			text := resp.Text()
			if text == "" {
				continue
			}
			select {
			case chunks <- text:
				emitted = true
			case <-ctx.Done():
				errc <- &DispatchError{Provider: ProviderGemini, Err: ctx.Err()}
				return
			}
		}

		if !emitted {
			errc <- &DispatchError{Provider: ProviderGemini, Err: ErrEmptyResponse}
		}
	}()

	return chunks, errc
}
