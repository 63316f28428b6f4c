// ABOUTME: OpenAI streaming backend using sashabaranov/go-openai chat completions
// ABOUTME: Alternate provider; gpt-4o-mini keeps per-token cost low
package llm

import (
	"context"
	"errors"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"

	"github.com/MOAZHAGGAG/AI-chatbot/internal/models"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/prompt"
)

// DefaultOpenAIModel is the default low-cost chat model.
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIDispatcher streams chat completions from the OpenAI API.
type OpenAIDispatcher struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAIDispatcher creates an OpenAI-backed dispatcher.
func NewOpenAIDispatcher(apiKey, model string, temperature float64) (*OpenAIDispatcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAIDispatcher{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: float32(temperature),
	}, nil
}

// Dispatch implements Dispatcher.
func (d *OpenAIDispatcher) Dispatch(ctx context.Context, p prompt.Payload) (<-chan string, <-chan error) {
	chunks := make(chan string, 16)
	errc := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errc)

		msgs := make([]openai.ChatCompletionMessage, 0, len(p.Messages)+1)
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: p.System,
		})
		for _, msg := range p.Messages {
			role := openai.ChatMessageRoleUser
			if msg.Role == models.RoleAssistant {
				role = openai.ChatMessageRoleAssistant
			}
			msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: msg.Text})
		}

		stream, err := d.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
			Model:       d.model,
			Messages:    msgs,
			Temperature: d.temperature,
			Stream:      true,
		})
		if err != nil {
			errc <- &DispatchError{Provider: ProviderOpenAI, Err: err}
			return
		}
		defer func() { _ = stream.Close() }()

		emitted := false
		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				errc <- &DispatchError{Provider: ProviderOpenAI, Err: err}
				return
			}
			if len(resp.Choices) == 0 {
				continue
			}
			delta := resp.Choices[0].Delta.Content
			if delta == "" {
				continue
			}
			select {
			case chunks <- delta:
				emitted = true
			case <-ctx.Done():
				errc <- &DispatchError{Provider: ProviderOpenAI, Err: ctx.Err()}
				return
			}
		}

		if !emitted {
			errc <- &DispatchError{Provider: ProviderOpenAI, Err: ErrEmptyResponse}
		}
	}()

	return chunks, errc
}
