// ABOUTME: Dispatcher abstracts the hosted model API behind a streaming contract
// ABOUTME: Defines the chunk-stream interface, error taxonomy, and backend factory
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/MOAZHAGGAG/AI-chatbot/internal/prompt"
)

// Provider names for the backend factory.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// ErrEmptyResponse signals that the model returned no usable content.
// It is always delivered wrapped in a *DispatchError.
var ErrEmptyResponse = errors.New("model returned no content")

// DispatchError is the single failure type for model calls: network and
// timeout errors, API errors, and empty responses all arrive as one of
// these. Chunks received before the failure are still delivered on the
// chunk channel, so callers can show a partial answer.
type DispatchError struct {
	Provider string
	Err      error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("model dispatch failed (%s): %v", e.Provider, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Dispatcher sends an assembled payload to a hosted model and streams
// the response back.
//
// The chunk channel is a lazy, finite, non-restartable sequence; the
// full response is the concatenation of all chunks in emission order.
// The error channel delivers at most one terminal *DispatchError and
// both channels are closed when the stream ends. Dispatchers never
// retry; retry policy, if any, belongs to the boundary layer.
// Cancelling ctx stops chunk delivery; it does not merge late chunks
// into anything.
type Dispatcher interface {
	Dispatch(ctx context.Context, p prompt.Payload) (<-chan string, <-chan error)
}

// Options configures a dispatcher backend.
type Options struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
}

// New builds the dispatcher for the configured provider.
func New(ctx context.Context, opts Options) (Dispatcher, error) {
	switch opts.Provider {
	case ProviderGemini:
		return NewGeminiDispatcher(ctx, opts.APIKey, opts.Model, opts.Temperature)
	case ProviderOpenAI:
		return NewOpenAIDispatcher(opts.APIKey, opts.Model, opts.Temperature)
	default:
		return nil, fmt.Errorf("unknown provider %q (want %q or %q)", opts.Provider, ProviderGemini, ProviderOpenAI)
	}
}
