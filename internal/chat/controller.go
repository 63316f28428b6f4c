// ABOUTME: Controller orchestrates one conversation turn: safety check, cache, assemble, dispatch
// ABOUTME: Owns the conversation history and guarantees exactly one append per submitted message
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/MOAZHAGGAG/AI-chatbot/internal/cache"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/history"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/llm"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/models"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/prompt"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/safety"
)

// Outcome says which path produced the response for a turn.
type Outcome int

const (
	// OutcomeRefused means the safety policy blocked the input.
	OutcomeRefused Outcome = iota
	// OutcomeCached means the answer came from the exact-match cache.
	OutcomeCached
	// OutcomeModel means the answer is streaming from the model.
	OutcomeModel
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRefused:
		return "refused"
	case OutcomeCached:
		return "cached"
	case OutcomeModel:
		return "model"
	}
	return "unknown"
}

// EmptyResponseFallback is shown when the model returns no usable content.
const EmptyResponseFallback = "معنديش إجابة دلوقتي، ممكن تعيد صياغة سؤالك؟ 🙏\n" +
	"I couldn't come up with an answer, please rephrase your question."

// Reply is the caller-facing view of one turn. Chunks is a finite
// stream; the full response is the concatenation of all chunks in
// order. Err delivers at most one terminal error after the last chunk;
// for refusals and cache hits it closes empty. By the time both
// channels are closed, the turn's exchange has been committed to
// history.
type Reply struct {
	Outcome Outcome
	Chunks  <-chan string
	Err     <-chan error
}

// Options configures a Controller.
type Options struct {
	Cache      *cache.Cache
	Assembler  *prompt.Assembler
	Dispatcher llm.Dispatcher
	Policy     safety.Policy
	Window int // most-recent exchanges per payload

	// Timeout bounds each model turn. It covers the dispatch itself
	// and how long an undrained Reply may hold the conversation, so
	// a caller that stops reading Chunks without cancelling cannot
	// block later turns past the deadline. 0 means no bound; then
	// callers must drain or cancel.
	Timeout time.Duration
}

// Controller runs the per-turn state machine. One turn is in flight at
// a time: a Submit that arrives while a previous turn is still
// streaming waits until that turn's exchange has been committed, so
// appends always happen in submission order and each turn reads
// history as of its own start.
type Controller struct {
	cache      *cache.Cache
	hist       *history.History
	assembler  *prompt.Assembler
	dispatcher llm.Dispatcher
	policy     safety.Policy
	window     int
	timeout    time.Duration

	turnMu sync.Mutex
}

// NewController wires the pipeline together over a fresh conversation.
func NewController(opts Options) *Controller {
	window := opts.Window
	if window <= 0 {
		window = 6
	}
	return &Controller{
		cache:      opts.Cache,
		hist:       history.New(),
		assembler:  opts.Assembler,
		dispatcher: opts.Dispatcher,
		policy:     opts.Policy,
		window:     window,
		timeout:    opts.Timeout,
	}
}

// Submit runs one turn for a user message and returns its response
// stream. Whitespace-only input is rejected up front without starting a
// turn. Every accepted message produces exactly one appended exchange,
// whatever the outcome.
func (c *Controller) Submit(ctx context.Context, text string) (*Reply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("message cannot be empty")
	}

	c.turnMu.Lock()

	// Safety check comes first: blocked input never reaches the cache
	// or the model.
	if c.policy != nil {
		if v := c.policy.Evaluate(text); v.Blocked {
			return c.finishLocalTurn(OutcomeRefused, text, safety.RefusalMessage)
		}
	}

	// Known question: answer from the cache, zero tokens spent.
	if c.cache != nil {
		if answer, ok := c.cache.Lookup(text); ok {
			return c.finishLocalTurn(OutcomeCached, text, answer)
		}
	}

	// Model path: assemble the bounded context and stream.
	payload := c.assembler.Assemble(c.hist.RecentWindow(c.window), text, time.Now())

	dctx := ctx
	cancel := context.CancelFunc(func() {})
	if c.timeout > 0 {
		dctx, cancel = context.WithTimeout(ctx, c.timeout)
	}
	chunks, errs := c.dispatcher.Dispatch(dctx, payload)

	out := make(chan string, 16)
	errOut := make(chan error, 1)

	go func() {
		defer c.turnMu.Unlock()
		defer cancel()
		defer close(errOut)
		defer close(out)

		var full strings.Builder
		abandoned := false
		for chunk := range chunks {
			full.WriteString(chunk)
			if abandoned {
				continue
			}
			select {
			case out <- chunk:
			case <-dctx.Done():
				// Caller went away or the turn deadline passed; late
				// chunks are dropped, the partial turn is still
				// committed below.
				abandoned = true
			}
		}

		dispatchErr := <-errs
		if dispatchErr == nil && abandoned {
			dispatchErr = &llm.DispatchError{Provider: "context", Err: dctx.Err()}
		}

		c.commitModelTurn(text, full.String(), dispatchErr, out, errOut)
	}()

	return &Reply{Outcome: OutcomeModel, Chunks: out, Err: errOut}, nil
}

// finishLocalTurn commits a turn answered without the model (refusal or
// cache hit) and returns its single-chunk reply. Called with turnMu held.
func (c *Controller) finishLocalTurn(outcome Outcome, userText, answer string) (*Reply, error) {
	defer c.turnMu.Unlock()

	ex, err := models.NewExchange(userText, answer)
	if err != nil {
		return nil, err
	}
	c.hist.Append(*ex)

	out := make(chan string, 1)
	out <- answer
	close(out)
	errOut := make(chan error)
	close(errOut)

	return &Reply{Outcome: outcome, Chunks: out, Err: errOut}, nil
}

// commitModelTurn appends the single exchange for a model turn and
// surfaces the terminal error, if any. An empty successful response is
// converted to the fallback text plus an EmptyResponse dispatch error.
func (c *Controller) commitModelTurn(userText, fullText string, dispatchErr error, out chan<- string, errOut chan<- error) {
	if dispatchErr == nil && strings.TrimSpace(fullText) == "" {
		dispatchErr = &llm.DispatchError{Provider: "model", Err: llm.ErrEmptyResponse}
	}

	var ex *models.Exchange
	var err error
	if dispatchErr == nil {
		ex, err = models.NewExchange(userText, fullText)
	} else {
		if errors.Is(dispatchErr, llm.ErrEmptyResponse) && fullText == "" {
			fullText = EmptyResponseFallback
			out <- fullText
		}
		ex, err = models.NewPartialExchange(userText, fullText, dispatchErr)
	}
	if err == nil {
		c.hist.Append(*ex)
	}

	if dispatchErr != nil {
		errOut <- dispatchErr
	}
}

// Clear resets the conversation (the UI's clear-chat action).
func (c *Controller) Clear() {
	c.turnMu.Lock()
	defer c.turnMu.Unlock()
	c.hist.Clear()
}

// History returns a copy of the full conversation so far.
func (c *Controller) History() []models.Exchange {
	return c.hist.All()
}

// MessageCount returns the number of displayed messages, for UI counters.
func (c *Controller) MessageCount() int {
	return c.hist.MessageCount()
}
