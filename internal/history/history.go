// ABOUTME: History holds the ordered exchanges of the current conversation
// ABOUTME: Exposes a bounded recent-window view used for context assembly
package history

import (
	"sync"

	"github.com/MOAZHAGGAG/AI-chatbot/internal/models"
)

// History is the append-only record of one conversation. The controller
// is the only writer, but boundary layers (message counters, the MCP
// history tool) read concurrently, so access is mutex-guarded.
type History struct {
	mu        sync.RWMutex
	exchanges []models.Exchange
}

// New creates an empty conversation history.
func New() *History {
	return &History{}
}

// Append adds a completed exchange to the end of the conversation.
func (h *History) Append(ex models.Exchange) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.exchanges = append(h.exchanges, ex)
}

// RecentWindow returns the last maxExchanges exchanges in chronological
// order (oldest first). If fewer exist, all are returned. The result is
// a copy; callers cannot mutate conversation state through it.
func (h *History) RecentWindow(maxExchanges int) []models.Exchange {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if maxExchanges <= 0 {
		return nil
	}
	start := 0
	if len(h.exchanges) > maxExchanges {
		start = len(h.exchanges) - maxExchanges
	}
	window := make([]models.Exchange, len(h.exchanges)-start)
	copy(window, h.exchanges[start:])
	return window
}

// All returns a copy of every exchange in the conversation.
func (h *History) All() []models.Exchange {
	h.mu.RLock()
	defer h.mu.RUnlock()

	all := make([]models.Exchange, len(h.exchanges))
	copy(all, h.exchanges)
	return all
}

// Clear empties the conversation. Used by the explicit reset action.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.exchanges = nil
}

// Len returns the number of exchanges in the conversation.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.exchanges)
}

// MessageCount returns the number of flattened messages, matching what
// a chat transcript would display.
func (h *History) MessageCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for i := range h.exchanges {
		count += len(h.exchanges[i].Messages())
	}
	return count
}
