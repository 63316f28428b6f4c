// ABOUTME: Tests for conversation history management
// ABOUTME: Verifies append ordering, window bounding, and idempotent clear

package history

import (
	"fmt"
	"testing"

	"github.com/MOAZHAGGAG/AI-chatbot/internal/models"
)

func makeExchange(t *testing.T, n int) models.Exchange {
	t.Helper()
	ex, err := models.NewExchange(fmt.Sprintf("question %d", n), fmt.Sprintf("answer %d", n))
	if err != nil {
		t.Fatalf("NewExchange() error = %v", err)
	}
	return *ex
}

func TestHistory_AppendAndLen(t *testing.T) {
	h := New()
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}

	for i := 0; i < 3; i++ {
		h.Append(makeExchange(t, i))
	}
	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}
	if h.MessageCount() != 6 {
		t.Errorf("MessageCount() = %d, want 6", h.MessageCount())
	}
}

func TestHistory_RecentWindow_Bounding(t *testing.T) {
	const windowSize = 6

	h := New()
	for i := 0; i < 10; i++ {
		h.Append(makeExchange(t, i))
	}

	window := h.RecentWindow(windowSize)
	if len(window) != windowSize {
		t.Fatalf("len(window) = %d, want %d", len(window), windowSize)
	}

	// Oldest first: exchanges 4..9.
	for i, ex := range window {
		want := fmt.Sprintf("question %d", i+4)
		if ex.User.Text != want {
			t.Errorf("window[%d].User.Text = %q, want %q", i, ex.User.Text, want)
		}
	}
}

func TestHistory_RecentWindow_FewerThanMax(t *testing.T) {
	h := New()
	for i := 0; i < 3; i++ {
		h.Append(makeExchange(t, i))
	}

	window := h.RecentWindow(6)
	if len(window) != 3 {
		t.Errorf("len(window) = %d, want all 3", len(window))
	}
}

func TestHistory_RecentWindow_NeverExceeds(t *testing.T) {
	h := New()
	for m := 1; m <= 20; m++ {
		h.Append(makeExchange(t, m))
		if got := len(h.RecentWindow(6)); got > 6 {
			t.Fatalf("after %d appends: len(window) = %d, want <= 6", m, got)
		}
	}
}

func TestHistory_RecentWindow_IsACopy(t *testing.T) {
	h := New()
	h.Append(makeExchange(t, 0))

	window := h.RecentWindow(6)
	window[0].User.Text = "mutated"

	if h.RecentWindow(6)[0].User.Text == "mutated" {
		t.Error("mutating the returned window must not affect history")
	}
}

func TestHistory_Clear_Idempotent(t *testing.T) {
	h := New()
	for i := 0; i < 5; i++ {
		h.Append(makeExchange(t, i))
	}

	h.Clear()
	for _, n := range []int{1, 6, 100} {
		if got := h.RecentWindow(n); len(got) != 0 {
			t.Errorf("after Clear(): RecentWindow(%d) = %d exchanges, want 0", n, len(got))
		}
	}

	// Clearing again is a no-op.
	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}

	// History remains usable after clear.
	h.Append(makeExchange(t, 99))
	if h.Len() != 1 {
		t.Errorf("Len() after re-append = %d, want 1", h.Len())
	}
}

func TestHistory_MessageCount_SkipsEmptyAssistant(t *testing.T) {
	h := New()
	ex, err := models.NewPartialExchange("question", "", fmt.Errorf("boom"))
	if err != nil {
		t.Fatalf("NewPartialExchange() error = %v", err)
	}
	h.Append(*ex)

	if got := h.MessageCount(); got != 1 {
		t.Errorf("MessageCount() = %d, want 1", got)
	}
}
