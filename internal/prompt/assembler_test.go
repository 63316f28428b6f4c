// ABOUTME: Tests for prompt payload assembly
// ABOUTME: Verifies date substitution, window flattening, and message ordering

package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MOAZHAGGAG/AI-chatbot/internal/models"
)

func makeWindow(t *testing.T, n int) []models.Exchange {
	t.Helper()
	window := make([]models.Exchange, 0, n)
	for i := 0; i < n; i++ {
		ex, err := models.NewExchange(fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
		if err != nil {
			t.Fatalf("NewExchange() error = %v", err)
		}
		window = append(window, *ex)
	}
	return window
}

func TestAssemble_SystemContainsDate(t *testing.T) {
	a := NewAssembler()
	now := time.Date(2025, time.October, 5, 12, 0, 0, 0, time.UTC)

	payload := a.Assemble(nil, "hello", now)

	if !strings.Contains(payload.System, "October 5, 2025, Sunday") {
		t.Errorf("System should contain the formatted date, got:\n%s", payload.System)
	}
}

func TestAssemble_SystemContainsCollegeInfo(t *testing.T) {
	a := NewAssembler()
	payload := a.Assemble(nil, "hi", time.Now())

	for _, want := range []string{"Helwan", "BIS", "FMI", "SBS", "3,650"} {
		if !strings.Contains(payload.System, want) {
			t.Errorf("System should contain %q", want)
		}
	}
}

func TestAssemble_WindowFlattenedOldestFirst(t *testing.T) {
	a := NewAssembler()
	window := makeWindow(t, 6)

	payload := a.Assemble(window, "current question", time.Now())

	// 6 exchanges = 12 messages, plus the current user message.
	if len(payload.Messages) != 13 {
		t.Fatalf("len(Messages) = %d, want 13", len(payload.Messages))
	}

	for i := 0; i < 6; i++ {
		u := payload.Messages[2*i]
		asst := payload.Messages[2*i+1]
		if u.Role != models.RoleUser || u.Text != fmt.Sprintf("q%d", i) {
			t.Errorf("Messages[%d] = %s %q, want user q%d", 2*i, u.Role, u.Text, i)
		}
		if asst.Role != models.RoleAssistant || asst.Text != fmt.Sprintf("a%d", i) {
			t.Errorf("Messages[%d] = %s %q, want assistant a%d", 2*i+1, asst.Role, asst.Text, i)
		}
	}

	last := payload.Messages[len(payload.Messages)-1]
	if last.Role != models.RoleUser || last.Text != "current question" {
		t.Errorf("last message = %s %q, want the current user question", last.Role, last.Text)
	}
}

func TestAssemble_EmptyWindow(t *testing.T) {
	a := NewAssembler()
	payload := a.Assemble(nil, "first question", time.Now())

	if len(payload.Messages) != 1 {
		t.Fatalf("len(Messages) = %d, want 1", len(payload.Messages))
	}
	if payload.Messages[0].Text != "first question" {
		t.Errorf("Messages[0].Text = %q, want the user question", payload.Messages[0].Text)
	}
}

func TestAssemble_MessageTextVerbatim(t *testing.T) {
	a := NewAssembler()
	long := strings.Repeat("كلام طويل جداً ", 200)
	ex, err := models.NewExchange(long, "ok")
	if err != nil {
		t.Fatalf("NewExchange() error = %v", err)
	}

	payload := a.Assemble([]models.Exchange{*ex}, "next", time.Now())
	if payload.Messages[0].Text != long {
		t.Error("message text must not be truncated or modified")
	}
}

func TestNewAssemblerFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "info.txt")
	if err := os.WriteFile(path, []byte("CUSTOM COLLEGE DATA"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	a, err := NewAssemblerFromFile(path)
	if err != nil {
		t.Fatalf("NewAssemblerFromFile() error = %v", err)
	}

	payload := a.Assemble(nil, "hi", time.Now())
	if !strings.Contains(payload.System, "CUSTOM COLLEGE DATA") {
		t.Error("System should contain the custom info document")
	}
}

func TestNewAssemblerFromFile_Missing(t *testing.T) {
	if _, err := NewAssemblerFromFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("NewAssemblerFromFile() should fail for missing file")
	}
}
