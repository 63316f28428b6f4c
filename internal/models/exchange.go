// ABOUTME: Exchange represents one completed conversation turn (user message + assistant reply)
// ABOUTME: Core data structure for the chatbot pipeline; immutable once created
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role-attributed piece of conversation text.
type Message struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Exchange is one completed turn: the user message and the assistant
// response it produced. Partial marks turns whose model stream failed
// before completing; Err carries the failure description for display.
type Exchange struct {
	ID        string  `json:"exchange_id"`
	User      Message `json:"user"`
	Assistant Message `json:"assistant"`
	Partial   bool    `json:"partial,omitempty"`
	Err       string  `json:"error,omitempty"`
}

// NewExchange creates a completed Exchange with validation.
func NewExchange(userText, assistantText string) (*Exchange, error) {
	if strings.TrimSpace(userText) == "" {
		return nil, errors.New("user message cannot be empty")
	}
	now := time.Now().UTC()
	return &Exchange{
		ID:        generateExchangeID(),
		User:      Message{Role: RoleUser, Text: userText, Timestamp: now},
		Assistant: Message{Role: RoleAssistant, Text: assistantText, Timestamp: now},
	}, nil
}

// NewPartialExchange creates an Exchange for a turn whose dispatch failed.
// assistantText holds whatever chunks were received before the failure
// (possibly empty); dispatchErr describes the failure.
func NewPartialExchange(userText, assistantText string, dispatchErr error) (*Exchange, error) {
	ex, err := NewExchange(userText, assistantText)
	if err != nil {
		return nil, err
	}
	ex.Partial = true
	if dispatchErr != nil {
		ex.Err = dispatchErr.Error()
	}
	return ex, nil
}

// Messages flattens the exchange into its role-ordered messages. The
// assistant half is omitted when it carries no text, so a flattened
// conversation never contains empty assistant messages.
func (e *Exchange) Messages() []Message {
	msgs := []Message{e.User}
	if e.Assistant.Text != "" {
		msgs = append(msgs, e.Assistant)
	}
	return msgs
}

// generateExchangeID generates a unique exchange identifier
func generateExchangeID() string {
	return fmt.Sprintf("turn_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}
