// ABOUTME: MCP tool handler implementations for the chatbot server
// ABOUTME: Drains the streaming reply into a single result per call
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/MOAZHAGGAG/AI-chatbot/internal/cache"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/chat"
)

// Handlers contains the handler functions for all MCP tools.
type Handlers struct {
	controller *chat.Controller
	cache      *cache.Cache
}

// AskChatbot handles the ask_chatbot tool. MCP has no streaming result,
// so chunks are drained into one text; a partial answer plus its error
// is still returned rather than discarded.
func (h *Handlers) AskChatbot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	reply, err := h.controller.Submit(ctx, question)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var full strings.Builder
	for chunk := range reply.Chunks {
		full.WriteString(chunk)
	}
	if dispatchErr := <-reply.Err; dispatchErr != nil {
		if full.Len() > 0 {
			return mcp.NewToolResultText(fmt.Sprintf("%s\n\n[partial answer: %v]", full.String(), dispatchErr)), nil
		}
		return mcp.NewToolResultError(dispatchErr.Error()), nil
	}

	return mcp.NewToolResultText(full.String()), nil
}

// ClearChat handles the clear_chat tool.
func (h *Handlers) ClearChat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.controller.Clear()
	return mcp.NewToolResultText("Conversation cleared."), nil
}

// GetHistory handles the get_history tool.
func (h *Handlers) GetHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	maxExchanges := request.GetInt("max_exchanges", 0)

	exchanges := h.controller.History()
	if maxExchanges > 0 && len(exchanges) > maxExchanges {
		exchanges = exchanges[len(exchanges)-maxExchanges:]
	}

	data, err := json.MarshalIndent(exchanges, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode history: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// ListCachedQuestions handles the list_cached_questions tool.
func (h *Handlers) ListCachedQuestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys := h.cache.Keys()
	if len(keys) == 0 {
		return mcp.NewToolResultText("No cached questions loaded."), nil
	}
	return mcp.NewToolResultText(strings.Join(keys, "\n")), nil
}
