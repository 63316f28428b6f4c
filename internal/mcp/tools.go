// ABOUTME: MCP tool definitions and registration for the chatbot server
// ABOUTME: Exposes the conversation pipeline to LLM agents over stdio
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/MOAZHAGGAG/AI-chatbot/internal/cache"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/chat"
)

// RegisterTools registers all chatbot MCP tools with the server.
func RegisterTools(server *mcpserver.MCPServer, controller *chat.Controller, answerCache *cache.Cache) *Handlers {
	handlers := &Handlers{
		controller: controller,
		cache:      answerCache,
	}

	// 1. ask_chatbot - Submit a question through the full pipeline
	server.AddTool(mcp.Tool{
		Name:        "ask_chatbot",
		Description: "Ask the Helwan Commerce college chatbot a question. Answers come from the exact-match cache when possible, otherwise from the model with bounded conversation context.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "The user question, Arabic or English",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskChatbot)

	// 2. clear_chat - Reset the conversation
	server.AddTool(mcp.Tool{
		Name:        "clear_chat",
		Description: "Clear the current conversation history and start fresh.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ClearChat)

	// 3. get_history - Inspect the conversation so far
	server.AddTool(mcp.Tool{
		Name:        "get_history",
		Description: "Get the exchanges of the current conversation in chronological order.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"max_exchanges": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of most-recent exchanges to return (default: all)",
				},
			},
		},
	}, handlers.GetHistory)

	// 4. list_cached_questions - Show the known-question set
	server.AddTool(mcp.Tool{
		Name:        "list_cached_questions",
		Description: "List the normalized known questions answered from the local cache without a model call.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListCachedQuestions)

	return handlers
}
