// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to use the chatbot pipeline via stdio
package commands

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/MOAZHAGGAG/AI-chatbot/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command.
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the chatbot as an MCP (Model Context Protocol) server over stdio,
exposing ask_chatbot, clear_chat, get_history, and
list_cached_questions tools.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically launched by the agent host)
  chatbot mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "helwan-chatbot": {
  #       "command": "chatbot",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server.
func runMCP(cmd *cobra.Command, args []string) error {
	p, err := buildPipeline(cmd.Context())
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer(
		"Helwan Commerce Chatbot",
		versionInfo.Version,
	)
	mcp.RegisterTools(server, p.controller, p.cache)

	if !quiet {
		log.Println("Chatbot MCP server starting on stdio...")
	}
	return mcpserver.ServeStdio(server)
}
