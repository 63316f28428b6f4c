// ABOUTME: Main entry point for the chatbot MCP server with stdio transport
// ABOUTME: Initializes the conversation pipeline and registers all tools
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/MOAZHAGGAG/AI-chatbot/internal/cache"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/chat"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/config"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/llm"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/mcp"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/prompt"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/safety"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.APIKey() == "" {
		log.Printf("Warning: no API key set for provider %q - model dispatch will fail", cfg.Provider)
	}

	entries := cache.DefaultEntries()
	if cfg.CacheFile != "" {
		if entries, err = cache.LoadEntries(cfg.CacheFile); err != nil {
			log.Fatalf("Failed to load cache entries: %v", err)
		}
	}
	answerCache, err := cache.New(entries)
	if err != nil {
		log.Fatalf("Failed to build answer cache: %v", err)
	}

	assembler := prompt.NewAssembler()
	if cfg.InfoFile != "" {
		if assembler, err = prompt.NewAssemblerFromFile(cfg.InfoFile); err != nil {
			log.Fatalf("Failed to load college info: %v", err)
		}
	}

	dispatcher, err := llm.New(context.Background(), llm.Options{
		Provider:    cfg.Provider,
		APIKey:      cfg.APIKey(),
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		log.Fatalf("Failed to create model dispatcher: %v", err)
	}

	controller := chat.NewController(chat.Options{
		Cache:      answerCache,
		Assembler:  assembler,
		Dispatcher: dispatcher,
		Policy:     safety.NewKeywordPolicy(),
		Window:     cfg.HistoryWindow,
		Timeout:    cfg.Timeout,
	})

	server := mcpserver.NewMCPServer(
		"Helwan Commerce Chatbot",
		"0.1.0",
	)
	mcp.RegisterTools(server, controller, answerCache)

	log.Println("Chatbot MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
