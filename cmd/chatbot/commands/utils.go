// ABOUTME: Shared pipeline construction for CLI commands
// ABOUTME: Loads config, cache entries, college info, and the model backend
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/joho/godotenv"

	"github.com/MOAZHAGGAG/AI-chatbot/internal/cache"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/chat"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/config"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/llm"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/prompt"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/safety"
)

// pipeline bundles everything a command needs to run turns.
type pipeline struct {
	cfg        *config.Config
	cache      *cache.Cache
	controller *chat.Controller
}

// buildPipeline loads configuration and wires the conversation pipeline.
func buildPipeline(ctx context.Context) (*pipeline, error) {
	// Load .env file if it exists (for API keys)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cfg.APIKey() == "" {
		return nil, fmt.Errorf("no API key configured for provider %q: set %s", cfg.Provider, keyEnvName(cfg.Provider))
	}

	entries := cache.DefaultEntries()
	if cfg.CacheFile != "" {
		if entries, err = cache.LoadEntries(cfg.CacheFile); err != nil {
			return nil, err
		}
	}
	answerCache, err := cache.New(entries)
	if err != nil {
		return nil, err
	}

	assembler := prompt.NewAssembler()
	if cfg.InfoFile != "" {
		if assembler, err = prompt.NewAssemblerFromFile(cfg.InfoFile); err != nil {
			return nil, err
		}
	}

	dispatcher, err := llm.New(ctx, llm.Options{
		Provider:    cfg.Provider,
		APIKey:      cfg.APIKey(),
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	controller := chat.NewController(chat.Options{
		Cache:      answerCache,
		Assembler:  assembler,
		Dispatcher: dispatcher,
		Policy:     safety.NewKeywordPolicy(),
		Window:     cfg.HistoryWindow,
		Timeout:    cfg.Timeout,
	})

	return &pipeline{cfg: cfg, cache: answerCache, controller: controller}, nil
}

func keyEnvName(provider string) string {
	if provider == "openai" {
		return "OPENAI_API_KEY"
	}
	return "GOOGLE_API_KEY"
}

// streamReply prints chunks as they arrive and returns the full text
// plus the terminal dispatch error, if any. Partial text stays on
// screen when the stream fails.
func streamReply(w io.Writer, reply *chat.Reply) (string, error) {
	var full string
	for chunk := range reply.Chunks {
		fmt.Fprint(w, chunk)
		full += chunk
	}
	err := <-reply.Err
	fmt.Fprintln(w)
	return full, err
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
