// ABOUTME: Cache inspection command listing the known-question set
// ABOUTME: Shows normalized keys and answers served without model calls
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MOAZHAGGAG/AI-chatbot/internal/cache"
	"github.com/MOAZHAGGAG/AI-chatbot/internal/config"
)

// NewCacheCmd creates the cache command.
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "List cached questions and answers",
		Long: `List the known questions answered from the local exact-match cache.

These answers cost zero model tokens. Entries come from the built-in
set, or from the JSON file named by CHATBOT_CACHE_FILE.`,
		Args: cobra.NoArgs,
		RunE: runCache,
	}
	return cmd
}

func runCache(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	entries := cache.DefaultEntries()
	if cfg.CacheFile != "" {
		if entries, err = cache.LoadEntries(cfg.CacheFile); err != nil {
			return err
		}
	}
	answerCache, err := cache.New(entries)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d cached question(s):\n\n", answerCache.Len())
	for _, key := range answerCache.Keys() {
		answer, _ := answerCache.Lookup(key)
		fmt.Fprintf(out, "• %s\n", key)
		if !quiet {
			fmt.Fprintf(out, "  → %s\n", truncate(answer, 80))
		}
	}
	return nil
}
