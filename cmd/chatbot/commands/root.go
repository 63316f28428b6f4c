// ABOUTME: Root CLI command wiring subcommands and global flags
// ABOUTME: Entry point for chat, ask, cache, mcp, and version
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chatbot",
		Short: "Helwan Commerce college chatbot",
		Long: `Helwan Commerce college chatbot 🎓

Answers questions about the Faculty of Commerce & Business Administration,
Helwan University. Known questions are served from a local cache with zero
model tokens; everything else goes to the configured model (Gemini or
OpenAI) with a bounded conversation context.

Configuration is read from environment variables (and a .env file):
GOOGLE_API_KEY / OPENAI_API_KEY, CHATBOT_PROVIDER, CHATBOT_MODEL,
CHATBOT_TEMPERATURE, CHATBOT_HISTORY_WINDOW.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewChatCmd())
	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewCacheCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
