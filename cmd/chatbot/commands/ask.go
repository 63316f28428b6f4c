// ABOUTME: One-shot question command with optional boundary-layer retry
// ABOUTME: The core never retries; --retries re-dispatches failed turns from here
package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MOAZHAGGAG/AI-chatbot/internal/util"
)

var askRetries int

// NewAskCmd creates the ask command.
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a single question and exit",
		Long: `Ask a single question and print the answer.

Cached questions are answered locally; everything else is dispatched to
the model. With --retries, failed dispatches are retried with
exponential backoff.`,
		Example: `  chatbot ask "مصاريف عربي انتظام"
  chatbot ask --retries=2 "what are the BIS admission steps?"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().IntVar(&askRetries, "retries", 0, "Retry failed dispatches this many times")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	p, err := buildPipeline(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	question := args[0]

	var lastOutcome string
	err = util.Do(ctx, askRetries, time.Second, func() error {
		reply, err := p.controller.Submit(ctx, question)
		if err != nil {
			return err
		}
		lastOutcome = reply.Outcome.String()
		_, dispatchErr := streamReply(out, reply)
		return dispatchErr
	})
	if err != nil {
		return fmt.Errorf("failed to get an answer: %w", err)
	}

	if verbose {
		fmt.Fprintf(out, "[%s]\n", lastOutcome)
	}
	return nil
}
