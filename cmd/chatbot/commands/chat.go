// ABOUTME: Interactive terminal chat session against the conversation pipeline
// ABOUTME: Streams model output as it arrives; /clear resets, /quit exits
package commands

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MOAZHAGGAG/AI-chatbot/internal/llm"
)

const welcomeMessage = `🎓 Faculty of Commerce & Business Administration — Helwan University

مرحباً! أنا مساعد كلية التجارة وإدارة الأعمال بجامعة حلوان.

اسألني عن أي شيء يتعلق بـ:
- الكلية
- شروط وإجراءات القبول
- المصروفات والرسوم الدراسية والمعلومات المالية
- الأنشطة الطلابية والتنظيمات

Commands: /clear resets the conversation, /quit exits.`

// NewChatCmd creates the chat command.
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Start an interactive chat session in the terminal.

Responses stream as they arrive. Known questions are answered instantly
from the local cache without calling the model.`,
		Example: `  chatbot chat
  CHATBOT_PROVIDER=openai chatbot chat`,
		Args: cobra.NoArgs,
		RunE: runChat,
	}
	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	p, err := buildPipeline(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !quiet {
		fmt.Fprintln(out, welcomeMessage)
		fmt.Fprintln(out)
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	// A pasted question can exceed the scanner's default 64 KiB line cap.
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch {
		case input == "":
			continue
		case input == "/quit" || input == "/exit":
			fmt.Fprintln(out, "مع السلامة! 👋")
			return nil
		case input == "/clear":
			p.controller.Clear()
			fmt.Fprintln(out, "🗑️  Conversation cleared.")
			continue
		}

		reply, err := p.controller.Submit(ctx, input)
		if err != nil {
			fmt.Fprintf(out, "⚠️  %v\n", err)
			continue
		}

		fmt.Fprint(out, "Bot: ")
		partial, dispatchErr := streamReply(out, reply)
		if dispatchErr != nil {
			if errors.Is(dispatchErr, llm.ErrEmptyResponse) {
				// Fallback text was already streamed; nothing extra to say.
			} else if partial != "" {
				fmt.Fprintf(out, "⚠️  الإجابة غير مكتملة: %v\n", dispatchErr)
			} else {
				fmt.Fprintf(out, "⚠️  عذراً، حدث خطأ. يرجى المحاولة مرة أخرى. (%v)\n", dispatchErr)
			}
		}

		if verbose {
			fmt.Fprintf(out, "💬 %d msgs [%s]\n", p.controller.MessageCount(), reply.Outcome)
		}
		fmt.Fprintln(out)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
