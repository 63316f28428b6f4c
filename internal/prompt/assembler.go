// ABOUTME: Assembler builds the full instruction payload sent to the model
// ABOUTME: Combines the static persona template, current date, college info, and history window
package prompt

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/MOAZHAGGAG/AI-chatbot/internal/models"
)

//go:embed info.txt
var defaultCollegeInfo string

// DateLayout renders timestamps as a human-readable date plus weekday,
// e.g. "October 5, 2025, Sunday". Injecting the date into the system
// text gives the model temporal awareness without a network call.
const DateLayout = "January 2, 2006, Monday"

// systemTemplate is the static persona and handling instructions. The
// first %s is the formatted date, the second the college info document.
const systemTemplate = `Fun, friendly Helwan Commerce Faculty assistant! 🎓

TODAY: %s

STYLE: Warm, conversational, use emojis. Arabic for Arabic questions, English for English.

HANDLING:
- Greetings → Welcome warmly
- Personal chat → Engage, then redirect to college
- College questions → Use info below
- Off-topic → Humor redirect: "هههه، أنا خبير التجارة مش كده! 😄"

DATA:
%s

Keep responses helpful, accurate, and fun!

Answer questions directly and helpfully using this information.`

// Payload is the assembled request for one model call.
type Payload struct {
	System   string
	Messages []models.Message
}

// Assembler builds payloads from a fixed college info document.
type Assembler struct {
	collegeInfo string
}

// NewAssembler creates an Assembler using the embedded college info.
func NewAssembler() *Assembler {
	return &Assembler{collegeInfo: defaultCollegeInfo}
}

// NewAssemblerFromFile creates an Assembler whose college info is read
// from the given file, for deployments that maintain their own document.
func NewAssemblerFromFile(path string) (*Assembler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read college info file: %w", err)
	}
	return &Assembler{collegeInfo: string(data)}, nil
}

// Assemble builds the payload for one turn: the dated system text plus
// the history window flattened chronologically, with the current user
// message last. Message text is passed through verbatim; only the
// exchange count is bounded, and that happens upstream in history.
func (a *Assembler) Assemble(window []models.Exchange, userMessage string, now time.Time) Payload {
	var msgs []models.Message
	for i := range window {
		msgs = append(msgs, window[i].Messages()...)
	}
	msgs = append(msgs, models.Message{
		Role:      models.RoleUser,
		Text:      userMessage,
		Timestamp: now,
	})

	return Payload{
		System:   fmt.Sprintf(systemTemplate, now.Format(DateLayout), a.collegeInfo),
		Messages: msgs,
	}
}
