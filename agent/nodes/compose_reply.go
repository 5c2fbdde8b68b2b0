package dialognode

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	contractx "github.com/viliokaized/prime-intake/agent/contract"
	slotx "github.com/viliokaized/prime-intake/agent/slot"
)

const intakeSystemPrompt = "You are an insurance assistant. Be friendly. " +
	"Collect: full name, email, phone, and insurance type (auto, health, life, home). " +
	"Ask one question at a time. Use short, polite answers. And answer user questions."

var closingInvitations = []string{
	"💬 How else can I assist you today?",
	"🙏 Feel free to ask anything else!",
	"🎀 Would you like to know something more?",
	"🤖 I'm here to help. What's next?",
}

func receivedMessage(link string) string {
	return fmt.Sprintf("✅ Thank you! Your information has been received.\n\n"+
		"Would you like to:\n1️⃣ Continue with more questions\n"+
		`2️⃣ <a href="%s" target="_blank">📅 Book a meeting with an agent</a>`, link)
}

// ComposeReply picks the turn's reply when no earlier node claimed it:
// ask for the next missing field, acknowledge a dispatch that just happened,
// answer post-dispatch questions, or fall back to free-form generation.
func ComposeReply(ctx context.Context, in *TurnState, answerer contractx.Answerer, scheduleLink string, timeout time.Duration) (*TurnState, error) {
	if in.Replied() {
		return in, nil
	}

	conv := in.Conversation

	if missing := slotx.NextMissing(&conv.Lead); missing != "" {
		conv.LastAsked = missing
		in.reply(slotx.Prompt(missing))
		return in, nil
	}

	if in.JustDispatched {
		in.reply(receivedMessage(scheduleLink))
		return in, nil
	}

	callCtx, cancel := withGatewayTimeout(ctx, timeout)
	defer cancel()

	if conv.Dispatched {
		answer, err := answerer.Answer(callCtx, contractx.AnswerRequest{
			Question:     in.Question,
			Supplemental: conv.SupplementalKnowledge,
		})
		if err != nil {
			in.reply("❌ Sorry, I couldn't answer that right now: " + err.Error())
			return in, nil
		}
		if answer == "" {
			answer = "✅ You're all set! Feel free to ask more questions."
		}
		in.reply(answer)
		return in, nil
	}

	// Free-form turn while still collecting. Unreachable with the current
	// branch ordering, kept as a defensive fallback.
	generated, err := answerer.Generate(callCtx, intakeSystemPrompt, in.Question)
	if err != nil {
		in.reply("❌ Sorry, I couldn't answer that right now: " + err.Error())
		return in, nil
	}
	in.reply(withClosing(strings.TrimSpace(generated)))
	return in, nil
}

// withClosing appends a random closing invitation unless the text already
// carries an equivalent phrase.
func withClosing(text string) string {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "how else can i help") || strings.Contains(lower, "what else can i do for you") {
		return text
	}
	return text + "\n\n" + closingInvitations[rand.IntN(len(closingInvitations))]
}
