package dialognode

import (
	"context"
	"time"

	contractx "github.com/viliokaized/prime-intake/agent/contract"
)

// AnswerIfComplete handles the turn of a conversation whose lead is already
// complete and dispatched. The answerer receives the full contact triple and
// short-circuits to its canned acknowledgment; no dispatch side effect occurs.
func AnswerIfComplete(ctx context.Context, in *TurnState, answerer contractx.Answerer, timeout time.Duration) (*TurnState, error) {
	if in.Replied() {
		return in, nil
	}

	conv := in.Conversation
	if !conv.Lead.IsComplete() || !conv.Dispatched {
		return in, nil
	}

	callCtx, cancel := withGatewayTimeout(ctx, timeout)
	defer cancel()

	answer, err := answerer.Answer(callCtx, contractx.AnswerRequest{
		Question:     in.Question,
		Name:         conv.Lead.Name,
		Email:        conv.Lead.Email,
		Phone:        conv.Lead.Phone,
		Supplemental: conv.SupplementalKnowledge,
	})
	if err != nil {
		in.reply("❌ Sorry, I couldn't answer that right now: " + err.Error())
		return in, nil
	}

	in.reply(answer)
	return in, nil
}
