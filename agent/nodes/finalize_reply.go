package dialognode

import (
	"fmt"
	"strings"

	contractx "github.com/viliokaized/prime-intake/agent/contract"
)

// FinalizeReply appends the bot's reply to the transcript and produces the
// pipeline output. Transient turns (booking acknowledgment) leave the
// transcript untouched.
func FinalizeReply(in *TurnState) (TurnOutput, error) {
	if !in.Replied() {
		return TurnOutput{}, fmt.Errorf("%w: turn produced no reply", contractx.ErrValidation)
	}

	if !in.transient {
		contents := make([]string, 0, len(in.Messages))
		for _, m := range in.Messages {
			contents = append(contents, m.Content)
		}
		in.Conversation.AppendAssistant(strings.Join(contents, "\n"), in.Now)
	}

	return TurnOutput{Messages: in.Messages}, nil
}
