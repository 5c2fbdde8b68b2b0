// Package dialognode contains the per-step functions of the dialog turn
// pipeline. Each node receives the shared TurnState, may claim the turn by
// setting the reply, and passes through untouched once a reply exists:
// first match wins, no fallthrough.
package dialognode

import (
	"context"
	"strings"
	"time"

	contractx "github.com/viliokaized/prime-intake/agent/contract"
	statex "github.com/viliokaized/prime-intake/agent/state"
)

// TurnState is threaded through every node of one conversational turn. The
// orchestrator holds the conversation lock for the whole pipeline, so nodes
// mutate the conversation freely.
type TurnState struct {
	SessionID string
	Question  string
	Now       time.Time

	Conversation *statex.Conversation

	// JustDispatched is set by the dispatch node on the turn the lead was
	// delivered, so response composition can distinguish the completing turn
	// from later post-dispatch turns.
	JustDispatched bool

	// transient marks a turn that must leave the transcript untouched
	// (booking acknowledgment consumes the message without processing it).
	transient bool

	Messages []contractx.BotMessage
}

// TurnOutput is the pipeline result.
type TurnOutput struct {
	Messages []contractx.BotMessage
}

// NewTurn validates the inbound request before any state is touched.
func NewTurn(sessionID, question string, nowFn func() time.Time) (*TurnState, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, contractx.ErrInvalidSession
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, contractx.ErrInvalidQuestion
	}

	return &TurnState{
		SessionID: sessionID,
		Question:  question,
		Now:       nowFn().UTC(),
	}, nil
}

// Replied reports whether an earlier node already claimed this turn.
func (t *TurnState) Replied() bool {
	return len(t.Messages) > 0
}

func (t *TurnState) reply(contents ...string) {
	for _, c := range contents {
		t.Messages = append(t.Messages, contractx.Bot(c))
	}
}

func withGatewayTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
