// Package orchestrator sequences one conversational turn: booking
// acknowledgment, entity extraction, completion handling, booking intent,
// one-time dispatch, and response composition, in strict priority order.
package orchestrator

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/viliokaized/prime-intake/agent/contract"
	dialognode "github.com/viliokaized/prime-intake/agent/nodes"
	statex "github.com/viliokaized/prime-intake/agent/state"
)

var (
	ErrInvalidQuestion = contractx.ErrInvalidQuestion
	ErrInvalidSession  = contractx.ErrInvalidSession
)

const defaultGatewayTimeout = 30 * time.Second

type Config struct {
	// ScheduleLink is the human-scheduling URL offered for booking intents.
	ScheduleLink string

	// GatewayTimeout bounds each answerer/notifier/persister call. Timeout is
	// treated as a gateway failure.
	GatewayTimeout time.Duration
}

type Orchestrator struct {
	store     *statex.Store
	answerer  contractx.Answerer
	notifier  contractx.Notifier
	persister contractx.Persister

	graphRunner compose.Runnable[*dialognode.TurnState, dialognode.TurnOutput]

	scheduleLink   string
	gatewayTimeout time.Duration

	now func() time.Time
}

func New(
	store *statex.Store,
	answerer contractx.Answerer,
	notifier contractx.Notifier,
	persister contractx.Persister,
	cfg Config,
) (*Orchestrator, error) {
	if store == nil {
		return nil, errors.New("session store is required")
	}
	if answerer == nil {
		return nil, errors.New("answerer gateway is required")
	}
	if notifier == nil {
		return nil, errors.New("notifier gateway is required")
	}
	if persister == nil {
		return nil, errors.New("persister gateway is required")
	}

	scheduleLink := strings.TrimSpace(cfg.ScheduleLink)
	if scheduleLink == "" {
		return nil, errors.New("schedule link is required")
	}
	timeout := cfg.GatewayTimeout
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}

	o := &Orchestrator{
		store:          store,
		answerer:       answerer,
		notifier:       notifier,
		persister:      persister,
		scheduleLink:   scheduleLink,
		gatewayTimeout: timeout,
		now:            time.Now,
	}

	graphRunner, err := o.compileHandleTurnGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner

	return o, nil
}

// HandleMessage processes one inbound chat message end to end and returns the
// bot's reply. The conversation is locked for the whole turn: turns for the
// same session are serialized, turns for different sessions run in parallel.
func (o *Orchestrator) HandleMessage(ctx context.Context, sessionID, question string) ([]contractx.BotMessage, error) {
	in, err := dialognode.NewTurn(sessionID, question, o.now)
	if err != nil {
		return nil, err
	}

	conv, err := o.store.GetOrCreate(in.SessionID)
	if err != nil {
		return nil, err
	}
	conv.Lock()
	defer conv.Unlock()
	in.Conversation = conv

	out, err := o.graphRunner.Invoke(ctx, in)
	if err != nil {
		return nil, err
	}
	return out.Messages, nil
}
