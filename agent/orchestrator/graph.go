package orchestrator

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	dialognode "github.com/viliokaized/prime-intake/agent/nodes"
)

func (o *Orchestrator) compileHandleTurnGraph(
	ctx context.Context,
) (compose.Runnable[*dialognode.TurnState, dialognode.TurnOutput], error) {
	graph := compose.NewGraph[*dialognode.TurnState, dialognode.TurnOutput]()

	if err := graph.AddLambdaNode("booking_ack",
		compose.InvokableLambda(func(ctx context.Context, in *dialognode.TurnState) (*dialognode.TurnState, error) {
			return dialognode.BookingAck(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node booking_ack: %w", err)
	}

	if err := graph.AddLambdaNode("extract_entities",
		compose.InvokableLambda(func(ctx context.Context, in *dialognode.TurnState) (*dialognode.TurnState, error) {
			return dialognode.ExtractEntities(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node extract_entities: %w", err)
	}

	if err := graph.AddLambdaNode("answer_if_complete",
		compose.InvokableLambda(func(ctx context.Context, in *dialognode.TurnState) (*dialognode.TurnState, error) {
			return dialognode.AnswerIfComplete(ctx, in, o.answerer, o.gatewayTimeout)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node answer_if_complete: %w", err)
	}

	if err := graph.AddLambdaNode("booking_intent",
		compose.InvokableLambda(func(ctx context.Context, in *dialognode.TurnState) (*dialognode.TurnState, error) {
			return dialognode.BookingIntent(in, o.scheduleLink)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node booking_intent: %w", err)
	}

	if err := graph.AddLambdaNode("dispatch_lead",
		compose.InvokableLambda(func(ctx context.Context, in *dialognode.TurnState) (*dialognode.TurnState, error) {
			return dialognode.DispatchLead(ctx, in, o.notifier, o.persister, o.gatewayTimeout)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node dispatch_lead: %w", err)
	}

	if err := graph.AddLambdaNode("compose_reply",
		compose.InvokableLambda(func(ctx context.Context, in *dialognode.TurnState) (*dialognode.TurnState, error) {
			return dialognode.ComposeReply(ctx, in, o.answerer, o.scheduleLink, o.gatewayTimeout)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node compose_reply: %w", err)
	}

	if err := graph.AddLambdaNode("finalize_reply",
		compose.InvokableLambda(func(ctx context.Context, in *dialognode.TurnState) (dialognode.TurnOutput, error) {
			return dialognode.FinalizeReply(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize_reply: %w", err)
	}

	edges := [][2]string{
		{compose.START, "booking_ack"},
		{"booking_ack", "extract_entities"},
		{"extract_entities", "answer_if_complete"},
		{"answer_if_complete", "booking_intent"},
		{"booking_intent", "dispatch_lead"},
		{"dispatch_lead", "compose_reply"},
		{"compose_reply", "finalize_reply"},
		{"finalize_reply", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("dialog.handle_turn"))
	if err != nil {
		return nil, fmt.Errorf("compile dialog graph: %w", err)
	}
	return runner, nil
}
