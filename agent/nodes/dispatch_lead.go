package dialognode

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/viliokaized/prime-intake/agent/contract"
)

// DispatchLead delivers a newly completed lead to the notifier and the
// persister, at most once per conversation. Either effect failing fails the
// whole dispatch: the failure becomes the bot's reply and the dispatched flag
// stays false so the next complete-lead turn retries.
func DispatchLead(ctx context.Context, in *TurnState, notifier contractx.Notifier, persister contractx.Persister, timeout time.Duration) (*TurnState, error) {
	if in.Replied() {
		return in, nil
	}

	conv := in.Conversation
	if !conv.Lead.IsComplete() || conv.Dispatched {
		return in, nil
	}

	callCtx, cancel := withGatewayTimeout(ctx, timeout)
	defer cancel()

	if err := notifier.Notify(callCtx, conv.Lead); err != nil {
		log.Error().Err(err).Str("session_id", in.SessionID).Msg("lead notification failed")
		in.reply("❌ Error sending your details: " + err.Error())
		return in, nil
	}
	if err := persister.Persist(callCtx, conv.Lead); err != nil {
		log.Error().Err(err).Str("session_id", in.SessionID).Msg("lead persistence failed")
		in.reply("❌ Error sending your details: " + err.Error())
		return in, nil
	}

	// The conversation lock is held for the whole turn, so this flip is the
	// only false -> true transition that can ever happen for this session.
	conv.Dispatched = true
	conv.Touch(in.Now)
	in.JustDispatched = true
	log.Info().Str("session_id", in.SessionID).Str("insurance_type", conv.Lead.InsuranceType).Msg("lead dispatched")
	return in, nil
}
