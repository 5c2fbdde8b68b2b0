package dialognode

const (
	msgBookingConfirmed = "✅ Your meeting has been booked!"
	msgBookingFollowUp  = "💬 What else would you like to ask?"
)

// BookingAck consumes a pending booking confirmation. The message text is not
// otherwise processed this turn and nothing is written to the transcript.
func BookingAck(in *TurnState) (*TurnState, error) {
	conv := in.Conversation
	if !conv.AwaitingBookingConfirmation {
		return in, nil
	}

	conv.AwaitingBookingConfirmation = false
	conv.Touch(in.Now)
	in.transient = true
	in.reply(msgBookingConfirmed, msgBookingFollowUp)
	return in, nil
}
