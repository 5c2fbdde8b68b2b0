package dialognode

import (
	"fmt"
	"regexp"
)

var bookingIntentRe = regexp.MustCompile(`(?i)book|meeting|schedule|appointment`)

const msgScheduleFollowUp = "💬 Would you like help with anything else?"

func scheduleMessage(link string) string {
	return fmt.Sprintf(`📅 Schedule a meeting with a Prime Insurance agent: <a href="%s" target="_blank">Book now</a>`, link)
}

// BookingIntent answers scheduling requests with the fixed booking link.
// Extraction already ran, so any fields in the message are kept; nothing is
// dispatched this turn.
func BookingIntent(in *TurnState, scheduleLink string) (*TurnState, error) {
	if in.Replied() {
		return in, nil
	}
	if !bookingIntentRe.MatchString(in.Question) {
		return in, nil
	}

	in.reply(scheduleMessage(scheduleLink), msgScheduleFollowUp)
	return in, nil
}
