package dialognode

import (
	extractx "github.com/viliokaized/prime-intake/agent/extract"
)

// ExtractEntities merges field candidates found in the message into the lead
// (first-write-wins), records the user turn, and clears the last-asked marker
// once that field has been filled.
func ExtractEntities(in *TurnState) (*TurnState, error) {
	if in.Replied() {
		return in, nil
	}

	conv := in.Conversation
	extractx.Apply(&conv.Lead, extractx.Extract(in.Question))
	conv.AppendUser(in.Question, in.Now)

	if conv.LastAsked != "" && conv.Lead.Has(conv.LastAsked) {
		conv.LastAsked = ""
	}
	return in, nil
}
