package contract

// BotMessage is one reply item in the shape the chat widget consumes.
type BotMessage struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Bot wraps content as a bot-typed message.
func Bot(content string) BotMessage {
	return BotMessage{Type: "bot", Content: content}
}

// AnswerRequest carries a question plus whatever identity and context the
// conversation has gathered so far. When all three identity fields are
// non-empty the answerer short-circuits to a canned acknowledgment without
// invoking the generation capability.
type AnswerRequest struct {
	Question     string
	Name         string
	Email        string
	Phone        string
	Supplemental string
}

// HasFullIdentity reports whether the contact triple is fully known.
func (r AnswerRequest) HasFullIdentity() bool {
	return r.Name != "" && r.Email != "" && r.Phone != ""
}
