package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	contractx "github.com/viliokaized/prime-intake/agent/contract"
)

// ChatRequest is the body of POST /chat. The question field is named
// `question`; this is the canonical name the widget sends.
type ChatRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"sessionId"`
}

// ChatResponse carries the bot's reply as an ordered list of messages.
type ChatResponse struct {
	Messages []contractx.BotMessage `json:"messages"`
}

type ChatHandler struct {
	service ChatService
}

func (h *ChatHandler) handle(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	messages, err := h.service.HandleMessage(r.Context(), req.SessionID, req.Question)
	if err != nil {
		if errors.Is(err, contractx.ErrInvalidQuestion) || errors.Is(err, contractx.ErrInvalidSession) {
			writeError(w, http.StatusBadRequest, "missing question or sessionId")
			return
		}
		log.Error().Err(err).Str("session_id", req.SessionID).Msg("chat turn failed")
		writeError(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Messages: messages})
}
