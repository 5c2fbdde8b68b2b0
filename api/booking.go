package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	statex "github.com/viliokaized/prime-intake/agent/state"
)

// BookingRequest is the body of POST /calendly-booked, sent by the scheduling
// provider's webhook once a meeting is booked.
type BookingRequest struct {
	SessionID string `json:"sessionId"`
}

type BookingHandler struct {
	store *statex.Store
}

func (h *BookingHandler) handle(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.store.MarkBookingPending(req.SessionID); err != nil {
		if errors.Is(err, statex.ErrInvalidSession) || errors.Is(err, statex.ErrUnknownSession) {
			writeError(w, http.StatusBadRequest, "missing or invalid sessionId")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to record booking")
		return
	}

	log.Info().Str("session_id", req.SessionID).Msg("booking confirmed for session")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking saved in session."})
}
