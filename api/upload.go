package api

import (
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	contractx "github.com/viliokaized/prime-intake/agent/contract"
	statex "github.com/viliokaized/prime-intake/agent/state"
)

const maxUploadBytes = 10 << 20

// UploadHandler accepts a document for one session. The extracted text is
// appended to that session's supplemental knowledge and used to ground
// knowledge-base answers for that session only.
type UploadHandler struct {
	store     *statex.Store
	extractor contractx.TextExtractor
}

func (h *UploadHandler) handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	sessionID := r.FormValue("sessionId")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing sessionId")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read file")
		return
	}

	text, err := h.extractor.ExtractText(header.Filename, data)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.AppendKnowledge(sessionID, text); err != nil {
		writeError(w, http.StatusBadRequest, "missing or invalid sessionId")
		return
	}

	log.Info().Str("session_id", sessionID).Str("file", header.Filename).Int("bytes", len(data)).Msg("document added to session knowledge")
	writeJSON(w, http.StatusOK, map[string]string{"message": "✅ Document uploaded and processed successfully."})
}
