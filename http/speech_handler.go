package http

import (
	"errors"
	"net/http"

	"loan-wizard/service"
)

// SpeechHandler renders narration audio for the page.
type SpeechHandler struct {
	service *service.SpeechService
}

func NewSpeechHandler(service *service.SpeechService) *SpeechHandler {
	return &SpeechHandler{service: service}
}

// Speak returns an audio stream for the given text. A renderer failure
// returns a bare non-success status so the page reverts the speaker
// affordance to idle; a superseded narration is reported separately so
// stale audio is never played.
func (h *SpeechHandler) Speak(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	audio, err := h.service.Narrate(r.Context(), r.PathValue("id"), body.Text)
	if errors.Is(err, service.ErrNarrationSuperseded) {
		w.WriteHeader(http.StatusConflict)
		return
	}
	if errors.Is(err, service.ErrSessionNotFound) {
		writeServiceError(w, err)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	_, _ = w.Write(audio)
}
