package http

import (
	"net/http"

	"loan-wizard/service"
)

// ChatHandler proxies free-form questions to the conversational responder.
type ChatHandler struct {
	service *service.ChatService
}

func NewChatHandler(service *service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat answers one message. Responder failures never surface here; the
// service substitutes an in-character fallback.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message string `json:"message"`
	}
	if err := decodeJSON(r, &body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	reply, err := h.service.Ask(r.Context(), r.PathValue("id"), body.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}
