package http

import (
	"net/http"
	"time"

	"loan-wizard/service"
)

// SessionHandler drives the wizard dialogue over HTTP.
type SessionHandler struct {
	dialogue *service.DialogueService
	store    *service.SessionStore
}

func NewSessionHandler(dialogue *service.DialogueService, store *service.SessionStore) *SessionHandler {
	return &SessionHandler{dialogue: dialogue, store: store}
}

// Start opens a session and presents step 0.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	id, step := h.dialogue.Start(time.Now())
	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": id,
		"step":       step,
	})
}

// Step renders the session's current step.
func (h *SessionHandler) Step(w http.ResponseWriter, r *http.Request) {
	step, err := h.dialogue.Current(r.PathValue("id"), time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, step)
}

// Advance commits the posted answers and moves the dialogue forward; on the
// terminal step the response carries the results view instead of a step.
func (h *SessionHandler) Advance(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Answers map[string]string `json:"answers"`
	}
	if err := decodeJSON(r, &body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.dialogue.Advance(r.Context(), r.PathValue("id"), body.Answers, time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Restart replaces the form model with defaults and rewinds to step 0.
func (h *SessionHandler) Restart(w http.ResponseWriter, r *http.Request) {
	step, err := h.dialogue.Restart(r.PathValue("id"), time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, step)
}

// Results renders the full region view: snapshot, enrichment regions,
// chart and commentary, each region carrying its own state.
func (h *SessionHandler) Results(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.View())
}
