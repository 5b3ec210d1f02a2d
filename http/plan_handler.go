package http

import (
	"net/http"
	"time"

	"loan-wizard/service"
)

// PlanHandler saves and loads named plans.
type PlanHandler struct {
	service *service.PlanService
}

func NewPlanHandler(service *service.PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

// Save persists the session under a display name and returns the shareable
// plan code.
func (h *PlanHandler) Save(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SessionID string `json:"session_id"`
		PlanName  string `json:"plan_name"`
	}
	if err := decodeJSON(r, &body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	code, err := h.service.Save(r.Context(), body.SessionID, body.PlanName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"plan_id": code,
	})
}

// Load hydrates the session from a stored plan. Failures leave the session
// untouched and surface as a blocking notice on the page.
func (h *PlanHandler) Load(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.service.Load(r.Context(), r.PathValue("id"), body.Code, time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
