package http

import (
	"net/http"

	"loan-wizard/service"
)

// RatesHandler serves the current lending rates.
type RatesHandler struct {
	orchestrator *service.OrchestratorService
}

func NewRatesHandler(orchestrator *service.OrchestratorService) *RatesHandler {
	return &RatesHandler{orchestrator: orchestrator}
}

// Rates proxies the calculation service's rates, with published constants
// as the fallback.
func (h *RatesHandler) Rates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.orchestrator.Rates(r.Context()))
}
