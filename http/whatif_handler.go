package http

import (
	"net/http"

	"loan-wizard/service"
)

// WhatIfHandler forwards slider events to the explorer.
type WhatIfHandler struct {
	service *service.WhatIfService
}

func NewWhatIfHandler(service *service.WhatIfService) *WhatIfHandler {
	return &WhatIfHandler{service: service}
}

// Explore handles one slider interaction.
func (h *WhatIfHandler) Explore(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ExtraPayment float64 `json:"extra_payment"`
	}
	if err := decodeJSON(r, &body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	out, err := h.service.Explore(r.Context(), r.PathValue("id"), body.ExtraPayment)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
