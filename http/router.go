package http

import "net/http"

// Handlers groups the endpoint handlers for routing.
type Handlers struct {
	Session *SessionHandler
	WhatIf  *WhatIfHandler
	Plan    *PlanHandler
	Chat    *ChatHandler
	Speech  *SpeechHandler
	Rates   *RatesHandler
}

// NewRouter wires every endpoint behind the rate limiter.
func NewRouter(h Handlers, limiter *RateLimiter) *http.ServeMux {
	mux := http.NewServeMux()

	limited := func(fn http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, fn)
	}

	mux.Handle("POST /session", limited(h.Session.Start))
	mux.Handle("GET /session/{id}/step", limited(h.Session.Step))
	mux.Handle("POST /session/{id}/advance", limited(h.Session.Advance))
	mux.Handle("POST /session/{id}/restart", limited(h.Session.Restart))
	mux.Handle("GET /session/{id}/results", limited(h.Session.Results))
	mux.Handle("POST /session/{id}/whatif", limited(h.WhatIf.Explore))
	mux.Handle("POST /session/{id}/chat", limited(h.Chat.Chat))
	mux.Handle("POST /session/{id}/speak", limited(h.Speech.Speak))
	mux.Handle("POST /session/{id}/plans/load", limited(h.Plan.Load))
	mux.Handle("POST /plans", limited(h.Plan.Save))
	mux.Handle("GET /rates", limited(h.Rates.Rates))

	return mux
}
