package http

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"

	"loan-wizard/client"
	"loan-wizard/repository"
	"loan-wizard/service"
)

// fakeCollaborators serves the calculation, community, chat and speech
// contracts well enough to drive the wizard end to end.
func fakeCollaborators(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/calculate", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"loan_details": {"total_amount": 30000, "federal_amount": 18000, "provincial_amount": 12000, "federal_rate": 7.25},
			"grace_period": {"months": 6, "interest_accrued": 650.12, "balance_after_grace": 30650.12},
			"rap_status": {"eligible": false, "stage": "none", "message": "Income above threshold"},
			"scenarios": {
				"minimum": {"monthly_payment": 250, "months": 2, "total_interest": 9000, "breakdown": [{"month":1,"balance":29800,"principal_paid":200},{"month":2,"balance":29600,"principal_paid":200}]},
				"recommended": {"monthly_payment": 350, "months": 2, "total_interest": 6000, "breakdown": [{"month":1,"balance":29700,"principal_paid":300},{"month":2,"balance":29400,"principal_paid":300}]},
				"aggressive": {"monthly_payment": 500, "months": 1, "total_interest": 3800, "breakdown": [{"month":1,"balance":29550,"principal_paid":450}]}
			},
			"savings": {"aggressive_vs_minimum": {"interest_saved": 5200, "months_saved": 1}}
		}`)
	})
	mux.HandleFunc("/api/whatif", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"new_payment": 450, "interest_saved": 900, "months_saved": 1, "breakdown": [{"month":1,"balance":29500,"principal_paid":500}]}`)
	})
	mux.HandleFunc("/api/multi-debt", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"total_debt": 32000, "recommended_order": ["credit_card", "osap"], "strategy": "avalanche"}`)
	})
	mux.HandleFunc("/api/rates", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"prime_rate": 7.25, "federal_rate": 7.25, "provincial_rate": 0}`)
	})
	mux.HandleFunc("/api/community/compare", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"your_loan": 30000, "overall_average": 27000, "total_students": 12, "vs_overall": "above average", "vs_field": "about average"}`)
	})
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"response": "Stick with the recommended plan."}`)
	})
	mux.HandleFunc("/api/speak", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("audio-bytes"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	collab := fakeCollaborators(t)

	c := client.New(collab.URL, collab.URL, collab.URL, collab.URL)
	cat, err := service.LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	store := service.NewSessionStore()
	orch := service.NewOrchestratorService(c, c, repository.NewMockCache())
	dialogue := service.NewDialogueService(cat, store, orch)
	whatIf := service.NewWhatIfService(c, store)
	plans := service.NewPlanService(repository.NewPlanRepositoryMemory(), store, orch)
	chat := service.NewChatService(c, store)
	speech := service.NewSpeechService(c, store)

	limiter := NewRateLimiter(1000, time.Minute)
	t.Cleanup(limiter.Stop)

	return NewRouter(Handlers{
		Session: NewSessionHandler(dialogue, store),
		WhatIf:  NewWhatIfHandler(whatIf),
		Plan:    NewPlanHandler(plans),
		Chat:    NewChatHandler(chat),
		Speech:  NewSpeechHandler(speech),
		Rates:   NewRatesHandler(orch),
	}, limiter)
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBuffer(nil)
	} else {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	var decoded map[string]any
	if strings.Contains(w.Header().Get("Content-Type"), "json") {
		if err := sonic.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode %s %s response: %v", method, path, err)
		}
	}
	return w, decoded
}

func startSession(t *testing.T, mux *http.ServeMux) string {
	t.Helper()
	w, body := doJSON(t, mux, http.MethodPost, "/session", "")
	if w.Code != http.StatusOK {
		t.Fatalf("start session: status %d", w.Code)
	}
	id, _ := body["session_id"].(string)
	if id == "" {
		t.Fatal("missing session id")
	}
	return id
}

func TestWizardWalkthrough_EndToEnd(t *testing.T) {
	mux := newTestRouter(t)
	id := startSession(t, mux)

	answers := `{"answers": {
		"user_name": "Alex",
		"loan_amount": "30000",
		"federal_portion": "60",
		"monthly_income": "4000",
		"monthly_expenses": "2500",
		"field_of_study": "engineering",
		"family_size": "1",
		"credit_card_balance": "0",
		"line_of_credit_balance": "0",
		"car_loan_balance": "0"
	}}`

	var last map[string]any
	for i := 0; i < 11; i++ {
		w, body := doJSON(t, mux, http.MethodPost, "/session/"+id+"/advance", answers)
		if w.Code != http.StatusOK {
			t.Fatalf("advance %d: status %d: %s", i, w.Code, w.Body.String())
		}
		last = body
	}

	if completed, _ := last["completed"].(bool); !completed {
		t.Fatal("terminal advance must complete the wizard")
	}
	results, _ := last["results"].(map[string]any)
	if results == nil || results["results"] == nil {
		t.Fatal("expected installed results snapshot")
	}

	// All three debt balances are zero: the multi-debt region must stay
	// hidden, even after enrichments settle.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		_, view := doJSON(t, mux, http.MethodGet, "/session/"+id+"/results", "")
		community, _ := view["community"].(map[string]any)
		if community != nil && community["state"] == "ready" {
			multi, _ := view["multi_debt"].(map[string]any)
			if multi["state"] != "hidden" {
				t.Fatalf("expected hidden multi-debt region, got %v", multi["state"])
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("community region never settled")
}

func TestAdvance_UnknownSession(t *testing.T) {
	mux := newTestRouter(t)

	w, _ := doJSON(t, mux, http.MethodPost, "/session/ghost/advance", `{"answers": {}}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAdvance_BadBody(t *testing.T) {
	mux := newTestRouter(t)
	id := startSession(t, mux)

	w, _ := doJSON(t, mux, http.MethodPost, "/session/"+id+"/advance", `{invalid-json}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestWhatIf_BeforeResultsConflicts(t *testing.T) {
	mux := newTestRouter(t)
	id := startSession(t, mux)

	w, _ := doJSON(t, mux, http.MethodPost, "/session/"+id+"/whatif", `{"extra_payment": 100}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 before results exist, got %d", w.Code)
	}
}

func TestChatAndSpeakAndRates(t *testing.T) {
	mux := newTestRouter(t)
	id := startSession(t, mux)

	w, body := doJSON(t, mux, http.MethodPost, "/session/"+id+"/chat", `{"message": "help"}`)
	if w.Code != http.StatusOK || body["response"] == "" {
		t.Fatalf("chat: status %d body %v", w.Code, body)
	}

	req := httptest.NewRequest(http.MethodPost, "/session/"+id+"/speak", bytes.NewBufferString(`{"text": "hello"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("speak: status %d", rec.Code)
	}
	if rec.Body.String() != "audio-bytes" {
		t.Errorf("speak: unexpected audio body %q", rec.Body.String())
	}

	w, body = doJSON(t, mux, http.MethodGet, "/rates", "")
	if w.Code != http.StatusOK {
		t.Fatalf("rates: status %d", w.Code)
	}
	if body["prime_rate"].(float64) != 7.25 {
		t.Errorf("rates: unexpected prime rate %v", body["prime_rate"])
	}
}

func TestPlanSaveAndLoadRoundTrip(t *testing.T) {
	mux := newTestRouter(t)
	id := startSession(t, mux)

	answers := `{"answers": {"user_name": "Jo", "loan_amount": "30000", "monthly_income": "4000", "monthly_expenses": "2500"}}`
	for i := 0; i < 11; i++ {
		doJSON(t, mux, http.MethodPost, "/session/"+id+"/advance", answers)
	}

	w, body := doJSON(t, mux, http.MethodPost, "/plans", `{"session_id": "`+id+`", "plan_name": "Jo"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("save plan: status %d: %s", w.Code, w.Body.String())
	}
	code, _ := body["plan_id"].(string)
	if code == "" {
		t.Fatal("missing plan code")
	}

	fresh := startSession(t, mux)
	w, body = doJSON(t, mux, http.MethodPost, "/session/"+fresh+"/plans/load", `{"code": "`+code+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("load plan: status %d: %s", w.Code, w.Body.String())
	}
	if computed, _ := body["computed"].(bool); !computed {
		t.Fatal("a plan saved with results must route straight to the results view")
	}

	w, _ = doJSON(t, mux, http.MethodPost, "/session/"+fresh+"/plans/load", `{"code": "ZZZZZZ"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown plan code, got %d", w.Code)
	}
}

func TestRateLimit_Enforced(t *testing.T) {
	collab := fakeCollaborators(t)
	c := client.New(collab.URL, collab.URL, collab.URL, collab.URL)
	orch := service.NewOrchestratorService(c, c, repository.NewMockCache())

	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()

	mux := http.NewServeMux()
	mux.Handle("GET /rates", RateLimitMiddleware(limiter, http.HandlerFunc(NewRatesHandler(orch).Rates)))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/rates", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/rates", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
}
