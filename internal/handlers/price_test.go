package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/contactkeval/option-pricer/internal/report"
)

func doRequest(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("body = %q, want ok", rec.Body.String())
	}
}

func TestPriceReferenceScenario(t *testing.T) {
	rec := doRequest(t, "/price?spot=100&strike=105&t=0.5&r=0.05&vol=0.30")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}

	var q report.Quote
	if err := json.NewDecoder(rec.Body).Decode(&q); err != nil {
		t.Fatal(err)
	}
	if math.Abs(q.Result.CallPrice-7.398413349) > 1e-6 {
		t.Errorf("call = %v, want 7.398413349", q.Result.CallPrice)
	}
	if math.Abs(q.Result.PutPrice-9.805954112) > 1e-6 {
		t.Errorf("put = %v, want 9.805954112", q.Result.PutPrice)
	}
	if q.Params.Strike != 105 {
		t.Errorf("echoed strike = %v, want 105", q.Params.Strike)
	}
}

func TestPriceValidationError(t *testing.T) {
	rec := doRequest(t, "/price?spot=-1&strike=100&t=1&r=0.05&vol=0.3")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "spot price") {
		t.Fatalf("body should name the parameter: %q", rec.Body.String())
	}
}

func TestPriceMalformedQuery(t *testing.T) {
	rec := doRequest(t, "/price?spot=abc&strike=100&t=1&r=0.05&vol=0.3")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "spot") {
		t.Fatalf("body should name the query parameter: %q", rec.Body.String())
	}
}

func TestPriceMissingParameter(t *testing.T) {
	rec := doRequest(t, "/price?spot=100&strike=100&t=1&r=0.05")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "vol") {
		t.Fatalf("body should name the missing parameter: %q", rec.Body.String())
	}
}

func TestPriceRejectsPost(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/price?spot=100&strike=100&t=1&r=0.05&vol=0.3", nil)
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
