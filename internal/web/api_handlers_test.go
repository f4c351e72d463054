package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/evcraddock/visitor-log/internal/visitor"
)

func apiCheckInJSON(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/visitors", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestAPICheckIn(t *testing.T) {
	s := testServer(t)

	rec := apiCheckInJSON(t, s, `{"name":"Jane Doe","purpose":"Interview","contact":"5551234"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var v visitor.Visitor
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.ID == 0 {
		t.Error("expected assigned id")
	}
	if v.CheckOutTime != nil {
		t.Error("expected null check_out_time")
	}
}

func TestAPICheckInValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty name", `{"name":"","purpose":"Meeting","contact":"555"}`},
		{"bad purpose", `{"name":"Jane","purpose":"Vacation","contact":"555"}`},
		{"bad contact", `{"name":"Jane","purpose":"Meeting","contact":"call me"}`},
		{"invalid json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testServer(t)
			rec := apiCheckInJSON(t, s, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestAPIList(t *testing.T) {
	s := testServer(t)

	apiCheckInJSON(t, s, `{"name":"John Smith","purpose":"Meeting","contact":"111"}`)
	apiCheckInJSON(t, s, `{"name":"Alice Jones","purpose":"Delivery","contact":"222"}`)

	req := httptest.NewRequest("GET", "/api/visitors?filter=alice&sort=latest", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got []*visitor.Visitor
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Alice Jones" {
		t.Errorf("got %v, want one record for Alice Jones", got)
	}
}

func TestAPIListEmptyIsArray(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest("GET", "/api/visitors", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("body = %q, want empty JSON array", rec.Body.String())
	}
}

func TestAPIGetVisitor(t *testing.T) {
	s := testServer(t)

	apiCheckInJSON(t, s, `{"name":"Jane Doe","purpose":"Interview","contact":"5551234"}`)

	req := httptest.NewRequest("GET", "/api/visitors/1", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	req = httptest.NewRequest("GET", "/api/visitors/99", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing visitor status = %d, want 404", rec.Code)
	}
}

func TestAPICheckOut(t *testing.T) {
	s := testServer(t)

	apiCheckInJSON(t, s, `{"name":"Jane Doe","purpose":"Interview","contact":"5551234"}`)

	req := httptest.NewRequest("POST", "/api/visitors/1/checkout", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var v visitor.Visitor
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.CheckOutTime == nil {
		t.Fatal("expected check_out_time to be set")
	}
	if v.CheckOutTime.Before(v.CheckInTime) {
		t.Error("check-out precedes check-in")
	}
}

func TestAPICheckOutTwiceConflicts(t *testing.T) {
	s := testServer(t)

	apiCheckInJSON(t, s, `{"name":"Jane Doe","purpose":"Interview","contact":"5551234"}`)

	for i, want := range []int{http.StatusOK, http.StatusConflict} {
		req := httptest.NewRequest("POST", "/api/visitors/1/checkout", nil)
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Errorf("checkout %d status = %d, want %d", i+1, rec.Code, want)
		}
	}
}

func TestAPICheckOutNotFound(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest("POST", "/api/visitors/42/checkout", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestAPIReset(t *testing.T) {
	s := testServer(t)

	apiCheckInJSON(t, s, `{"name":"Jane Doe","purpose":"Interview","contact":"5551234"}`)

	req := httptest.NewRequest("DELETE", "/api/visitors", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	req = httptest.NewRequest("GET", "/api/visitors", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("body = %q, want empty JSON array after reset", rec.Body.String())
	}
}

func TestAPIExport(t *testing.T) {
	s := testServer(t)

	apiCheckInJSON(t, s, `{"name":"Jane Doe","purpose":"Interview","contact":"5551234"}`)

	req := httptest.NewRequest("GET", "/api/visitors/export", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Error("expected PDF body")
	}

	req = httptest.NewRequest("POST", "/api/visitors/export", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", rec.Code)
	}
}

func TestAPIMethodNotAllowed(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest("PUT", "/api/visitors", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestAPIBadID(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest("GET", "/api/visitors/abc", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
