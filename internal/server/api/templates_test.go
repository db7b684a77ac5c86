package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ayusman/fingerspell/internal/store"
)

func TestTemplatesHandler_ReplaceAndList(t *testing.T) {
	s := newTestStore(t)
	a := seedAlphabet(t, s, "custom", false)
	h := NewTemplatesHandler(s)

	body := `{"templates": [
		{"letter": "A", "category": "vowel", "features": [0.2, 0.1, 0.1, 0.1, 0.1], "angles": [0.5, 0.2, 0.2, 0.2, 0.2]},
		{"letter": "B", "features": [0.9, 1.0, 1.0, 1.0, 1.0], "angles": [0.9, 1.0, 1.0, 1.0, 1.0],
		 "spreads": [0.10, 0.08, 0.09, 0.05], "heights": [0.5, 0.9, 0.92, 0.9, 0.85], "secondary": true}
	]}`
	req := httptest.NewRequest(http.MethodPut, "/api/alphabets/"+a.ID+"/templates", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("replace status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/alphabets/"+a.ID+"/templates", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp listTemplatesResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Templates) != 2 {
		t.Fatalf("templates = %d, want 2", len(resp.Templates))
	}
	if resp.Templates[0].Letter != "A" || resp.Templates[1].Letter != "B" {
		t.Errorf("order = %q, %q, want A, B", resp.Templates[0].Letter, resp.Templates[1].Letter)
	}
	if resp.Templates[0].Category != "vowel" {
		t.Errorf("category = %q, want vowel", resp.Templates[0].Category)
	}
	// Omitted category defaults to consonant.
	if resp.Templates[1].Category != "consonant" {
		t.Errorf("default category = %q, want consonant", resp.Templates[1].Category)
	}
	if !resp.Templates[1].Secondary || resp.Templates[1].Spreads[0] != 0.10 {
		t.Errorf("secondary signature lost: %+v", resp.Templates[1])
	}
	if resp.Templates[0].Secondary {
		t.Error("template without spreads/heights must not be marked secondary")
	}
}

func TestTemplatesHandler_BuiltinProtected(t *testing.T) {
	s := newTestStore(t)
	a := seedAlphabet(t, s, "spanish-full", true)
	h := NewTemplatesHandler(s)

	body := `{"templates": [{"letter": "A"}]}`
	req := httptest.NewRequest(http.MethodPut, "/api/alphabets/"+a.ID+"/templates", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestTemplatesHandler_Validation(t *testing.T) {
	s := newTestStore(t)
	a := seedAlphabet(t, s, "custom", false)
	h := NewTemplatesHandler(s)

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{"missing alphabet", "/api/alphabets/nope/templates", `{"templates": [{"letter": "A"}]}`, http.StatusNotFound},
		{"empty set", "/api/alphabets/" + a.ID + "/templates", `{"templates": []}`, http.StatusBadRequest},
		{"blank letter", "/api/alphabets/" + a.ID + "/templates", `{"templates": [{"letter": ""}]}`, http.StatusBadRequest},
		{"invalid json", "/api/alphabets/" + a.ID + "/templates", `{templates`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestTemplatesHandler_ReplaceOverwrites(t *testing.T) {
	s := newTestStore(t)
	a := seedAlphabet(t, s, "custom", false)

	initial := []store.LetterTemplate{
		{Letter: "X", Category: "consonant"},
		{Letter: "Y", Category: "consonant"},
		{Letter: "Z", Category: "consonant"},
	}
	if err := s.Alphabets().ReplaceTemplates(a.ID, initial); err != nil {
		t.Fatalf("seed templates: %v", err)
	}

	h := NewTemplatesHandler(s)
	body := `{"templates": [{"letter": "A", "category": "vowel"}]}`
	req := httptest.NewRequest(http.MethodPut, "/api/alphabets/"+a.ID+"/templates", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	stored, err := s.Alphabets().GetTemplates(a.ID)
	if err != nil {
		t.Fatalf("GetTemplates: %v", err)
	}
	if len(stored) != 1 || stored[0].Letter != "A" {
		t.Errorf("stored = %+v, want single A", stored)
	}
}
