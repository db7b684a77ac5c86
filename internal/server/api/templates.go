package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ayusman/fingerspell/internal/store"
)

// TemplatesHandler handles HTTP requests for an alphabet's letter templates.
type TemplatesHandler struct {
	store *store.Store
}

// NewTemplatesHandler creates a new TemplatesHandler with the given store.
func NewTemplatesHandler(s *store.Store) *TemplatesHandler {
	return &TemplatesHandler{store: s}
}

// ServeHTTP implements the http.Handler interface.
// Expected paths: /api/alphabets/{id}/templates
func (h *TemplatesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/alphabets/")
	parts := strings.Split(path, "/")

	if len(parts) != 2 || parts[1] != "templates" {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	alphabetID := parts[0]

	switch r.Method {
	case http.MethodGet:
		h.list(w, r, alphabetID)
	case http.MethodPut:
		h.replace(w, r, alphabetID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type templatePayload struct {
	Letter    string     `json:"letter"`
	Category  string     `json:"category"`
	Features  [5]float64 `json:"features"`
	Angles    [5]float64 `json:"angles"`
	Spreads   [4]float64 `json:"spreads"`
	Heights   [5]float64 `json:"heights"`
	Secondary bool       `json:"secondary"`
}

type replaceTemplatesRequest struct {
	Templates []templatePayload `json:"templates"`
}

type listTemplatesResponse struct {
	Templates []templatePayload `json:"templates"`
}

// list handles GET /api/alphabets/{id}/templates
func (h *TemplatesHandler) list(w http.ResponseWriter, r *http.Request, alphabetID string) {
	if _, err := h.store.Alphabets().GetByID(alphabetID); err != nil {
		if err == store.ErrNotFound {
			writeError(w, http.StatusNotFound, "Alphabet not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to verify alphabet")
		return
	}

	templates, err := h.store.Alphabets().GetTemplates(alphabetID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list templates")
		return
	}

	response := listTemplatesResponse{
		Templates: make([]templatePayload, 0, len(templates)),
	}
	for _, t := range templates {
		response.Templates = append(response.Templates, templatePayload{
			Letter:    t.Letter,
			Category:  t.Category,
			Features:  t.Features,
			Angles:    t.Angles,
			Spreads:   t.Spreads,
			Heights:   t.Heights,
			Secondary: t.Secondary,
		})
	}

	writeJSON(w, http.StatusOK, response)
}

// replace handles PUT /api/alphabets/{id}/templates and swaps the full set.
// Templates are ordered; the request order becomes the tie-break order.
func (h *TemplatesHandler) replace(w http.ResponseWriter, r *http.Request, alphabetID string) {
	alphabet, err := h.store.Alphabets().GetByID(alphabetID)
	if err != nil {
		if err == store.ErrNotFound {
			writeError(w, http.StatusNotFound, "Alphabet not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to verify alphabet")
		return
	}

	if alphabet.Builtin {
		writeError(w, http.StatusForbidden, "Built-in alphabets cannot be modified")
		return
	}

	var req replaceTemplatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Templates) == 0 {
		writeError(w, http.StatusBadRequest, "At least one template is required")
		return
	}

	templates := make([]store.LetterTemplate, len(req.Templates))
	for i, t := range req.Templates {
		if t.Letter == "" {
			writeError(w, http.StatusBadRequest, "Template letter is required")
			return
		}
		category := t.Category
		if category == "" {
			category = "consonant"
		}
		templates[i] = store.LetterTemplate{
			Letter:    t.Letter,
			Category:  category,
			Features:  t.Features,
			Angles:    t.Angles,
			Spreads:   t.Spreads,
			Heights:   t.Heights,
			Secondary: t.Secondary,
		}
	}

	if err := h.store.Alphabets().ReplaceTemplates(alphabetID, templates); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save templates")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
