// Package api provides HTTP API handlers for the finger-spelling recognizer.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/fingerspell/internal/store"
)

// AlphabetHandler handles HTTP requests for alphabet resources.
type AlphabetHandler struct {
	store *store.Store
}

// NewAlphabetHandler creates a new AlphabetHandler with the given store.
func NewAlphabetHandler(s *store.Store) *AlphabetHandler {
	return &AlphabetHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *AlphabetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Parse the path to determine if this is a collection or item request
	// Expected paths: /api/alphabets or /api/alphabets/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/alphabets")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/alphabets
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// Item endpoint: /api/alphabets/{id}
	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type createAlphabetRequest struct {
	Name          string  `json:"name"`
	FeatureWeight float64 `json:"feature_weight"`
	AngleWeight   float64 `json:"angle_weight"`
	MinConfidence float64 `json:"min_confidence"`
}

type updateAlphabetRequest struct {
	Name          string  `json:"name"`
	FeatureWeight float64 `json:"feature_weight"`
	AngleWeight   float64 `json:"angle_weight"`
	MinConfidence float64 `json:"min_confidence"`
}

type alphabetResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	FeatureWeight float64 `json:"feature_weight"`
	AngleWeight   float64 `json:"angle_weight"`
	MinConfidence float64 `json:"min_confidence"`
	Builtin       bool    `json:"builtin"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type listAlphabetsResponse struct {
	Alphabets []alphabetResponse `json:"alphabets"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toResponse converts a store.Alphabet to an alphabetResponse.
func toResponse(a *store.Alphabet) alphabetResponse {
	return alphabetResponse{
		ID:            a.ID,
		Name:          a.Name,
		FeatureWeight: a.FeatureWeight,
		AngleWeight:   a.AngleWeight,
		MinConfidence: a.MinConfidence,
		Builtin:       a.Builtin,
		CreatedAt:     a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     a.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/alphabets and returns all alphabets.
func (h *AlphabetHandler) list(w http.ResponseWriter, r *http.Request) {
	alphabets, err := h.store.Alphabets().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list alphabets")
		return
	}

	response := listAlphabetsResponse{
		Alphabets: make([]alphabetResponse, 0, len(alphabets)),
	}

	for _, a := range alphabets {
		response.Alphabets = append(response.Alphabets, toResponse(a))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/alphabets/{id} and returns a single alphabet.
func (h *AlphabetHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	alphabet, err := h.store.Alphabets().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Alphabet not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get alphabet")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(alphabet))
}

// create handles POST /api/alphabets and creates a new alphabet.
func (h *AlphabetHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createAlphabetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	// Weight defaults match the built-in full dictionary.
	featureWeight := req.FeatureWeight
	if featureWeight == 0 {
		featureWeight = 0.6
	}
	angleWeight := req.AngleWeight
	if angleWeight == 0 {
		angleWeight = 0.4
	}
	minConfidence := req.MinConfidence
	if minConfidence == 0 {
		minConfidence = 0.6
	}

	alphabet := &store.Alphabet{
		ID:            uuid.New().String(),
		Name:          req.Name,
		FeatureWeight: featureWeight,
		AngleWeight:   angleWeight,
		MinConfidence: minConfidence,
	}

	if err := h.store.Alphabets().Create(alphabet); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create alphabet")
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(alphabet))
}

// update handles PUT /api/alphabets/{id} and updates an existing alphabet.
func (h *AlphabetHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	alphabet, err := h.store.Alphabets().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Alphabet not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get alphabet")
		return
	}

	if alphabet.Builtin {
		writeError(w, http.StatusForbidden, "Built-in alphabets cannot be modified")
		return
	}

	var req updateAlphabetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name != "" {
		alphabet.Name = req.Name
	}
	if req.FeatureWeight != 0 {
		alphabet.FeatureWeight = req.FeatureWeight
	}
	if req.AngleWeight != 0 {
		alphabet.AngleWeight = req.AngleWeight
	}
	if req.MinConfidence != 0 {
		alphabet.MinConfidence = req.MinConfidence
	}

	if err := h.store.Alphabets().Update(alphabet); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update alphabet")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(alphabet))
}

// delete handles DELETE /api/alphabets/{id} and removes an alphabet.
func (h *AlphabetHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	alphabet, err := h.store.Alphabets().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Alphabet not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get alphabet")
		return
	}

	if alphabet.Builtin {
		writeError(w, http.StatusForbidden, "Built-in alphabets cannot be deleted")
		return
	}

	if err := h.store.Alphabets().Delete(id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete alphabet")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
