package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ayusman/fingerspell/internal/store"
)

// SessionHandler handles HTTP requests for recognition session resources.
// Sessions are created by the pipeline, so the API is read-only.
type SessionHandler struct {
	store *store.Store
}

// NewSessionHandler creates a new SessionHandler with the given store.
func NewSessionHandler(s *store.Store) *SessionHandler {
	return &SessionHandler{store: s}
}

// ServeHTTP implements the http.Handler interface.
// Expected paths: /api/sessions, /api/sessions/{id}, /api/sessions/{id}/transcript
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/sessions")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		h.list(w, r)
		return
	}

	parts := strings.Split(path, "/")
	switch {
	case len(parts) == 1:
		h.get(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "transcript":
		h.transcript(w, r, parts[0])
	default:
		writeError(w, http.StatusNotFound, "Not found")
	}
}

// Response types

type sessionResponse struct {
	ID         string `json:"id"`
	AlphabetID string `json:"alphabet_id"`
	StartedAt  string `json:"started_at"`
	EndedAt    string `json:"ended_at,omitempty"`
}

type listSessionsResponse struct {
	Sessions []sessionResponse `json:"sessions"`
}

type transcriptEntryResponse struct {
	Seq        int     `json:"seq"`
	Letter     string  `json:"letter"`
	Confidence float64 `json:"confidence"`
	DetectedAt string  `json:"detected_at"`
}

type transcriptResponse struct {
	SessionID string                    `json:"session_id"`
	Word      string                    `json:"word"`
	Entries   []transcriptEntryResponse `json:"entries"`
}

func sessionToResponse(sess *store.Session) sessionResponse {
	resp := sessionResponse{
		ID:         sess.ID,
		AlphabetID: sess.AlphabetID,
		StartedAt:  sess.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if sess.EndedAt != nil {
		resp.EndedAt = sess.EndedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

// list handles GET /api/sessions and returns all sessions, newest first.
func (h *SessionHandler) list(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.Sessions().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list sessions")
		return
	}

	response := listSessionsResponse{
		Sessions: make([]sessionResponse, 0, len(sessions)),
	}
	for _, sess := range sessions {
		response.Sessions = append(response.Sessions, sessionToResponse(sess))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/sessions/{id} and returns a single session.
func (h *SessionHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	sess, err := h.store.Sessions().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get session")
		return
	}

	writeJSON(w, http.StatusOK, sessionToResponse(sess))
}

// transcript handles GET /api/sessions/{id}/transcript and returns the
// session's confirmed letters in emission order.
func (h *SessionHandler) transcript(w http.ResponseWriter, r *http.Request, id string) {
	if _, err := h.store.Sessions().GetByID(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get session")
		return
	}

	entries, err := h.store.Sessions().GetTranscript(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get transcript")
		return
	}

	response := transcriptResponse{
		SessionID: id,
		Entries:   make([]transcriptEntryResponse, 0, len(entries)),
	}

	var word strings.Builder
	for _, e := range entries {
		word.WriteString(e.Letter)
		response.Entries = append(response.Entries, transcriptEntryResponse{
			Seq:        e.Seq,
			Letter:     e.Letter,
			Confidence: e.Confidence,
			DetectedAt: e.DetectedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	response.Word = word.String()

	writeJSON(w, http.StatusOK, response)
}
