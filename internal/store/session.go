package store

import (
	"database/sql"
	"errors"
	"time"
)

// Session is one recognition session bound to a camera stream.
type Session struct {
	ID         string
	AlphabetID string
	StartedAt  time.Time
	EndedAt    *time.Time
}

// TranscriptEntry is one confirmed letter within a session.
type TranscriptEntry struct {
	Seq        int
	Letter     string
	Confidence float64
	DetectedAt time.Time
}

// SessionRepository provides CRUD operations for sessions and their
// transcripts.
type SessionRepository struct {
	db *sql.DB
}

// Sessions returns the session repository for this store.
func (s *Store) Sessions() *SessionRepository {
	return &SessionRepository{db: s.db}
}

// Create inserts a new session.
func (r *SessionRepository) Create(sess *Session) error {
	sess.StartedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO sessions (id, alphabet_id, started_at) VALUES (?, ?, ?)`,
		sess.ID, sess.AlphabetID, sess.StartedAt,
	)
	return err
}

// GetByID retrieves a session by its ID.
func (r *SessionRepository) GetByID(id string) (*Session, error) {
	sess := &Session{}
	var endedAt sql.NullTime

	err := r.db.QueryRow(
		`SELECT id, alphabet_id, started_at, ended_at FROM sessions WHERE id = ?`,
		id,
	).Scan(&sess.ID, &sess.AlphabetID, &sess.StartedAt, &endedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if endedAt.Valid {
		sess.EndedAt = &endedAt.Time
	}
	return sess, nil
}

// List retrieves all sessions, most recent first.
func (r *SessionRepository) List() ([]*Session, error) {
	rows, err := r.db.Query(
		`SELECT id, alphabet_id, started_at, ended_at FROM sessions ORDER BY started_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		sess := &Session{}
		var endedAt sql.NullTime

		if err := rows.Scan(&sess.ID, &sess.AlphabetID, &sess.StartedAt, &endedAt); err != nil {
			return nil, err
		}
		if endedAt.Valid {
			sess.EndedAt = &endedAt.Time
		}
		sessions = append(sessions, sess)
	}

	return sessions, rows.Err()
}

// End marks a session as finished.
func (r *SessionRepository) End(id string) error {
	result, err := r.db.Exec(
		`UPDATE sessions SET ended_at = ? WHERE id = ? AND ended_at IS NULL`,
		time.Now(), id,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// AppendLetter adds a confirmed letter to the session transcript with the
// next sequence number.
func (r *SessionRepository) AppendLetter(sessionID string, letter string, confidence float64, detectedAt time.Time) error {
	_, err := r.db.Exec(
		`INSERT INTO transcripts (session_id, seq, letter, confidence, detected_at)
		 VALUES (?, (SELECT COALESCE(MAX(seq), -1) + 1 FROM transcripts WHERE session_id = ?), ?, ?, ?)`,
		sessionID, sessionID, letter, confidence, detectedAt,
	)
	return err
}

// GetTranscript retrieves the session's confirmed letters in emission order.
func (r *SessionRepository) GetTranscript(sessionID string) ([]TranscriptEntry, error) {
	rows, err := r.db.Query(
		`SELECT seq, letter, confidence, detected_at FROM transcripts
		 WHERE session_id = ? ORDER BY seq`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []TranscriptEntry
	for rows.Next() {
		var e TranscriptEntry
		if err := rows.Scan(&e.Seq, &e.Letter, &e.Confidence, &e.DetectedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
