package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Alphabets table - template dictionaries with their tuning
		`CREATE TABLE IF NOT EXISTS alphabets (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			feature_weight REAL NOT NULL DEFAULT 0.6,
			angle_weight REAL NOT NULL DEFAULT 0.4,
			min_confidence REAL NOT NULL DEFAULT 0.6,
			builtin INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Letter templates table - per-letter feature/angle signatures,
		// plus optional spread/height secondary signatures
		`CREATE TABLE IF NOT EXISTS letter_templates (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			alphabet_id TEXT NOT NULL REFERENCES alphabets(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			letter TEXT NOT NULL,
			category TEXT NOT NULL CHECK(category IN ('vowel', 'consonant', 'special')),
			f0 REAL NOT NULL, f1 REAL NOT NULL, f2 REAL NOT NULL, f3 REAL NOT NULL, f4 REAL NOT NULL,
			a0 REAL NOT NULL, a1 REAL NOT NULL, a2 REAL NOT NULL, a3 REAL NOT NULL, a4 REAL NOT NULL,
			s0 REAL NOT NULL DEFAULT 0, s1 REAL NOT NULL DEFAULT 0, s2 REAL NOT NULL DEFAULT 0, s3 REAL NOT NULL DEFAULT 0,
			h0 REAL NOT NULL DEFAULT 0, h1 REAL NOT NULL DEFAULT 0, h2 REAL NOT NULL DEFAULT 0, h3 REAL NOT NULL DEFAULT 0, h4 REAL NOT NULL DEFAULT 0,
			secondary INTEGER NOT NULL DEFAULT 0,
			UNIQUE(alphabet_id, position)
		)`,

		// Sessions table - one recognition session per camera stream
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			alphabet_id TEXT NOT NULL REFERENCES alphabets(id),
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			ended_at DATETIME
		)`,

		// Transcripts table - confirmed letters in emission order
		`CREATE TABLE IF NOT EXISTS transcripts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			letter TEXT NOT NULL,
			confidence REAL NOT NULL,
			detected_at DATETIME NOT NULL,
			UNIQUE(session_id, seq)
		)`,

		// Settings table - application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_letter_templates_alphabet_id ON letter_templates(alphabet_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transcripts_session_id ON transcripts(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_alphabet_id ON sessions(alphabet_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
