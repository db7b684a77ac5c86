package store

import (
	"database/sql"
	"errors"
	"time"
)

// Alphabet is a stored template dictionary with its tuning parameters.
type Alphabet struct {
	ID            string
	Name          string
	FeatureWeight float64
	AngleWeight   float64
	MinConfidence float64
	Builtin       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LetterTemplate is one stored letter signature. Position fixes the
// deterministic iteration (and tie-break) order within its alphabet.
type LetterTemplate struct {
	Position  int
	Letter    string
	Category  string
	Features  [5]float64
	Angles    [5]float64
	Spreads   [4]float64
	Heights   [5]float64
	Secondary bool
}

// AlphabetRepository provides CRUD operations for alphabets and their
// letter templates.
type AlphabetRepository struct {
	db *sql.DB
}

// Alphabets returns the alphabet repository for this store.
func (s *Store) Alphabets() *AlphabetRepository {
	return &AlphabetRepository{db: s.db}
}

// Create inserts a new alphabet.
func (r *AlphabetRepository) Create(a *Alphabet) error {
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := r.db.Exec(
		`INSERT INTO alphabets (id, name, feature_weight, angle_weight, min_confidence, builtin, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.FeatureWeight, a.AngleWeight, a.MinConfidence, boolToInt(a.Builtin), a.CreatedAt, a.UpdatedAt,
	)
	return err
}

// GetByID retrieves an alphabet by its ID.
func (r *AlphabetRepository) GetByID(id string) (*Alphabet, error) {
	return r.getByColumn("id", id)
}

// GetByName retrieves an alphabet by its unique name.
func (r *AlphabetRepository) GetByName(name string) (*Alphabet, error) {
	return r.getByColumn("name", name)
}

func (r *AlphabetRepository) getByColumn(column, value string) (*Alphabet, error) {
	a := &Alphabet{}
	var builtin int

	err := r.db.QueryRow(
		`SELECT id, name, feature_weight, angle_weight, min_confidence, builtin, created_at, updated_at
		 FROM alphabets WHERE `+column+` = ?`,
		value,
	).Scan(&a.ID, &a.Name, &a.FeatureWeight, &a.AngleWeight, &a.MinConfidence, &builtin, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	a.Builtin = builtin != 0
	return a, nil
}

// List retrieves all alphabets ordered by creation time.
func (r *AlphabetRepository) List() ([]*Alphabet, error) {
	rows, err := r.db.Query(
		`SELECT id, name, feature_weight, angle_weight, min_confidence, builtin, created_at, updated_at
		 FROM alphabets ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alphabets []*Alphabet
	for rows.Next() {
		a := &Alphabet{}
		var builtin int

		err := rows.Scan(&a.ID, &a.Name, &a.FeatureWeight, &a.AngleWeight, &a.MinConfidence, &builtin, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}

		a.Builtin = builtin != 0
		alphabets = append(alphabets, a)
	}

	return alphabets, rows.Err()
}

// Update updates an alphabet's tuning parameters.
func (r *AlphabetRepository) Update(a *Alphabet) error {
	a.UpdatedAt = time.Now()

	result, err := r.db.Exec(
		`UPDATE alphabets SET name = ?, feature_weight = ?, angle_weight = ?, min_confidence = ?, updated_at = ?
		 WHERE id = ?`,
		a.Name, a.FeatureWeight, a.AngleWeight, a.MinConfidence, a.UpdatedAt, a.ID,
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

// Delete removes an alphabet and, via cascade, its letter templates.
func (r *AlphabetRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM alphabets WHERE id = ?`, id)
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

// ReplaceTemplates swaps the alphabet's letter templates for the given set
// in one transaction, preserving slice order as the stored position.
func (r *AlphabetRepository) ReplaceTemplates(alphabetID string, templates []LetterTemplate) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM letter_templates WHERE alphabet_id = ?`, alphabetID); err != nil {
		return err
	}

	for i, t := range templates {
		_, err := tx.Exec(
			`INSERT INTO letter_templates (alphabet_id, position, letter, category,
			 f0, f1, f2, f3, f4, a0, a1, a2, a3, a4,
			 s0, s1, s2, s3, h0, h1, h2, h3, h4, secondary)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			alphabetID, i, t.Letter, t.Category,
			t.Features[0], t.Features[1], t.Features[2], t.Features[3], t.Features[4],
			t.Angles[0], t.Angles[1], t.Angles[2], t.Angles[3], t.Angles[4],
			t.Spreads[0], t.Spreads[1], t.Spreads[2], t.Spreads[3],
			t.Heights[0], t.Heights[1], t.Heights[2], t.Heights[3], t.Heights[4],
			boolToInt(t.Secondary),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetTemplates retrieves the alphabet's letter templates in position order.
func (r *AlphabetRepository) GetTemplates(alphabetID string) ([]LetterTemplate, error) {
	rows, err := r.db.Query(
		`SELECT position, letter, category, f0, f1, f2, f3, f4, a0, a1, a2, a3, a4,
		 s0, s1, s2, s3, h0, h1, h2, h3, h4, secondary
		 FROM letter_templates WHERE alphabet_id = ? ORDER BY position`,
		alphabetID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []LetterTemplate
	for rows.Next() {
		var t LetterTemplate
		var secondary int
		err := rows.Scan(&t.Position, &t.Letter, &t.Category,
			&t.Features[0], &t.Features[1], &t.Features[2], &t.Features[3], &t.Features[4],
			&t.Angles[0], &t.Angles[1], &t.Angles[2], &t.Angles[3], &t.Angles[4],
			&t.Spreads[0], &t.Spreads[1], &t.Spreads[2], &t.Spreads[3],
			&t.Heights[0], &t.Heights[1], &t.Heights[2], &t.Heights[3], &t.Heights[4],
			&secondary)
		if err != nil {
			return nil, err
		}
		t.Secondary = secondary != 0
		templates = append(templates, t)
	}

	return templates, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
