package app

import (
	"fmt"

	"github.com/ayusman/fingerspell/internal/classify"
	"github.com/ayusman/fingerspell/internal/store"
	"github.com/google/uuid"
)

// EnsureBuiltins installs the built-in template dictionaries into the store
// when missing, so they show up in the API and can back sessions.
func EnsureBuiltins(s *store.Store) error {
	for _, alphabet := range []classify.Alphabet{classify.SpanishAlphabet(), classify.SpanishVowels()} {
		if _, err := s.Alphabets().GetByName(alphabet.Name); err == nil {
			continue
		} else if err != store.ErrNotFound {
			return err
		}

		row := &store.Alphabet{
			ID:            uuid.NewString(),
			Name:          alphabet.Name,
			FeatureWeight: alphabet.Weights.Feature,
			AngleWeight:   alphabet.Weights.Angle,
			MinConfidence: classify.DefaultMinConfidence,
			Builtin:       true,
		}
		if err := s.Alphabets().Create(row); err != nil {
			return fmt.Errorf("seed alphabet %s: %w", alphabet.Name, err)
		}

		templates := make([]store.LetterTemplate, len(alphabet.Templates))
		for i, t := range alphabet.Templates {
			templates[i] = store.LetterTemplate{
				Letter:    t.Letter,
				Category:  string(t.Category),
				Features:  t.Features,
				Angles:    t.Angles,
				Spreads:   t.Spreads,
				Heights:   t.Heights,
				Secondary: t.Secondary,
			}
		}
		if err := s.Alphabets().ReplaceTemplates(row.ID, templates); err != nil {
			return fmt.Errorf("seed templates for %s: %w", alphabet.Name, err)
		}
	}

	return nil
}

// LoadAlphabet reads a template dictionary from the store by name, returning
// it together with its stored confidence floor. Stored alphabets let
// deployments tune or replace the built-in dictionaries.
func LoadAlphabet(s *store.Store, name string) (classify.Alphabet, float64, error) {
	row, err := s.Alphabets().GetByName(name)
	if err != nil {
		return classify.Alphabet{}, 0, err
	}

	stored, err := s.Alphabets().GetTemplates(row.ID)
	if err != nil {
		return classify.Alphabet{}, 0, err
	}

	alphabet := classify.Alphabet{
		Name:    row.Name,
		Weights: classify.Weights{Feature: row.FeatureWeight, Angle: row.AngleWeight},
	}
	for _, t := range stored {
		alphabet.Templates = append(alphabet.Templates, classify.Template{
			Letter:    t.Letter,
			Category:  classify.Category(t.Category),
			Features:  t.Features,
			Angles:    t.Angles,
			Spreads:   t.Spreads,
			Heights:   t.Heights,
			Secondary: t.Secondary,
		})
	}

	return alphabet, row.MinConfidence, nil
}
