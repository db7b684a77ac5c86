// Package classify matches feature vectors against letter template
// dictionaries using weighted cosine similarity.
package classify

import (
	"math"

	"github.com/ayusman/fingerspell/internal/feature"
)

// Category labels a letter template within an alphabet.
type Category string

const (
	CategoryVowel     Category = "vowel"
	CategoryConsonant Category = "consonant"
	CategorySpecial   Category = "special"
)

// DefaultMinConfidence is the floor below which the best match is reported
// as "no letter" rather than a low-confidence guess.
const DefaultMinConfidence = 0.60

// SecondaryBlend is the share of the combined score carried by the
// spread/height similarity when both the template and the vector provide
// secondary features. The primary extension/angle score keeps the remainder.
const SecondaryBlend = 0.2

// Template is the canonical feature/angle signature of one letter sign.
// Templates with Secondary set also carry inter-finger spreads and fingertip
// heights, which refine the score whenever the extractor supplies them.
type Template struct {
	Letter    string
	Category  Category
	Features  [feature.NumFingers]float64
	Angles    [feature.NumFingers]float64
	Spreads   [feature.NumFingers - 1]float64
	Heights   [feature.NumFingers]float64
	Secondary bool
}

// Weights splits the combined score between the extension features and the
// flexion angles. The two fields must sum to 1.
type Weights struct {
	Feature float64
	Angle   float64
}

// Alphabet is an ordered, immutable-after-construction template dictionary.
// Slice order is the tie-break order: on equal scores the earlier template
// wins, so iteration must stay deterministic.
type Alphabet struct {
	Name      string
	Templates []Template
	Weights   Weights
}

// Result is the per-frame classification outcome. An empty Letter means no
// template matched above the floor.
type Result struct {
	Letter     string  `json:"letter"`
	Confidence float64 `json:"confidence"`
}

// Classifier scores feature vectors against one alphabet. It is stateless
// and pure: identical inputs always produce identical outputs, and it may be
// shared across streams without synchronization.
type Classifier struct {
	alphabet      Alphabet
	minConfidence float64
}

// NewClassifier creates a Classifier for the given alphabet. A non-positive
// minConfidence falls back to DefaultMinConfidence.
func NewClassifier(alphabet Alphabet, minConfidence float64) *Classifier {
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}
	return &Classifier{
		alphabet:      alphabet,
		minConfidence: minConfidence,
	}
}

// Alphabet returns the dictionary this classifier scores against.
func (c *Classifier) Alphabet() Alphabet {
	return c.alphabet
}

// Classify returns the best-matching letter and its combined score. A nil
// vector, or a best score that does not exceed the confidence floor, yields
// an empty Result: an unmatched pose is explicitly "no letter".
func (c *Classifier) Classify(v *feature.Vector) Result {
	if v == nil {
		return Result{}
	}

	bestScore := math.Inf(-1)
	bestLetter := ""

	for _, t := range c.alphabet.Templates {
		simFeatures := cosine(v.Extensions[:], t.Features[:])
		simAngles := cosine(v.Angles[:], t.Angles[:])
		score := c.alphabet.Weights.Feature*simFeatures + c.alphabet.Weights.Angle*simAngles

		// Spread/height refinement applies only when both sides carry
		// secondary features; a primary-only template or vector scores
		// on extensions and angles alone.
		if t.Secondary && v.HasSecondary {
			refine := (cosine(v.Spreads[:], t.Spreads[:]) + cosine(v.Heights[:], t.Heights[:])) / 2
			score = (1-SecondaryBlend)*score + SecondaryBlend*refine
		}

		// Strict maximum: ties keep the first-encountered template.
		if score > bestScore {
			bestScore = score
			bestLetter = t.Letter
		}
	}

	if bestLetter == "" || bestScore <= c.minConfidence {
		return Result{}
	}

	return Result{Letter: bestLetter, Confidence: clampScore(bestScore)}
}

// cosine returns the cosine similarity of two equal-length vectors. A
// zero-magnitude vector yields 0 rather than NaN, which would otherwise
// corrupt max-score selection silently.
func cosine(a, b []float64) float64 {
	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}

	if magA < 1e-20 || magB < 1e-20 {
		return 0
	}

	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
