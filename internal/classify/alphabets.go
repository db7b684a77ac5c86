package classify

// Built-in template dictionaries for the Spanish manual alphabet.
//
// Each template stores the normalized wrist-to-fingertip extensions and the
// middle-joint flexion angles for the five fingers, thumb through pinky.
// Values were tuned against MediaPipe captures of the canonical handshapes:
// an extension near 1 is a straight finger, near 0.3 a curled one; an angle
// near 1 is a straight joint, near 0.4 a fully bent one. The full alphabet
// additionally carries the four adjacent-fingertip spread angles (/pi, small
// when fingers touch, ~0.2 and up when splayed) and the five fingertip
// heights above the wrist, which separate letters whose extension profiles
// are close (U vs V, G vs Q).

// SpanishAlphabet returns the 27-letter dictionary: five vowels, twenty-one
// consonants, and the letter sign for the enye. The full alphabet weights
// the extension features over the angles (0.6/0.4) and expects the extractor
// to run with secondary features enabled.
func SpanishAlphabet() Alphabet {
	return Alphabet{
		Name:    "spanish-full",
		Weights: Weights{Feature: 0.6, Angle: 0.4},
		Templates: []Template{
			{Letter: "A", Category: CategoryVowel,
				Features:  [5]float64{0.55, 0.30, 0.30, 0.30, 0.30},
				Angles:    [5]float64{0.75, 0.35, 0.35, 0.35, 0.35},
				Spreads:   [4]float64{0.12, 0.05, 0.05, 0.05},
				Heights:   [5]float64{0.50, 0.28, 0.28, 0.28, 0.26},
				Secondary: true},
			{Letter: "B", Category: CategoryConsonant,
				Features:  [5]float64{0.35, 0.95, 1.00, 0.95, 0.85},
				Angles:    [5]float64{0.45, 0.95, 0.95, 0.95, 0.95},
				Spreads:   [4]float64{0.08, 0.06, 0.05, 0.06},
				Heights:   [5]float64{0.30, 0.88, 0.92, 0.88, 0.78},
				Secondary: true},
			{Letter: "C", Category: CategoryConsonant,
				Features:  [5]float64{0.60, 0.70, 0.72, 0.70, 0.65},
				Angles:    [5]float64{0.70, 0.65, 0.65, 0.65, 0.65},
				Spreads:   [4]float64{0.18, 0.07, 0.06, 0.07},
				Heights:   [5]float64{0.52, 0.62, 0.64, 0.62, 0.58},
				Secondary: true},
			{Letter: "D", Category: CategoryConsonant,
				Features:  [5]float64{0.50, 0.95, 0.42, 0.38, 0.35},
				Angles:    [5]float64{0.65, 0.95, 0.45, 0.45, 0.45},
				Spreads:   [4]float64{0.15, 0.12, 0.05, 0.05},
				Heights:   [5]float64{0.44, 0.88, 0.38, 0.34, 0.30},
				Secondary: true},
			{Letter: "E", Category: CategoryVowel,
				Features:  [5]float64{0.40, 0.45, 0.45, 0.45, 0.42},
				Angles:    [5]float64{0.55, 0.40, 0.40, 0.40, 0.40},
				Spreads:   [4]float64{0.10, 0.06, 0.05, 0.06},
				Heights:   [5]float64{0.36, 0.40, 0.40, 0.40, 0.38},
				Secondary: true},
			{Letter: "F", Category: CategoryConsonant,
				Features:  [5]float64{0.55, 0.55, 1.00, 0.95, 0.85},
				Angles:    [5]float64{0.70, 0.55, 0.95, 0.95, 0.95},
				Spreads:   [4]float64{0.10, 0.14, 0.06, 0.07},
				Heights:   [5]float64{0.48, 0.50, 0.92, 0.88, 0.78},
				Secondary: true},
			{Letter: "G", Category: CategoryConsonant,
				Features:  [5]float64{0.65, 0.90, 0.32, 0.30, 0.30},
				Angles:    [5]float64{0.80, 0.90, 0.38, 0.38, 0.38},
				Spreads:   [4]float64{0.16, 0.12, 0.05, 0.05},
				Heights:   [5]float64{0.55, 0.55, 0.30, 0.28, 0.28},
				Secondary: true},
			{Letter: "H", Category: CategoryConsonant,
				Features:  [5]float64{0.45, 0.95, 0.95, 0.32, 0.30},
				Angles:    [5]float64{0.55, 0.95, 0.95, 0.40, 0.40},
				Spreads:   [4]float64{0.12, 0.07, 0.10, 0.05},
				Heights:   [5]float64{0.40, 0.55, 0.55, 0.30, 0.28},
				Secondary: true},
			{Letter: "I", Category: CategoryVowel,
				Features:  [5]float64{0.40, 0.32, 0.32, 0.32, 0.85},
				Angles:    [5]float64{0.50, 0.38, 0.38, 0.38, 0.92},
				Spreads:   [4]float64{0.10, 0.05, 0.05, 0.14},
				Heights:   [5]float64{0.35, 0.30, 0.30, 0.30, 0.80},
				Secondary: true},
			{Letter: "J", Category: CategoryConsonant,
				Features:  [5]float64{0.55, 0.32, 0.32, 0.32, 0.88},
				Angles:    [5]float64{0.70, 0.38, 0.38, 0.38, 0.92},
				Spreads:   [4]float64{0.12, 0.05, 0.05, 0.14},
				Heights:   [5]float64{0.48, 0.30, 0.30, 0.30, 0.82},
				Secondary: true},
			{Letter: "K", Category: CategoryConsonant,
				Features:  [5]float64{0.70, 0.95, 0.90, 0.32, 0.30},
				Angles:    [5]float64{0.85, 0.95, 0.90, 0.40, 0.40},
				Spreads:   [4]float64{0.18, 0.14, 0.10, 0.05},
				Heights:   [5]float64{0.62, 0.88, 0.84, 0.30, 0.28},
				Secondary: true},
			{Letter: "L", Category: CategoryConsonant,
				Features:  [5]float64{0.80, 0.95, 0.30, 0.30, 0.30},
				Angles:    [5]float64{0.90, 0.95, 0.38, 0.38, 0.38},
				Spreads:   [4]float64{0.30, 0.12, 0.05, 0.05},
				Heights:   [5]float64{0.72, 0.88, 0.28, 0.28, 0.26},
				Secondary: true},
			{Letter: "M", Category: CategoryConsonant,
				Features:  [5]float64{0.30, 0.45, 0.45, 0.45, 0.35},
				Angles:    [5]float64{0.40, 0.50, 0.50, 0.50, 0.42},
				Spreads:   [4]float64{0.06, 0.06, 0.06, 0.06},
				Heights:   [5]float64{0.25, 0.40, 0.40, 0.40, 0.30},
				Secondary: true},
			{Letter: "N", Category: CategoryConsonant,
				Features:  [5]float64{0.32, 0.45, 0.45, 0.35, 0.32},
				Angles:    [5]float64{0.42, 0.50, 0.50, 0.42, 0.40},
				Spreads:   [4]float64{0.06, 0.06, 0.06, 0.05},
				Heights:   [5]float64{0.27, 0.40, 0.40, 0.30, 0.28},
				Secondary: true},
			{Letter: "Ñ", Category: CategorySpecial,
				Features:  [5]float64{0.35, 0.48, 0.48, 0.35, 0.32},
				Angles:    [5]float64{0.48, 0.55, 0.55, 0.42, 0.40},
				Spreads:   [4]float64{0.07, 0.07, 0.06, 0.05},
				Heights:   [5]float64{0.30, 0.44, 0.44, 0.32, 0.28},
				Secondary: true},
			{Letter: "O", Category: CategoryVowel,
				Features:  [5]float64{0.55, 0.60, 0.60, 0.58, 0.55},
				Angles:    [5]float64{0.60, 0.55, 0.55, 0.55, 0.55},
				Spreads:   [4]float64{0.12, 0.06, 0.05, 0.06},
				Heights:   [5]float64{0.50, 0.55, 0.55, 0.52, 0.50},
				Secondary: true},
			{Letter: "P", Category: CategoryConsonant,
				Features:  [5]float64{0.68, 0.90, 0.85, 0.32, 0.30},
				Angles:    [5]float64{0.82, 0.90, 0.85, 0.40, 0.40},
				Spreads:   [4]float64{0.17, 0.13, 0.09, 0.05},
				Heights:   [5]float64{0.45, 0.35, 0.30, 0.25, 0.22},
				Secondary: true},
			{Letter: "Q", Category: CategoryConsonant,
				Features:  [5]float64{0.62, 0.85, 0.30, 0.30, 0.30},
				Angles:    [5]float64{0.78, 0.85, 0.38, 0.38, 0.38},
				Spreads:   [4]float64{0.15, 0.11, 0.05, 0.05},
				Heights:   [5]float64{0.42, 0.30, 0.24, 0.22, 0.22},
				Secondary: true},
			{Letter: "R", Category: CategoryConsonant,
				Features:  [5]float64{0.40, 0.92, 0.88, 0.32, 0.30},
				Angles:    [5]float64{0.50, 0.90, 0.88, 0.40, 0.40},
				Spreads:   [4]float64{0.10, 0.04, 0.08, 0.05},
				Heights:   [5]float64{0.36, 0.86, 0.84, 0.28, 0.26},
				Secondary: true},
			{Letter: "S", Category: CategoryConsonant,
				Features:  [5]float64{0.42, 0.28, 0.28, 0.28, 0.28},
				Angles:    [5]float64{0.50, 0.32, 0.32, 0.32, 0.32},
				Spreads:   [4]float64{0.08, 0.05, 0.05, 0.05},
				Heights:   [5]float64{0.38, 0.25, 0.25, 0.25, 0.24},
				Secondary: true},
			{Letter: "T", Category: CategoryConsonant,
				Features:  [5]float64{0.48, 0.40, 0.32, 0.30, 0.30},
				Angles:    [5]float64{0.60, 0.45, 0.38, 0.38, 0.38},
				Spreads:   [4]float64{0.09, 0.06, 0.05, 0.05},
				Heights:   [5]float64{0.42, 0.36, 0.28, 0.26, 0.26},
				Secondary: true},
			{Letter: "U", Category: CategoryVowel,
				Features:  [5]float64{0.40, 0.95, 0.95, 0.30, 0.30},
				Angles:    [5]float64{0.48, 0.95, 0.95, 0.38, 0.38},
				Spreads:   [4]float64{0.10, 0.05, 0.09, 0.05},
				Heights:   [5]float64{0.34, 0.88, 0.88, 0.26, 0.25},
				Secondary: true},
			{Letter: "V", Category: CategoryConsonant,
				Features:  [5]float64{0.45, 0.95, 0.95, 0.30, 0.30},
				Angles:    [5]float64{0.52, 0.95, 0.95, 0.38, 0.38},
				Spreads:   [4]float64{0.11, 0.16, 0.09, 0.05},
				Heights:   [5]float64{0.38, 0.88, 0.88, 0.26, 0.25},
				Secondary: true},
			{Letter: "W", Category: CategoryConsonant,
				Features:  [5]float64{0.40, 0.95, 0.95, 0.95, 0.32},
				Angles:    [5]float64{0.48, 0.95, 0.95, 0.95, 0.40},
				Spreads:   [4]float64{0.10, 0.11, 0.11, 0.06},
				Heights:   [5]float64{0.34, 0.88, 0.90, 0.88, 0.28},
				Secondary: true},
			{Letter: "X", Category: CategoryConsonant,
				Features:  [5]float64{0.42, 0.60, 0.30, 0.30, 0.30},
				Angles:    [5]float64{0.52, 0.55, 0.38, 0.38, 0.38},
				Spreads:   [4]float64{0.11, 0.10, 0.05, 0.05},
				Heights:   [5]float64{0.36, 0.52, 0.26, 0.26, 0.25},
				Secondary: true},
			{Letter: "Y", Category: CategoryConsonant,
				Features:  [5]float64{0.80, 0.32, 0.30, 0.30, 0.88},
				Angles:    [5]float64{0.90, 0.38, 0.38, 0.38, 0.92},
				Spreads:   [4]float64{0.28, 0.05, 0.05, 0.16},
				Heights:   [5]float64{0.70, 0.28, 0.26, 0.26, 0.80},
				Secondary: true},
			{Letter: "Z", Category: CategoryConsonant,
				Features:  [5]float64{0.50, 0.92, 0.30, 0.30, 0.30},
				Angles:    [5]float64{0.62, 0.92, 0.38, 0.38, 0.38},
				Spreads:   [4]float64{0.13, 0.11, 0.05, 0.05},
				Heights:   [5]float64{0.44, 0.86, 0.26, 0.26, 0.25},
				Secondary: true},
		},
	}
}

// SpanishVowels returns the reduced vowel-only dictionary. It is tuned
// independently of the full alphabet (0.7/0.3 weights, no secondary
// features); the two variants are separate instances, not supersets.
func SpanishVowels() Alphabet {
	full := SpanishAlphabet()

	vowels := Alphabet{
		Name:    "spanish-vowels",
		Weights: Weights{Feature: 0.7, Angle: 0.3},
	}
	for _, t := range full.Templates {
		if t.Category != CategoryVowel {
			continue
		}
		// The vowel variant scores on extensions and angles alone.
		t.Spreads = [4]float64{}
		t.Heights = [5]float64{}
		t.Secondary = false
		vowels.Templates = append(vowels.Templates, t)
	}

	return vowels
}
