// Package feature converts hand poses into fixed-size numeric descriptors
// for template matching: per-finger extension distances, joint flexion
// angles, and optional inter-finger spread and fingertip height values.
package feature

import (
	"math"

	"github.com/ayusman/fingerspell/internal/landmark"
)

// NumFingers is the number of fingers described by a Vector, thumb included.
const NumFingers = 5

// DefaultNormDistance is the wrist-to-fingertip distance treated as full
// extension. A fully extended hand approaches 1.0 after normalization; a
// closed fist approaches 0.
const DefaultNormDistance = 0.4

// fingerTips holds the fingertip landmark index per finger,
// thumb through pinky.
var fingerTips = [NumFingers]int{
	landmark.ThumbTip,
	landmark.IndexTip,
	landmark.MiddleTip,
	landmark.RingTip,
	landmark.PinkyTip,
}

// fingerJoints holds the (base, mid, tip) landmark triple used to measure
// flexion at each finger's middle joint. The thumb bends at the IP joint,
// the other fingers at the PIP.
var fingerJoints = [NumFingers][3]int{
	{landmark.ThumbMCP, landmark.ThumbIP, landmark.ThumbTip},
	{landmark.IndexMCP, landmark.IndexPIP, landmark.IndexTip},
	{landmark.MiddleMCP, landmark.MiddlePIP, landmark.MiddleTip},
	{landmark.RingMCP, landmark.RingPIP, landmark.RingTip},
	{landmark.PinkyMCP, landmark.PinkyPIP, landmark.PinkyTip},
}

// Config holds the tunable parameters of the extractor.
type Config struct {
	// NormDistance divides the raw wrist-to-fingertip distances.
	NormDistance float64

	// Secondary enables the spread and height features used by the
	// full-alphabet classifier. The vowel-only variant leaves them off.
	Secondary bool
}

// DefaultConfig returns a Config with the default normalization distance
// and secondary features disabled.
func DefaultConfig() Config {
	return Config{NormDistance: DefaultNormDistance}
}

// Vector is the per-frame feature descriptor. It is produced fresh every
// frame and carries no identity.
type Vector struct {
	// Extensions holds normalized wrist-to-fingertip distances in [0,1].
	Extensions [NumFingers]float64 `json:"extensions"`

	// Angles holds middle-joint flexion angles divided by pi. A straight
	// finger reads near 1, a curled finger near 0.
	Angles [NumFingers]float64 `json:"angles"`

	// Spreads holds wrist-vertex angles between adjacent fingertip
	// vectors, divided by pi. Populated only when Secondary is enabled.
	Spreads [NumFingers - 1]float64 `json:"spreads,omitempty"`

	// Heights holds fingertip heights above the wrist, clamped to [0,1].
	// Populated only when Secondary is enabled.
	Heights [NumFingers]float64 `json:"heights,omitempty"`

	// HasSecondary reports whether Spreads and Heights were computed.
	HasSecondary bool `json:"has_secondary"`
}

// Extractor computes feature vectors from hand poses. It is stateless and
// safe for concurrent use across streams.
type Extractor struct {
	config Config
}

// NewExtractor creates an Extractor. A non-positive NormDistance falls back
// to the default.
func NewExtractor(config Config) *Extractor {
	if config.NormDistance <= 0 {
		config.NormDistance = DefaultNormDistance
	}
	return &Extractor{config: config}
}

// Extract converts a hand pose into a feature vector. It returns nil for a
// nil pose so a missing detection degrades to "no letter" downstream
// instead of interrupting the frame loop.
func (e *Extractor) Extract(pose *landmark.HandPose) *Vector {
	if pose == nil {
		return nil
	}

	v := &Vector{HasSecondary: e.config.Secondary}
	wrist := pose.Points[landmark.Wrist]

	for i, tip := range fingerTips {
		dist := landmark.Distance(wrist, pose.Points[tip])
		v.Extensions[i] = clamp01(dist / e.config.NormDistance)
	}

	for i, joint := range fingerJoints {
		angle := vertexAngle(pose.Points[joint[1]], pose.Points[joint[0]], pose.Points[joint[2]])
		v.Angles[i] = angle / math.Pi
	}

	if e.config.Secondary {
		for i := 0; i < NumFingers-1; i++ {
			a := pose.Points[fingerTips[i]]
			b := pose.Points[fingerTips[i+1]]
			v.Spreads[i] = vertexAngle(wrist, a, b) / math.Pi
		}
		for i, tip := range fingerTips {
			// Image Y grows downward, so height is wrist.Y minus tip.Y.
			v.Heights[i] = clamp01(wrist.Y - pose.Points[tip].Y)
		}
	}

	return v
}

// vertexAngle returns the angle at vertex formed by the vectors toward a and
// b, in radians. Degenerate (zero-length) vectors yield 0 rather than NaN.
func vertexAngle(vertex, a, b landmark.Point3D) float64 {
	ax := a.X - vertex.X
	ay := a.Y - vertex.Y
	az := a.Z - vertex.Z
	bx := b.X - vertex.X
	by := b.Y - vertex.Y
	bz := b.Z - vertex.Z

	magA := math.Sqrt(ax*ax + ay*ay + az*az)
	magB := math.Sqrt(bx*bx + by*by + bz*bz)
	if magA < 1e-10 || magB < 1e-10 {
		return 0
	}

	cos := (ax*bx + ay*by + az*bz) / (magA * magB)

	// Floating-point drift can push the cosine marginally outside [-1,1],
	// which would make Acos return NaN.
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return math.Acos(cos)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
