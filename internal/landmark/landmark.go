// Package landmark defines the hand pose data model shared by the
// finger-spelling pipeline: 21 3D keypoints with fixed semantic indices.
package landmark

import (
	"errors"
	"fmt"
	"math"
)

// Hand landmark indices following the MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// ErrIncompletePose is returned when fewer than NumLandmarks points are given.
var ErrIncompletePose = errors.New("incomplete hand pose")

// Point3D is a single keypoint in normalized image coordinates.
// X and Y lie in [0,1]; Z is relative depth with the wrist near zero.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandPose is the full ordered set of 21 landmarks for one detected hand.
// Index 0 is always the wrist; indices are never reordered.
type HandPose struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// PoseFromPoints is the single validation entry point for raw landmark data.
// It rejects inputs with fewer than 21 points or non-finite coordinates so
// malformed data never reaches feature math. Extra points are ignored.
func PoseFromPoints(points []Point3D) (*HandPose, error) {
	if len(points) < NumLandmarks {
		return nil, fmt.Errorf("%w: got %d landmarks, need %d", ErrIncompletePose, len(points), NumLandmarks)
	}

	pose := &HandPose{}
	for i := 0; i < NumLandmarks; i++ {
		p := points[i]
		if !isFinite(p.X) || !isFinite(p.Y) || !isFinite(p.Z) {
			return nil, fmt.Errorf("landmark %d has non-finite coordinates", i)
		}
		pose.Points[i] = p
	}

	return pose, nil
}

// Distance returns the Euclidean distance between two points, depth included.
func Distance(a, b Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
