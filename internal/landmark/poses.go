package landmark

// Preset poses used by tests and the mock detector. The geometry is
// deterministic: wrist at (0.5, 0.8), extended fingertips roughly 0.4 away
// (full extension under the default normalization), curled fingertips close
// to the palm.

// OpenPalm returns a pose with all five fingers extended.
func OpenPalm() *HandPose {
	pose := &HandPose{
		Handedness: "Right",
		Score:      0.95,
	}

	pose.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb extended to the side
	pose.Points[ThumbCMC] = Point3D{X: 0.56, Y: 0.74, Z: 0.02}
	pose.Points[ThumbMCP] = Point3D{X: 0.63, Y: 0.68, Z: 0.03}
	pose.Points[ThumbIP] = Point3D{X: 0.70, Y: 0.62, Z: 0.03}
	pose.Points[ThumbTip] = Point3D{X: 0.76, Y: 0.56, Z: 0.03}

	// Index finger straight up
	pose.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	pose.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.56, Z: 0.0}
	pose.Points[IndexDIP] = Point3D{X: 0.57, Y: 0.48, Z: 0.0}
	pose.Points[IndexTip] = Point3D{X: 0.58, Y: 0.40, Z: 0.0}

	// Middle finger, slightly longer
	pose.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	pose.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.53, Z: 0.0}
	pose.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.45, Z: 0.0}
	pose.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.38, Z: 0.0}

	// Ring finger
	pose.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: 0.0}
	pose.Points[RingPIP] = Point3D{X: 0.44, Y: 0.56, Z: 0.0}
	pose.Points[RingDIP] = Point3D{X: 0.43, Y: 0.48, Z: 0.0}
	pose.Points[RingTip] = Point3D{X: 0.42, Y: 0.41, Z: 0.0}

	// Pinky
	pose.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: 0.0}
	pose.Points[PinkyPIP] = Point3D{X: 0.38, Y: 0.61, Z: 0.0}
	pose.Points[PinkyDIP] = Point3D{X: 0.36, Y: 0.54, Z: 0.0}
	pose.Points[PinkyTip] = Point3D{X: 0.35, Y: 0.48, Z: 0.0}

	return pose
}

// ClosedFist returns a pose with all fingers curled into the palm and the
// thumb folded across them.
func ClosedFist() *HandPose {
	pose := &HandPose{
		Handedness: "Right",
		Score:      0.95,
	}

	pose.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb folded across the curled fingers
	pose.Points[ThumbCMC] = Point3D{X: 0.54, Y: 0.76, Z: 0.01}
	pose.Points[ThumbMCP] = Point3D{X: 0.56, Y: 0.72, Z: 0.02}
	pose.Points[ThumbIP] = Point3D{X: 0.54, Y: 0.69, Z: -0.01}
	pose.Points[ThumbTip] = Point3D{X: 0.51, Y: 0.70, Z: -0.03}

	// Index curled: knuckle up, tip bent back toward the palm
	pose.Points[IndexMCP] = Point3D{X: 0.54, Y: 0.70, Z: -0.01}
	pose.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.66, Z: -0.04}
	pose.Points[IndexDIP] = Point3D{X: 0.54, Y: 0.69, Z: -0.06}
	pose.Points[IndexTip] = Point3D{X: 0.53, Y: 0.72, Z: -0.05}

	// Middle curled
	pose.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.69, Z: -0.01}
	pose.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.65, Z: -0.04}
	pose.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.68, Z: -0.06}
	pose.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.71, Z: -0.05}

	// Ring curled
	pose.Points[RingMCP] = Point3D{X: 0.46, Y: 0.70, Z: -0.01}
	pose.Points[RingPIP] = Point3D{X: 0.46, Y: 0.66, Z: -0.04}
	pose.Points[RingDIP] = Point3D{X: 0.46, Y: 0.69, Z: -0.06}
	pose.Points[RingTip] = Point3D{X: 0.46, Y: 0.72, Z: -0.05}

	// Pinky curled
	pose.Points[PinkyMCP] = Point3D{X: 0.42, Y: 0.72, Z: -0.01}
	pose.Points[PinkyPIP] = Point3D{X: 0.42, Y: 0.69, Z: -0.03}
	pose.Points[PinkyDIP] = Point3D{X: 0.42, Y: 0.71, Z: -0.05}
	pose.Points[PinkyTip] = Point3D{X: 0.42, Y: 0.74, Z: -0.04}

	return pose
}

// PointingIndex returns a pose with only the index finger extended, the rest
// curled. Useful as a second clearly distinct shape in tests.
func PointingIndex() *HandPose {
	pose := ClosedFist()

	pose.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	pose.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.56, Z: 0.0}
	pose.Points[IndexDIP] = Point3D{X: 0.57, Y: 0.48, Z: 0.0}
	pose.Points[IndexTip] = Point3D{X: 0.58, Y: 0.40, Z: 0.0}

	return pose
}
