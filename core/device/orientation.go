package device

// OrientationKind names the two viewport orientations.
type OrientationKind string

const (
	Portrait  OrientationKind = "portrait"
	Landscape OrientationKind = "landscape"
)

// Orientation is the current viewport orientation. It is the only mutable
// part of a session's device state and is always replaced wholesale, never
// partially updated.
type Orientation struct {
	Kind           OrientationKind
	AngleDegrees   int
	ViewportWidth  int
	ViewportHeight int
}

// ComputeOrientation derives the orientation from viewport dimensions and an
// angle hint. Kind is landscape iff width is strictly greater than height;
// equal dimensions count as portrait.
func ComputeOrientation(width, height, angle int) Orientation {
	kind := Portrait
	if width > height {
		kind = Landscape
	}
	return Orientation{
		Kind:           kind,
		AngleDegrees:   angle,
		ViewportWidth:  width,
		ViewportHeight: height,
	}
}

// currentOrientation probes the host for fresh viewport dimensions and angle.
// A host without an orientation API contributes angle 0, indistinguishable
// from a genuine 0° reading.
func currentOrientation(host Host) Orientation {
	if host == nil {
		host = NullHost{}
	}
	width, height := probe2(0, 0, host.ViewportSize)
	angle, _ := probe2(0, false, host.OrientationAngle)
	return ComputeOrientation(width, height, angle)
}
