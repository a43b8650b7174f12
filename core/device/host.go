package device

// Feature names a browser capability that can be probed on the host.
type Feature string

const (
	FeatureOrientationEvents Feature = "orientation-events"
	FeatureVibration         Feature = "vibration"
	FeatureBatteryStatus     Feature = "battery-status"
	FeatureGamepad           Feature = "gamepad"
	FeatureMediaDevices      Feature = "media-devices"
	FeatureGetUserMedia      Feature = "get-user-media"
	FeatureAccelerometer     Feature = "accelerometer"
	FeatureGyroscope         Feature = "gyroscope"
	FeatureStandaloneDisplay Feature = "standalone-display-mode"
)

// KnownFeatures lists every feature the detector probes for.
var KnownFeatures = []Feature{
	FeatureOrientationEvents,
	FeatureVibration,
	FeatureBatteryStatus,
	FeatureGamepad,
	FeatureMediaDevices,
	FeatureGetUserMedia,
	FeatureAccelerometer,
	FeatureGyroscope,
	FeatureStandaloneDisplay,
}

// Host is the boundary to the environment being probed. Every probe point is
// independently optional: implementations report zero values (or ok=false)
// for anything the environment does not expose, and the detectors resolve
// those to documented defaults. A probe that panics is treated the same as
// an absent probe.
type Host interface {
	// UserAgent returns the raw User-Agent string, or "" when unknown.
	UserAgent() string

	// ScreenSize returns the physical screen dimensions in CSS pixels,
	// or (0, 0) when unknown.
	ScreenSize() (width, height int)

	// PixelRatio returns the device pixel ratio, or 0 when unknown.
	PixelRatio() float64

	// ColorDepth returns the screen color depth in bits, or 0 when unknown.
	ColorDepth() int

	// SafeAreaInsets returns the four safe-area inset values in pixels.
	// Hosts without cutout support return all zeros.
	SafeAreaInsets() (top, right, bottom, left int)

	// MaxTouchPoints returns the number of simultaneous touch contacts,
	// or 0 when unknown.
	MaxTouchPoints() int

	// DeviceMemoryGiB returns the device memory hint in GiB, or 0 when unknown.
	DeviceMemoryGiB() float64

	// LogicalCores returns the logical CPU core count, or 0 when unknown.
	LogicalCores() int

	// HasFeature reports whether the named capability is present.
	HasFeature(f Feature) bool

	// ViewportSize returns the current viewport dimensions, or (0, 0) when unknown.
	ViewportSize() (width, height int)

	// OrientationAngle returns the orientation angle in degrees.
	// ok is false when the host has no orientation API; callers then use 0,
	// which is indistinguishable from a genuine 0° reading.
	OrientationAngle() (angle int, ok bool)

	// StandaloneDisplay reports whether the app runs in standalone
	// (installed) display mode rather than a browser tab.
	StandaloneDisplay() bool
}

// NullHost is a Host with no probe support at all. Every read yields the
// documented absent-capability value, which makes it the baseline for tests
// and non-browser environments.
type NullHost struct{}

func (NullHost) UserAgent() string                    { return "" }
func (NullHost) ScreenSize() (int, int)               { return 0, 0 }
func (NullHost) PixelRatio() float64                  { return 0 }
func (NullHost) ColorDepth() int                      { return 0 }
func (NullHost) SafeAreaInsets() (int, int, int, int) { return 0, 0, 0, 0 }
func (NullHost) MaxTouchPoints() int                  { return 0 }
func (NullHost) DeviceMemoryGiB() float64             { return 0 }
func (NullHost) LogicalCores() int                    { return 0 }
func (NullHost) HasFeature(Feature) bool              { return false }
func (NullHost) ViewportSize() (int, int)             { return 0, 0 }
func (NullHost) OrientationAngle() (int, bool)        { return 0, false }
func (NullHost) StandaloneDisplay() bool              { return false }

// probe runs a single host read and resolves a panic to the fallback value.
// Capability absence is routine input, never an error, so this is the only
// recovery point the package needs.
func probe[T any](fallback T, read func() T) (v T) {
	defer func() {
		if recover() != nil {
			v = fallback
		}
	}()
	return read()
}

// probe2 is probe for host reads that return a pair of values.
func probe2[A, B any](fa A, fb B, read func() (A, B)) (a A, b B) {
	defer func() {
		if recover() != nil {
			a, b = fa, fb
		}
	}()
	return read()
}
