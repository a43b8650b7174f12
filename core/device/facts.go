package device

import (
	"github.com/WareOnGo/wag-dashboard/pkg/useragent"
)

// Defaults applied when a host does not expose the corresponding probe point.
const (
	defaultPixelRatio = 1.0
	defaultMemoryGiB  = 4.0
	defaultCoreCount  = 4

	// lowEndMemoryGiB and lowEndCores gate the low-end classification.
	lowEndMemoryGiB = 2.0
	lowEndCores     = 2
)

// Screen describes the physical display.
type Screen struct {
	Width      int
	Height     int
	PixelRatio float64
	ColorDepth int
}

// Hardware carries the navigator-level hardware hints.
type Hardware struct {
	MaxTouchPoints int
	Cores          int
	MemoryGiB      float64
}

// FeatureSet records which named capabilities the host exposes.
// Treat as read-only once produced by DetectFacts.
type FeatureSet map[Feature]bool

// Has reports whether the named feature was detected.
func (fs FeatureSet) Has(f Feature) bool {
	return fs[f]
}

// Facts is the immutable capability snapshot for one session. It is computed
// once at startup and never changes; orientation is tracked separately
// because it is the only value that moves during a session.
type Facts struct {
	UserAgent  string
	Platform   useragent.Platform
	PhoneLike  bool
	TabletLike bool
	Screen     Screen
	Hardware   Hardware
	Features   FeatureSet
	Standalone bool
}

// LowEnd classifies the device as low-end when it has at most 2 GiB of
// memory or at most 2 logical cores. Used to gate animation and caching
// aggressiveness.
func (f Facts) LowEnd() bool {
	return f.Hardware.MemoryGiB <= lowEndMemoryGiB || f.Hardware.Cores <= lowEndCores
}

// DetectFacts probes the host and returns a fully-populated snapshot.
// Every read is independently optional: a missing or panicking probe point
// resolves to its default without affecting the others, so the function is
// total even on a host with no browser APIs at all.
func DetectFacts(host Host) Facts {
	if host == nil {
		host = NullHost{}
	}

	rawUA := probe("", host.UserAgent)
	ua, _ := useragent.Parse(rawUA) // empty UA falls back to other/unknown

	width, height := probe2(0, 0, host.ScreenSize)

	ratio := probe(0.0, host.PixelRatio)
	if ratio <= 0 {
		ratio = defaultPixelRatio
	}

	memory := probe(0.0, host.DeviceMemoryGiB)
	if memory <= 0 {
		memory = defaultMemoryGiB
	}

	cores := probe(0, host.LogicalCores)
	if cores < 1 {
		cores = defaultCoreCount
	}

	features := make(FeatureSet, len(KnownFeatures))
	for _, f := range KnownFeatures {
		features[f] = probe(false, func() bool { return host.HasFeature(f) })
	}

	touchPoints := max(probe(0, host.MaxTouchPoints), 0)

	platform := ua.Platform()
	tabletLike := ua.IsTablet()
	// iPadOS Safari presents a macOS User-Agent; touch support gives it away.
	if platform == useragent.PlatformOther && ua.IsMacintosh() && touchPoints > 1 {
		platform = useragent.PlatformIOS
		tabletLike = true
	}

	return Facts{
		UserAgent:  rawUA,
		Platform:   platform,
		PhoneLike:  ua.IsMobile(),
		TabletLike: tabletLike,
		Screen: Screen{
			Width:      max(width, 0),
			Height:     max(height, 0),
			PixelRatio: ratio,
			ColorDepth: max(probe(0, host.ColorDepth), 0),
		},
		Hardware: Hardware{
			MaxTouchPoints: touchPoints,
			Cores:          cores,
			MemoryGiB:      memory,
		},
		Features:   features,
		Standalone: probe(false, host.StandaloneDisplay) || features[FeatureStandaloneDisplay],
	}
}
