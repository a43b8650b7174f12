package presentation

import (
	"math"
	"strconv"

	"github.com/WareOnGo/wag-dashboard/core/device"
	"github.com/WareOnGo/wag-dashboard/pkg/useragent"
)

// CacheStrategy selects how aggressively consumers may cache fetched data.
type CacheStrategy string

const (
	CacheMinimal    CacheStrategy = "minimal"
	CacheAggressive CacheStrategy = "aggressive"
)

// Settings is the performance-tier configuration derived from the capability
// snapshot. Pure output: recomputed on change, never mutated in place.
type Settings struct {
	EnableAnimations      bool          `json:"enableAnimations"`
	LazyLoadThreshold     float64       `json:"lazyLoadThreshold"`
	ImageQuality          float64       `json:"imageQuality"`
	MaxConcurrentRequests int           `json:"maxConcurrentRequests"`
	EnableVirtualization  bool          `json:"enableVirtualization"`
	CacheStrategy         CacheStrategy `json:"cacheStrategy"`
}

// Performance derives the performance tier from the snapshot. Low-end devices
// get reduced animation, earlier lazy loading, lower image quality, a smaller
// request budget, and minimal caching.
func Performance(facts device.Facts) Settings {
	lowEnd := facts.LowEnd()

	settings := Settings{
		EnableAnimations:      !lowEnd,
		LazyLoadThreshold:     0.3,
		ImageQuality:          0.9,
		MaxConcurrentRequests: 6,
		EnableVirtualization:  facts.Hardware.MemoryGiB > 2,
		CacheStrategy:         CacheAggressive,
	}
	if lowEnd {
		settings.LazyLoadThreshold = 0.1
		settings.ImageQuality = 0.7
		settings.MaxConcurrentRequests = 2
		settings.CacheStrategy = CacheMinimal
	}
	return settings
}

// CSSVariables maps the snapshot to CSS custom-property values. The mapping
// is deterministic: identical inputs always yield an identical map.
func CSSVariables(insets device.SafeAreaInsets, facts device.Facts) map[string]string {
	px := func(v int) string { return strconv.Itoa(v) + "px" }

	vars := map[string]string{
		"--safe-area-inset-top":    px(insets.Top),
		"--safe-area-inset-right":  px(insets.Right),
		"--safe-area-inset-bottom": px(insets.Bottom),
		"--safe-area-inset-left":   px(insets.Left),
		"--device-pixel-ratio":     strconv.FormatFloat(facts.Screen.PixelRatio, 'f', -1, 64),
		"--max-touch-points":       strconv.Itoa(facts.Hardware.MaxTouchPoints),
	}

	if insets.HasNotch() {
		vars["--platform-padding-top"] = px(insets.Top + 8)
	} else {
		vars["--platform-padding-top"] = "8px"
	}
	vars["--platform-padding-bottom"] = px(max(insets.Bottom, 8))

	if facts.LowEnd() {
		vars["--animation-duration"] = "0.2s"
		vars["--transition-duration"] = "0.15s"
	} else {
		vars["--animation-duration"] = "0.3s"
		vars["--transition-duration"] = "0.25s"
	}

	switch facts.Platform {
	case useragent.PlatformIOS:
		vars["--webkit-overflow-scrolling"] = "touch"
		vars["--webkit-tap-highlight-color"] = "transparent"
		vars["--webkit-touch-callout"] = "none"
	case useragent.PlatformAndroid:
		vars["--overscroll-behavior"] = "contain"
		vars["--touch-action"] = "manipulation"
	}

	return vars
}

// ClassTokens derives the classification token set for conditional styling.
// The result contains exactly one token from each category (platform, shape,
// notch, performance, display mode) plus the parameterized orientation and
// pixel-ratio tokens. Tokens never contain spaces.
func ClassTokens(insets device.SafeAreaInsets, facts device.Facts, o device.Orientation) []string {
	tokens := make([]string, 0, 7)

	switch facts.Platform {
	case useragent.PlatformIOS:
		if facts.TabletLike {
			tokens = append(tokens, "ipad")
		} else {
			tokens = append(tokens, "iphone")
		}
	case useragent.PlatformAndroid:
		tokens = append(tokens, "android")
	default:
		tokens = append(tokens, "none")
	}

	if facts.TabletLike {
		tokens = append(tokens, "tablet")
	} else {
		tokens = append(tokens, "phone")
	}

	if insets.HasNotch() {
		tokens = append(tokens, "has-notch")
	} else {
		tokens = append(tokens, "no-notch")
	}

	if facts.LowEnd() {
		tokens = append(tokens, "low-end-device")
	} else {
		tokens = append(tokens, "high-end-device")
	}

	if facts.Standalone {
		tokens = append(tokens, "standalone-app")
	} else {
		tokens = append(tokens, "browser-app")
	}

	tokens = append(tokens,
		"orientation-"+string(o.Kind),
		"pixel-ratio-"+strconv.Itoa(int(math.Floor(facts.Screen.PixelRatio))),
	)

	return tokens
}

// RequiresSpecialHandling reports whether callers should apply extra
// adaptation logic: notched screens, low-end hardware, very dense displays,
// or many-touch input all qualify.
func RequiresSpecialHandling(insets device.SafeAreaInsets, facts device.Facts) bool {
	return insets.HasNotch() ||
		facts.LowEnd() ||
		facts.Screen.PixelRatio > 2 ||
		facts.Hardware.MaxTouchPoints > 5
}

// Bundle is the complete derived presentation output for one snapshot.
// It has no identity of its own: discard and re-derive on every change.
type Bundle struct {
	CSSVariables map[string]string `json:"cssVariables"`
	ClassTokens  []string          `json:"classTokens"`
	Performance  Settings          `json:"performance"`
}

// Derive computes the full presentation bundle from a snapshot.
func Derive(insets device.SafeAreaInsets, facts device.Facts, o device.Orientation) Bundle {
	return Bundle{
		CSSVariables: CSSVariables(insets, facts),
		ClassTokens:  ClassTokens(insets, facts, o),
		Performance:  Performance(facts),
	}
}

// ForProbe derives the bundle from a live probe's current state.
func ForProbe(p *device.Probe) Bundle {
	return Derive(p.SafeAreas(), p.Capabilities(), p.Orientation())
}
