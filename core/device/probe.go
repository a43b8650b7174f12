package device

import (
	"strconv"
	"sync"

	"github.com/WareOnGo/wag-dashboard/pkg/useragent"
)

// touchTargetMinPx is the minimum touch target size recommended by both
// mobile platforms.
const touchTargetMinPx = 44

// Side selects one safe-area inset, or all four at once.
type Side string

const (
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideAll    Side = "all"
)

// ElementStyler is a handle to a UI element whose inline styles can be set.
// The dashboard page implements it over DOM element references; tests use a
// simple recording fake.
type ElementStyler interface {
	SetStyle(property, value string)
}

// Probe is the session-scoped device state: the immutable capability
// snapshot plus the live orientation cell. Construct one per session with
// NewProbe and share it by reference; all methods are safe for concurrent use.
type Probe struct {
	host      Host
	safeAreas SafeAreaInsets
	facts     Facts

	mu          sync.RWMutex
	orientation Orientation
}

// NewProbe detects the capability snapshot once and computes the initial
// orientation synchronously from the current viewport. Detection is total:
// a nil or capability-free host produces a snapshot of documented defaults.
func NewProbe(host Host) *Probe {
	if host == nil {
		host = NullHost{}
	}
	return &Probe{
		host:        host,
		safeAreas:   DetectSafeAreas(host),
		facts:       DetectFacts(host),
		orientation: currentOrientation(host),
	}
}

// Watch subscribes the probe to orientation/resize events so its orientation
// stays current. onChange, if non-nil, runs after each recomputation with the
// fresh value. The returned unsubscribe function must be called on teardown;
// calling it twice is a no-op.
func (p *Probe) Watch(src EventSource, onChange func(Orientation)) (unsubscribe func()) {
	return SubscribeOrientationChanges(src, p.host, func(o Orientation) {
		p.mu.Lock()
		p.orientation = o
		p.mu.Unlock()
		if onChange != nil {
			onChange(o)
		}
	})
}

// SafeAreas returns the detected safe-area insets.
func (p *Probe) SafeAreas() SafeAreaInsets { return p.safeAreas }

// Capabilities returns the immutable capability snapshot.
func (p *Probe) Capabilities() Facts { return p.facts }

// Orientation returns the most recently computed orientation.
func (p *Probe) Orientation() Orientation {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.orientation
}

// HasCapability reports whether the named feature was detected.
func (p *Probe) HasCapability(f Feature) bool {
	return p.facts.Features.Has(f)
}

// SafeAreaPadding renders the inset for one side as a CSS pixel value, or all
// four as a CSS shorthand (top right bottom left) when side is SideAll.
// Unknown sides render as "0px".
func (p *Probe) SafeAreaPadding(side Side) string {
	px := func(v int) string { return strconv.Itoa(v) + "px" }

	switch side {
	case SideTop:
		return px(p.safeAreas.Top)
	case SideRight:
		return px(p.safeAreas.Right)
	case SideBottom:
		return px(p.safeAreas.Bottom)
	case SideLeft:
		return px(p.safeAreas.Left)
	case SideAll:
		return px(p.safeAreas.Top) + " " + px(p.safeAreas.Right) + " " +
			px(p.safeAreas.Bottom) + " " + px(p.safeAreas.Left)
	default:
		return "0px"
	}
}

// OptimizeForTouch applies touch-friendly sizing and platform scroll/zoom
// hints to the given element: a minimum 44px square target plus
// platform-specific touch-action overrides.
func (p *Probe) OptimizeForTouch(el ElementStyler) {
	if el == nil {
		return
	}

	minPx := strconv.Itoa(touchTargetMinPx) + "px"
	el.SetStyle("min-width", minPx)
	el.SetStyle("min-height", minPx)

	switch p.facts.Platform {
	case useragent.PlatformIOS:
		el.SetStyle("-webkit-tap-highlight-color", "transparent")
		el.SetStyle("-webkit-touch-callout", "none")
		el.SetStyle("-webkit-overflow-scrolling", "touch")
	case useragent.PlatformAndroid:
		el.SetStyle("touch-action", "manipulation")
		el.SetStyle("overscroll-behavior", "contain")
	}
}
