package device

import (
	"net/http"
	"strconv"

	"github.com/WareOnGo/wag-dashboard/pkg/useragent"
)

// RequestHost derives best-effort probe values from HTTP request headers
// (User-Agent plus client hints). It covers the first paint, before the page
// has posted a full capability report; anything the headers do not carry
// reads as absent and resolves to defaults.
type RequestHost struct {
	ua            string
	viewportWidth int
	pixelRatio    float64
	memoryGiB     float64
	touchPoints   int
}

// NewRequestHost reads the relevant headers once and captures them.
func NewRequestHost(r *http.Request) *RequestHost {
	h := &RequestHost{ua: r.UserAgent()}

	if v := firstHeader(r, "Sec-CH-Viewport-Width", "Viewport-Width"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			h.viewportWidth = n
		}
	}
	if v := firstHeader(r, "Sec-CH-DPR", "DPR"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			h.pixelRatio = f
		}
	}
	if v := firstHeader(r, "Sec-CH-Device-Memory", "Device-Memory"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			h.memoryGiB = f
		}
	}

	// No header reports touch support; assume a touchscreen for phone and
	// tablet agents so touch sizing applies on first paint.
	if ua, err := useragent.Parse(h.ua); err == nil && (ua.IsMobile() || ua.IsTablet()) {
		h.touchPoints = 5
	}

	return h
}

func firstHeader(r *http.Request, names ...string) string {
	for _, name := range names {
		if v := r.Header.Get(name); v != "" {
			return v
		}
	}
	return ""
}

func (h *RequestHost) UserAgent() string                    { return h.ua }
func (h *RequestHost) ScreenSize() (int, int)               { return h.viewportWidth, 0 }
func (h *RequestHost) PixelRatio() float64                  { return h.pixelRatio }
func (h *RequestHost) ColorDepth() int                      { return 0 }
func (h *RequestHost) SafeAreaInsets() (int, int, int, int) { return 0, 0, 0, 0 }
func (h *RequestHost) MaxTouchPoints() int                  { return h.touchPoints }
func (h *RequestHost) DeviceMemoryGiB() float64             { return h.memoryGiB }
func (h *RequestHost) LogicalCores() int                    { return 0 }
func (h *RequestHost) HasFeature(Feature) bool              { return false }

// ViewportSize reports unknown: headers carry no viewport height, and a
// width-only reading would misclassify portrait devices as landscape.
func (h *RequestHost) ViewportSize() (int, int)             { return 0, 0 }
func (h *RequestHost) OrientationAngle() (int, bool)        { return 0, false }
func (h *RequestHost) StandaloneDisplay() bool              { return false }
