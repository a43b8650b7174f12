package device

// Report is the capability report the dashboard page posts once at startup.
// It mirrors the browser-side probe points one to one; omitted fields keep
// their zero value and resolve to the documented defaults during detection.
type Report struct {
	UserAgent string `json:"userAgent"`

	Screen struct {
		Width      int     `json:"width"`
		Height     int     `json:"height"`
		PixelRatio float64 `json:"pixelRatio"`
		ColorDepth int     `json:"colorDepth"`
	} `json:"screen"`

	Viewport struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"viewport"`

	SafeAreaInsets struct {
		Top    int `json:"top"`
		Right  int `json:"right"`
		Bottom int `json:"bottom"`
		Left   int `json:"left"`
	} `json:"safeAreaInsets"`

	MaxTouchPoints      int     `json:"maxTouchPoints"`
	DeviceMemoryGiB     float64 `json:"deviceMemory"`
	HardwareConcurrency int     `json:"hardwareConcurrency"`

	// OrientationAngle is a pointer so a reported 0° is distinguishable
	// from an absent orientation API on the wire, even though detection
	// resolves both to 0.
	OrientationAngle *int `json:"orientationAngle"`

	Standalone bool     `json:"standalone"`
	Features   []string `json:"features"`
}

// ReportHost adapts a client-posted Report to the Host interface, giving the
// server a session-accurate snapshot instead of header guesses.
type ReportHost struct {
	report   Report
	features map[Feature]bool
}

// NewReportHost wraps a Report. The feature list is indexed once so lookups
// are constant-time.
func NewReportHost(report Report) *ReportHost {
	features := make(map[Feature]bool, len(report.Features))
	for _, name := range report.Features {
		features[Feature(name)] = true
	}
	return &ReportHost{report: report, features: features}
}

func (h *ReportHost) UserAgent() string { return h.report.UserAgent }

func (h *ReportHost) ScreenSize() (int, int) {
	return h.report.Screen.Width, h.report.Screen.Height
}

func (h *ReportHost) PixelRatio() float64 { return h.report.Screen.PixelRatio }
func (h *ReportHost) ColorDepth() int     { return h.report.Screen.ColorDepth }

func (h *ReportHost) SafeAreaInsets() (int, int, int, int) {
	i := h.report.SafeAreaInsets
	return i.Top, i.Right, i.Bottom, i.Left
}

func (h *ReportHost) MaxTouchPoints() int      { return h.report.MaxTouchPoints }
func (h *ReportHost) DeviceMemoryGiB() float64 { return h.report.DeviceMemoryGiB }
func (h *ReportHost) LogicalCores() int        { return h.report.HardwareConcurrency }

func (h *ReportHost) HasFeature(f Feature) bool { return h.features[f] }

func (h *ReportHost) ViewportSize() (int, int) {
	return h.report.Viewport.Width, h.report.Viewport.Height
}

func (h *ReportHost) OrientationAngle() (int, bool) {
	if h.report.OrientationAngle == nil {
		return 0, false
	}
	return *h.report.OrientationAngle, true
}

func (h *ReportHost) StandaloneDisplay() bool { return h.report.Standalone }
