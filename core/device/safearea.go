package device

// notchInsetThreshold is the top inset, in pixels, above which the screen is
// assumed to carry a physical cutout. Status bars report up to 20px; notched
// devices report more.
const notchInsetThreshold = 20

// SafeAreaInsets holds the platform-reported padding needed to avoid physical
// screen cutouts (notch, rounded corners, home indicator). Values are pixels
// and never negative.
type SafeAreaInsets struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// HasNotch reports whether the top inset indicates a physical cutout.
func (s SafeAreaInsets) HasNotch() bool {
	return s.Top > notchInsetThreshold
}

// DetectSafeAreas reads the four inset values from the host. Hosts without
// safe-area support yield all zeros; negative readings are clamped to zero.
// The function is total: it never fails.
func DetectSafeAreas(host Host) SafeAreaInsets {
	if host == nil {
		host = NullHost{}
	}

	top, right, bottom, left := probe4(0, 0, 0, 0, host.SafeAreaInsets)

	return SafeAreaInsets{
		Top:    max(top, 0),
		Right:  max(right, 0),
		Bottom: max(bottom, 0),
		Left:   max(left, 0),
	}
}

// probe4 is probe for the four-value safe-area read.
func probe4(ft, fr, fb, fl int, read func() (int, int, int, int)) (t, r, b, l int) {
	defer func() {
		if recover() != nil {
			t, r, b, l = ft, fr, fb, fl
		}
	}()
	return read()
}
