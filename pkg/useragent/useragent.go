package useragent

import (
	"errors"
	"strings"
)

// ErrEmptyUserAgent is returned when the User-Agent string is empty.
// The returned UserAgent value is still usable and classifies as other/unknown.
var ErrEmptyUserAgent = errors.New("empty user agent string")

// Platform is a closed, best-effort classification of the client platform.
// User-Agent sniffing is heuristic by nature: spoofed or novel agents
// fall back to PlatformOther rather than failing.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformOther   Platform = "other"
)

// DeviceType classifies the physical device shape implied by the User-Agent.
type DeviceType string

const (
	DeviceTypeMobile  DeviceType = "mobile"
	DeviceTypeTablet  DeviceType = "tablet"
	DeviceTypeDesktop DeviceType = "desktop"
	DeviceTypeUnknown DeviceType = "unknown"
)

// UserAgent holds the classification extracted from a User-Agent string.
type UserAgent struct {
	raw      string
	platform Platform
	device   DeviceType
}

// Parse classifies a User-Agent string. An empty string returns
// ErrEmptyUserAgent together with a zero-value classification that callers
// may use as a fallback.
func Parse(raw string) (UserAgent, error) {
	if strings.TrimSpace(raw) == "" {
		return UserAgent{raw: raw, platform: PlatformOther, device: DeviceTypeUnknown}, ErrEmptyUserAgent
	}

	ua := UserAgent{raw: raw, platform: PlatformOther, device: DeviceTypeDesktop}
	lower := strings.ToLower(raw)

	switch {
	case strings.Contains(lower, "ipad"):
		ua.platform = PlatformIOS
		ua.device = DeviceTypeTablet
	case strings.Contains(lower, "iphone"), strings.Contains(lower, "ipod"):
		ua.platform = PlatformIOS
		ua.device = DeviceTypeMobile
	case strings.Contains(lower, "android"):
		ua.platform = PlatformAndroid
		// Android tablets omit the "Mobile" token in Chrome User-Agents.
		if strings.Contains(lower, "mobile") {
			ua.device = DeviceTypeMobile
		} else {
			ua.device = DeviceTypeTablet
		}
	case strings.Contains(lower, "tablet"):
		ua.device = DeviceTypeTablet
	case strings.Contains(lower, "mobi"):
		ua.device = DeviceTypeMobile
	}

	return ua, nil
}

// String returns the original User-Agent string.
func (ua UserAgent) String() string { return ua.raw }

// Platform returns the detected platform family.
func (ua UserAgent) Platform() Platform { return ua.platform }

// DeviceType returns the detected device shape.
func (ua UserAgent) DeviceType() DeviceType { return ua.device }

// IsMacintosh reports whether the agent presents itself as macOS. Safari on
// iPadOS does this too; callers holding a touch-capability signal can use it
// to tell the two apart.
func (ua UserAgent) IsMacintosh() bool {
	return strings.Contains(strings.ToLower(ua.raw), "macintosh")
}

// IsIOS reports whether the agent belongs to the iOS family (iPhone, iPad, iPod).
func (ua UserAgent) IsIOS() bool { return ua.platform == PlatformIOS }

// IsAndroid reports whether the agent belongs to the Android family.
func (ua UserAgent) IsAndroid() bool { return ua.platform == PlatformAndroid }

// IsMobile reports whether the agent looks like a phone.
func (ua UserAgent) IsMobile() bool { return ua.device == DeviceTypeMobile }

// IsTablet reports whether the agent looks like a tablet.
func (ua UserAgent) IsTablet() bool { return ua.device == DeviceTypeTablet }
