// Package useragent provides best-effort User-Agent string classification
// into a closed platform enum (iOS, Android, other) and a device shape
// (mobile, tablet, desktop).
//
// The classification is heuristic keyword matching, not a guarantee: spoofed
// or unrecognized agents classify as PlatformOther / DeviceTypeDesktop and
// callers are expected to treat the result as a styling hint only.
//
//	ua, err := useragent.Parse(r.Header.Get("User-Agent"))
//	if err != nil {
//		// Empty header; ua still carries a usable other/unknown fallback.
//	}
//
//	switch ua.Platform() {
//	case useragent.PlatformIOS:
//		// iOS-specific presentation tweaks
//	case useragent.PlatformAndroid:
//		// Android-specific presentation tweaks
//	}
package useragent
