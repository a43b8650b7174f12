// Package clientip extracts real client IP addresses from HTTP requests.
//
// Proxy headers are checked in priority order (CF-Connecting-IP,
// DO-Connecting-IP, X-Forwarded-For, X-Real-IP) before falling back to
// RemoteAddr. Every candidate is validated and normalized; 0.0.0.0 and
// unparseable values are rejected.
//
//	ip := clientip.GetIP(r)
package clientip
