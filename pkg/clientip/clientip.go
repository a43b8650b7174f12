package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Proxy headers checked in priority order. CDN-set headers are the most
// trustworthy since they cannot be spoofed past the edge.
var proxyHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP extracts the real client IP from the request, walking proxy headers
// in priority order before falling back to RemoteAddr. Returns an empty
// string when no valid address is found.
func GetIP(r *http.Request) string {
	for _, header := range proxyHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}
		// X-Forwarded-For may list "client, proxy1, proxy2"; the leftmost
		// entry is the original client.
		if idx := strings.IndexByte(value, ','); idx >= 0 {
			value = value[:idx]
		}
		if ip := normalize(value); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return normalize(host)
}

// normalize validates and canonicalizes an IP string. 0.0.0.0 is rejected:
// it signals the absence of a real client address.
func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}
