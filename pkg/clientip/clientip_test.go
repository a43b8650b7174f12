package clientip_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WareOnGo/wag-dashboard/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "remote addr fallback",
			remoteAddr: "203.0.113.7:51234",
			want:       "203.0.113.7",
		},
		{
			name:       "cloudflare header wins",
			headers:    map[string]string{"CF-Connecting-IP": "198.51.100.1", "X-Real-IP": "203.0.113.9"},
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.1",
		},
		{
			name:       "x-forwarded-for leftmost entry",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.2, 10.0.0.1, 10.0.0.2"},
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.2",
		},
		{
			name:       "invalid header value falls through",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip"},
			remoteAddr: "203.0.113.7:443",
			want:       "203.0.113.7",
		},
		{
			name:       "unspecified address rejected",
			headers:    map[string]string{"X-Real-IP": "0.0.0.0"},
			remoteAddr: "203.0.113.7:443",
			want:       "203.0.113.7",
		},
		{
			name:       "ipv6 normalized",
			headers:    map[string]string{"X-Real-IP": "2001:db8:0:0:0:0:0:1"},
			remoteAddr: "10.0.0.1:80",
			want:       "2001:db8::1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, clientip.GetIP(r))
		})
	}
}
