package device_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WareOnGo/wag-dashboard/core/device"
	"github.com/WareOnGo/wag-dashboard/pkg/useragent"
)

func TestRequestHost(t *testing.T) {
	t.Parallel()

	t.Run("reads client hint headers", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("User-Agent", androidUA)
		r.Header.Set("Sec-CH-DPR", "2.5")
		r.Header.Set("Sec-CH-Viewport-Width", "412")
		r.Header.Set("Device-Memory", "2")

		facts := device.DetectFacts(device.NewRequestHost(r))

		assert.Equal(t, useragent.PlatformAndroid, facts.Platform)
		assert.Equal(t, 2.5, facts.Screen.PixelRatio)
		assert.Equal(t, 412, facts.Screen.Width)
		assert.Equal(t, 2.0, facts.Hardware.MemoryGiB)
		assert.True(t, facts.LowEnd(), "2 GiB device memory classifies as low-end")
	})

	t.Run("mobile agents assume a touchscreen", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("User-Agent", iphoneUA)

		facts := device.DetectFacts(device.NewRequestHost(r))
		assert.Equal(t, 5, facts.Hardware.MaxTouchPoints)
	})

	t.Run("bare request resolves to defaults", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/", nil)

		facts := device.DetectFacts(device.NewRequestHost(r))
		assert.Equal(t, 1.0, facts.Screen.PixelRatio)
		assert.Equal(t, 4.0, facts.Hardware.MemoryGiB)
		assert.Equal(t, 0, facts.Hardware.MaxTouchPoints)
	})

	t.Run("orientation stays portrait without viewport height", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Viewport-Width", "1280")

		probe := device.NewProbe(device.NewRequestHost(r))
		assert.Equal(t, device.Portrait, probe.Orientation().Kind)
	})
}

func TestReportHost(t *testing.T) {
	t.Parallel()

	t.Run("round trips a client capability report", func(t *testing.T) {
		t.Parallel()
		payload := `{
			"userAgent": "` + iphoneUA + `",
			"screen": {"width": 390, "height": 844, "pixelRatio": 3, "colorDepth": 24},
			"viewport": {"width": 844, "height": 390},
			"safeAreaInsets": {"top": 47, "right": 0, "bottom": 34, "left": 0},
			"maxTouchPoints": 5,
			"deviceMemory": 6,
			"hardwareConcurrency": 6,
			"orientationAngle": 90,
			"standalone": true,
			"features": ["vibration", "gyroscope", "orientation-events"]
		}`

		var report device.Report
		require.NoError(t, json.Unmarshal([]byte(payload), &report))

		host := device.NewReportHost(report)
		probe := device.NewProbe(host)

		facts := probe.Capabilities()
		assert.Equal(t, useragent.PlatformIOS, facts.Platform)
		assert.Equal(t, 3.0, facts.Screen.PixelRatio)
		assert.True(t, facts.Standalone)
		assert.True(t, probe.HasCapability(device.FeatureGyroscope))
		assert.False(t, probe.HasCapability(device.FeatureGamepad))
		assert.True(t, probe.SafeAreas().HasNotch())

		o := probe.Orientation()
		assert.Equal(t, device.Landscape, o.Kind)
		assert.Equal(t, 90, o.AngleDegrees)
	})

	t.Run("omitted orientation angle reads as absent", func(t *testing.T) {
		t.Parallel()
		var report device.Report
		require.NoError(t, json.Unmarshal([]byte(`{"userAgent":"x"}`), &report))

		host := device.NewReportHost(report)
		angle, ok := host.OrientationAngle()
		assert.Equal(t, 0, angle)
		assert.False(t, ok)
	})
}
