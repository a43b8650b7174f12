package device_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WareOnGo/wag-dashboard/core/device"
)

func TestComputeOrientation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		width, height int
		angle         int
		want          device.OrientationKind
	}{
		{"wider than tall is landscape", 844, 390, 90, device.Landscape},
		{"taller than wide is portrait", 390, 844, 0, device.Portrait},
		{"equal dimensions pin to portrait", 600, 600, 0, device.Portrait},
		{"zero viewport is portrait", 0, 0, 0, device.Portrait},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			o := device.ComputeOrientation(tt.width, tt.height, tt.angle)
			assert.Equal(t, tt.want, o.Kind)
			assert.Equal(t, tt.angle, o.AngleDegrees)
			assert.Equal(t, tt.width, o.ViewportWidth)
			assert.Equal(t, tt.height, o.ViewportHeight)
		})
	}
}
