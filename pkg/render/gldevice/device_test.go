package gldevice

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestClampLineWidth(t *testing.T) {
	tests := []struct {
		name      string
		width     float32
		supported [2]float32
		want      float32
	}{
		{"within range", 3, [2]float32{1, 10}, 3},
		{"above range", 3, [2]float32{1, 1}, 1},
		{"below range", 0.5, [2]float32{1, 10}, 1},
		{"unknown range", 3, [2]float32{0, 0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampLineWidth(tt.width, tt.supported))
		})
	}
}

func TestDrainErrorsClearsStaleFlags(t *testing.T) {
	pending := []uint32{gl.INVALID_VALUE, gl.INVALID_OPERATION}
	calls := 0
	getError := func() uint32 {
		calls++
		if len(pending) == 0 {
			return gl.NO_ERROR
		}
		code := pending[0]
		pending = pending[1:]
		return code
	}

	drainErrors(getError)
	assert.Empty(t, pending)
	assert.Equal(t, 3, calls)
}

func TestDrainErrorsStopsOnStuckFlag(t *testing.T) {
	calls := 0
	drainErrors(func() uint32 {
		calls++
		return gl.INVALID_VALUE
	})
	assert.Equal(t, 16, calls)
}
