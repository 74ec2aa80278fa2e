package led

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaledRamp(t *testing.T) {
	assert.Equal(t, []int{0, 9, 20, 29, 40, 57, 68, 80}, ScaledRamp(204))
	assert.Equal(t, []int{0, 12, 25, 37, 50, 72, 85, 100}, ScaledRamp(255))
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0, 0}, ScaledRamp(0))
}

func TestFormatRamp(t *testing.T) {
	assert.Equal(t, "0,9,20,29,40,57,68,80", FormatRamp(ScaledRamp(204)))
	assert.Equal(t, "", FormatRamp(nil))
}

func TestComputeBlinkTiming(t *testing.T) {
	tests := []struct {
		name  string
		onMs  int32
		offMs int32
		want  BlinkTiming
	}{
		{
			name:  "on phase too short",
			onMs:  100,
			offMs: 1000,
			want:  BlinkTiming{StepDuration: 6, PauseHigh: 0, PauseLow: 1000},
		},
		{
			name:  "exact fit",
			onMs:  2400,
			offMs: 0,
			want:  BlinkTiming{StepDuration: RampStepDuration, PauseHigh: 0, PauseLow: 0},
		},
		{
			name:  "room to hold",
			onMs:  3000,
			offMs: 500,
			want:  BlinkTiming{StepDuration: RampStepDuration, PauseHigh: 600, PauseLow: 500},
		},
		{
			name:  "zero on phase",
			onMs:  0,
			offMs: 250,
			want:  BlinkTiming{StepDuration: 0, PauseHigh: 0, PauseLow: 250},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeBlinkTiming(tt.onMs, tt.offMs))
		})
	}
}
