package led

import (
	"strconv"
	"strings"
)

const (
	// RampSteps is the number of duty percent steps in one ramp.
	RampSteps = 8
	// RampStepDuration is how long each step is held, in milliseconds.
	// NOTE: older board notes describe this as 50ms; the LED driver has
	// always been programmed with 150.
	RampStepDuration = 150
)

// BrightnessRamp is the blink waveform as duty percents (0-100).
var BrightnessRamp = [RampSteps]int{0, 12, 25, 37, 50, 72, 85, 100}

// ScaledRamp scales every ramp step by brightness/255, keeping the shape.
func ScaledRamp(brightness uint32) []int {
	ramp := make([]int, 0, RampSteps)
	for _, step := range BrightnessRamp {
		ramp = append(ramp, int(uint32(step)*brightness/0xFF))
	}
	return ramp
}

// FormatRamp renders a ramp the way the duty_pcts attribute expects it.
func FormatRamp(ramp []int) string {
	parts := make([]string, 0, len(ramp))
	for _, v := range ramp {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ",")
}

type BlinkTiming struct {
	StepDuration int
	PauseHigh    int
	PauseLow     int
}

// ComputeBlinkTiming fits a ramp up and down into flashOnMs. When the
// on-phase is too short for the default step duration, steps are shortened
// and there is no pause at full brightness. The off-phase is never adjusted.
func ComputeBlinkTiming(flashOnMs, flashOffMs int32) BlinkTiming {
	stepDuration := RampStepDuration
	pauseHigh := int(flashOnMs) - stepDuration*RampSteps*2

	if pauseHigh < 0 {
		stepDuration = int(flashOnMs) / (RampSteps * 2)
		pauseHigh = 0
	}

	return BlinkTiming{
		StepDuration: stepDuration,
		PauseHigh:    pauseHigh,
		PauseLow:     int(flashOffMs),
	}
}
