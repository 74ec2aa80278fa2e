package led

import "strconv"

// Hardware channel ids. A Sink maps these to device paths.
const (
	ChannelLCD     = "lcd-backlight"
	ChannelButton  = "button-backlight"
	ChannelButton1 = "button-backlight1"
	ChannelWhite   = "white"
	ChannelRed     = "red"
)

// Per-channel attribute names.
const (
	AttrBlink         = "blink"
	AttrBrightness    = "brightness"
	AttrMaxBrightness = "max_brightness"
	AttrDutyPcts      = "duty_pcts"
	AttrPauseHi       = "pause_hi"
	AttrPauseLo       = "pause_lo"
	AttrRampStepMs    = "ramp_step_ms"
	AttrStartIdx      = "start_idx"
)

// HardwareChannels lists every channel id the renderers touch.
var HardwareChannels = []string{ChannelLCD, ChannelButton, ChannelButton1, ChannelWhite, ChannelRed}

// Sink is the device attribute surface. Implementations absorb their own
// failures: writes are best effort and failed reads return 0.
type Sink interface {
	Write(channel, attr, value string)
	ReadInt(channel, attr string) int
}

func writeInt(s Sink, channel, attr string, value int) {
	s.Write(channel, attr, strconv.Itoa(value))
}
