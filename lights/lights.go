package lights

import (
	"fmt"
	"strings"
)

// ChannelType identifies a logical light a caller can address.
type ChannelType int

const (
	Attention ChannelType = iota
	Notifications
	Battery
	Backlight
	Buttons
)

var channelTypeNames = map[ChannelType]string{
	Attention:     "attention",
	Notifications: "notifications",
	Battery:       "battery",
	Backlight:     "backlight",
	Buttons:       "buttons",
}

func (t ChannelType) String() string {
	if name, ok := channelTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("channel(%d)", int(t))
}

// ParseChannelType resolves a case-insensitive channel name.
func ParseChannelType(s string) (ChannelType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range channelTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown channel type %q", s)
}

type FlashMode int

const (
	FlashNone FlashMode = iota
	FlashTimed
	FlashHardware
)

func (m FlashMode) String() string {
	switch m {
	case FlashNone:
		return "none"
	case FlashTimed:
		return "timed"
	case FlashHardware:
		return "hardware"
	default:
		return fmt.Sprintf("flash(%d)", int(m))
	}
}

func ParseFlashMode(s string) (FlashMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return FlashNone, nil
	case "timed":
		return FlashTimed, nil
	case "hardware":
		return FlashHardware, nil
	default:
		return 0, fmt.Errorf("unknown flash mode %q", s)
	}
}

// BrightnessMode is accepted for completeness and never affects rendering.
type BrightnessMode int

const (
	BrightnessUser BrightnessMode = iota
	BrightnessSensor
	BrightnessLowPersistence
)

func (m BrightnessMode) String() string {
	switch m {
	case BrightnessUser:
		return "user"
	case BrightnessSensor:
		return "sensor"
	case BrightnessLowPersistence:
		return "low_persistence"
	default:
		return fmt.Sprintf("brightness(%d)", int(m))
	}
}

func ParseBrightnessMode(s string) (BrightnessMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "user":
		return BrightnessUser, nil
	case "sensor":
		return BrightnessSensor, nil
	case "low_persistence":
		return BrightnessLowPersistence, nil
	default:
		return 0, fmt.Errorf("unknown brightness mode %q", s)
	}
}

// LightState is a requested indicator state. Color is ARGB with alpha in the
// top 8 bits.
type LightState struct {
	Color          uint32
	FlashMode      FlashMode
	FlashOnMs      int32
	FlashOffMs     int32
	BrightnessMode BrightnessMode
}

type Status int

const (
	Success Status = iota
	NotSupported
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case NotSupported:
		return "not_supported"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

type LightService interface {
	SetLight(t ChannelType, state LightState) Status
	SupportedTypes() []ChannelType
}
