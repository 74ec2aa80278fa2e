package lights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChannelType(t *testing.T) {
	tests := []struct {
		in   string
		want ChannelType
	}{
		{"attention", Attention},
		{"Notifications", Notifications},
		{" battery ", Battery},
		{"BACKLIGHT", Backlight},
		{"buttons", Buttons},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseChannelType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}

	_, err := ParseChannelType("keyboard")
	assert.Error(t, err)
}

func mustParse(t *testing.T, s string) ChannelType {
	t.Helper()
	ct, err := ParseChannelType(s)
	require.NoError(t, err)
	return ct
}

func TestParseFlashMode(t *testing.T) {
	m, err := ParseFlashMode("")
	require.NoError(t, err)
	assert.Equal(t, FlashNone, m)

	m, err = ParseFlashMode("Timed")
	require.NoError(t, err)
	assert.Equal(t, FlashTimed, m)

	m, err = ParseFlashMode("hardware")
	require.NoError(t, err)
	assert.Equal(t, FlashHardware, m)

	_, err = ParseFlashMode("strobe")
	assert.Error(t, err)
}

func TestParseBrightnessMode(t *testing.T) {
	for _, m := range []BrightnessMode{BrightnessUser, BrightnessSensor, BrightnessLowPersistence} {
		got, err := ParseBrightnessMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseBrightnessMode("auto")
	assert.Error(t, err)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "not_supported", NotSupported.String())
	assert.Equal(t, "channel(42)", ChannelType(42).String())
}
