package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBoard(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadBoard(t *testing.T) {
	path := writeBoard(t, `
root = "/tmp/leds"

[channels]
white = "rgb:white"
red = "rgb:red"
`)
	board, err := LoadBoard(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/leds", board.Root)
	assert.Equal(t, map[string]string{"white": "rgb:white", "red": "rgb:red"}, board.Channels)
}

func TestLoadBoard_Empty(t *testing.T) {
	board, err := LoadBoard("")
	require.NoError(t, err)
	assert.Empty(t, board.Root)
	assert.Empty(t, board.Channels)
}

func TestLoadBoard_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "root = "},
		{"unknown channel", "[channels]\nkeyboard = \"kbd\"\n"},
		{"empty directory", "[channels]\nred = \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBoard(writeBoard(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := LoadBoard(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
