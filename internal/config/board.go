package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/scheerer/lightsd/internal/led"
)

// Board describes where the LED class directories live on a device.
//
//	root = "/sys/class/leds"
//	[channels]
//	white = "white"
//	red = "red"
type Board struct {
	Root     string            `toml:"root"`
	Channels map[string]string `toml:"channels"`
}

// LoadBoard reads a board file. An empty path yields the built-in layout.
func LoadBoard(path string) (Board, error) {
	var board Board
	if path == "" {
		return board, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return board, fmt.Errorf("failed to read board file: %w", err)
	}

	if err := toml.Unmarshal(data, &board); err != nil {
		return board, fmt.Errorf("failed to parse board file %s: %w", path, err)
	}

	if err := board.Validate(); err != nil {
		return board, fmt.Errorf("invalid board file %s: %w", path, err)
	}
	return board, nil
}

func (b Board) Validate() error {
	for id, dir := range b.Channels {
		if !slices.Contains(led.HardwareChannels, id) {
			return fmt.Errorf("unknown channel %q (known: %v)", id, led.HardwareChannels)
		}
		if dir == "" {
			return fmt.Errorf("channel %q has an empty directory", id)
		}
	}
	return nil
}
