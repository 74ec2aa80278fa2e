package sysfs

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/scheerer/lightsd/internal/led"
	"github.com/scheerer/lightsd/internal/logging"
)

const DefaultRoot = "/sys/class/leds"

var logger = logging.New("sysfs")

// FaultFunc is told about every absorbed read or write failure.
type FaultFunc func(op, channel, attr string, err error)

// Sink implements led.Sink over the Linux LED class. Every channel id maps
// to a directory below root holding one file per attribute.
type Sink struct {
	root     string
	channels map[string]string
	onFault  FaultFunc
}

var _ led.Sink = (*Sink)(nil)

type Option func(*Sink)

func WithFaultHandler(fn FaultFunc) Option {
	return func(s *Sink) {
		s.onFault = fn
	}
}

// New returns a sink rooted at root. channels maps channel ids to directory
// names; ids missing from it use the id itself.
func New(root string, channels map[string]string, opts ...Option) *Sink {
	if root == "" {
		root = DefaultRoot
	}
	s := &Sink{
		root:     root,
		channels: make(map[string]string, len(led.HardwareChannels)),
	}
	for _, id := range led.HardwareChannels {
		s.channels[id] = id
	}
	for id, dir := range channels {
		s.channels[id] = dir
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the attribute file for channel, or false if channel is not
// mapped.
func (s *Sink) Path(channel, attr string) (string, bool) {
	dir, ok := s.channels[channel]
	if !ok {
		return "", false
	}
	return filepath.Join(s.root, dir, attr), true
}

func (s *Sink) Write(channel, attr, value string) {
	path, ok := s.Path(channel, attr)
	if !ok {
		s.fault("write", channel, attr, errUnknownChannel)
		return
	}

	if err := os.WriteFile(path, []byte(value), 0644); err != nil {
		logger.With(zap.String("path", path), zap.String("value", value), zap.Error(err)).Debug("Failed to write attribute")
		s.fault("write", channel, attr, err)
	}
}

func (s *Sink) ReadInt(channel, attr string) int {
	path, ok := s.Path(channel, attr)
	if !ok {
		s.fault("read", channel, attr, errUnknownChannel)
		return 0
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.With(zap.String("path", path), zap.Error(err)).Debug("Failed to read attribute")
		s.fault("read", channel, attr, err)
		return 0
	}

	value, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		logger.With(zap.String("path", path), zap.Error(err)).Debug("Failed to parse attribute")
		s.fault("read", channel, attr, err)
		return 0
	}
	return value
}

func (s *Sink) fault(op, channel, attr string, err error) {
	if err == errUnknownChannel {
		logger.With(zap.String("channel", channel), zap.String("attr", attr)).Debug("Unknown LED channel")
	}
	if s.onFault != nil {
		s.onFault(op, channel, attr, err)
	}
}
