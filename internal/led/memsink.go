package led

import (
	"fmt"
	"sync"
)

// AttrWrite is one recorded attribute write.
type AttrWrite struct {
	Channel string
	Attr    string
	Value   string
}

func (w AttrWrite) String() string {
	return fmt.Sprintf("%s/%s=%s", w.Channel, w.Attr, w.Value)
}

// MemorySink records writes in order and serves reads from a fixed table.
// Used for dry runs and tests.
type MemorySink struct {
	mu     sync.Mutex
	values map[string]int
	writes []AttrWrite
}

func NewMemorySink() *MemorySink {
	return &MemorySink{values: make(map[string]int)}
}

// SetValue sets the value ReadInt returns for channel/attr.
func (m *MemorySink) SetValue(channel, attr string, value int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[channel+"/"+attr] = value
}

func (m *MemorySink) Write(channel, attr, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = append(m.writes, AttrWrite{Channel: channel, Attr: attr, Value: value})
}

func (m *MemorySink) ReadInt(channel, attr string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[channel+"/"+attr]
}

// Writes returns the recorded writes.
func (m *MemorySink) Writes() []AttrWrite {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]AttrWrite, len(m.writes))
	copy(out, m.writes)
	return out
}

// Reset forgets recorded writes but keeps read values.
func (m *MemorySink) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = nil
}
