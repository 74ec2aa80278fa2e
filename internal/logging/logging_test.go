package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestConfigure_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lightsd.log")
	require.NoError(t, Configure(Config{Level: "debug", File: path, MaxSizeMB: 1}))
	t.Cleanup(func() { _ = Configure(Config{}) })

	logger := New("file-test")
	logger.Debug("debug line")
	logger.Info("info line")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug line")
	assert.Contains(t, string(data), "info line")
	assert.Contains(t, string(data), "file-test")
}

func TestConfigure_InvalidLevel(t *testing.T) {
	assert.Error(t, Configure(Config{Level: "loud"}))
}

func TestConfigure_AppliesToExistingLoggers(t *testing.T) {
	_ = New("existing")
	require.NoError(t, Configure(Config{Level: "warn"}))
	t.Cleanup(func() { _ = Configure(Config{}) })

	assert.Equal(t, zapcore.WarnLevel, GetLeveler().GetLevel("existing"))
	assert.Equal(t, zapcore.WarnLevel, GetLeveler().GetLevel("never-created"))
}

func TestLeveler_SetLevel(t *testing.T) {
	_ = New("leveled")
	GetLeveler().SetLevel("leveled", zapcore.DebugLevel)
	assert.Equal(t, zapcore.DebugLevel, GetLeveler().GetLevel("leveled"))

	// creating the same name again keeps the override
	_ = New("leveled")
	assert.Equal(t, zapcore.DebugLevel, GetLeveler().GetLevel("leveled"))
}
