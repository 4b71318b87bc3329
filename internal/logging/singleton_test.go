package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureReplacesLogger(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	Configure(DefaultConfig(LevelInfo, first))
	logger := GetLogger()
	assert.Same(t, logger, GetLogger())
	logger.Info("to the first file")

	Configure(DefaultConfig(LevelInfo, second))
	t.Cleanup(func() { Configure(nil) })

	replaced := GetLogger()
	assert.NotSame(t, logger, replaced)
	replaced.Info("to the second file")

	data, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to the second file")
	assert.NotContains(t, string(data), "to the first file")
}

func TestGetLoggerWithoutConfigurePanics(t *testing.T) {
	Configure(nil)
	assert.Panics(t, func() { GetLogger() })
}
