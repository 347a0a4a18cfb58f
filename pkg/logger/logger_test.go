package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewReopenableWriteSyncer(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("creates missing directories", func(t *testing.T) {
		logFilePath := filepath.Join(tempDir, "nested", "monitor.log")
		ws, err := NewReopenableWriteSyncer(logFilePath)
		require.NoError(t, err)
		defer ws.Close()
		_, err = os.Stat(logFilePath)
		assert.NoError(t, err)
	})
	t.Run("path is a directory", func(t *testing.T) {
		ws, err := NewReopenableWriteSyncer(tempDir)
		assert.Error(t, err)
		assert.Nil(t, ws)
	})
}

func TestReopenableWriteSyncer_WriteAndReload(t *testing.T) {
	tempDir := t.TempDir()
	logFilePath := filepath.Join(tempDir, "monitor.log")
	rotatedLogFilePath := filepath.Join(tempDir, "monitor.log.1")

	ws, err := NewReopenableWriteSyncer(logFilePath)
	require.NoError(t, err)
	defer ws.Close()

	_, err = ws.Write([]byte("before rotation\n"))
	require.NoError(t, err)
	require.NoError(t, os.Rename(logFilePath, rotatedLogFilePath))
	require.NoError(t, ws.Reload())
	_, err = ws.Write([]byte("after rotation\n"))
	require.NoError(t, err)
	require.NoError(t, ws.Sync())

	rotated, err := os.ReadFile(rotatedLogFilePath)
	require.NoError(t, err)
	assert.Equal(t, "before rotation\n", string(rotated))

	current, err := os.ReadFile(logFilePath)
	require.NoError(t, err)
	assert.Equal(t, "after rotation\n", string(current))
}

func TestNewFileSyncer(t *testing.T) {
	tempDir := t.TempDir()
	testCases := []struct {
		name         string
		rotation     string
		expectReload bool
	}{
		{name: "external rotation reopens on reload", rotation: RotationExternal, expectReload: true},
		{name: "internal rotation uses lumberjack", rotation: RotationInternal, expectReload: false},
		{name: "unknown mode falls back to external", rotation: "", expectReload: true},
	}
	for i, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			file := filepath.Join(tempDir, "syncer", string(rune('a'+i))+".log")
			ws, reload, err := NewFileSyncer(file, tc.rotation, RotationConfig{MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1})
			require.NoError(t, err)
			require.NotNil(t, ws)
			assert.Equal(t, tc.expectReload, reload != nil)
			_, err = ws.Write([]byte("line\n"))
			assert.NoError(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	ws, err := NewReopenableWriteSyncer(filepath.Join(t.TempDir(), "monitor.log"))
	require.NoError(t, err)
	defer ws.Close()

	testCases := []struct {
		name          string
		logLevel      string
		enabledLevel  zapcore.Level
		disabledLevel zapcore.Level
	}{
		{"debug level", "debug", zap.DebugLevel, zap.DebugLevel - 1},
		{"info level", "info", zap.InfoLevel, zap.DebugLevel},
		{"upper case level", "WARN", zap.WarnLevel, zap.InfoLevel},
		{"error level", "error", zap.ErrorLevel, zap.WarnLevel},
		{"invalid level", "verbose", zap.InfoLevel, zap.DebugLevel},
		{"empty level", "", zap.InfoLevel, zap.DebugLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger := NewLogger(tc.logLevel, ws)
			require.NotNil(t, logger)
			assert.True(t, logger.Core().Enabled(tc.enabledLevel))
			assert.False(t, logger.Core().Enabled(tc.disabledLevel))
		})
	}
}
