package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, InitWith(tt.level, FileConfig{}, &buf))
			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			for _, s := range tt.expected {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.excluded {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWith("info", FileConfig{}, &buf))
	Info("evaluated", zap.String("result", "1+e12"))
	Sync()
	assert.Contains(t, buf.String(), "evaluated")
	assert.Contains(t, buf.String(), `"result": "1+e12"`)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gma.log")
	require.NoError(t, InitWith("info", DefaultFileConfig(path), nil))
	Info("to file")
	Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "to file")
}

func TestBadLevel(t *testing.T) {
	assert.Error(t, InitWith("loud", FileConfig{}, nil))
}

func TestDefaultFileConfig(t *testing.T) {
	fc := DefaultFileConfig("/tmp/gma.log")
	assert.Equal(t, FileConfig{Path: "/tmp/gma.log", MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 28, Compress: true}, fc)
}
