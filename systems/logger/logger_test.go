package logger

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-home-io/imager/providers"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests loading log level.
func TestLogLevel(t *testing.T) {
	in := []struct {
		In       string
		Expected logrus.Level
	}{
		{"warning", logrus.WarnLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"err", logrus.ErrorLevel},
		{"debug", logrus.DebugLevel},
		{"DBG", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"incorrect", logrus.InfoLevel},
	}

	for _, v := range in {
		assert.Equal(t, v.Expected, getLogLevel(v.In), v.In)
	}
}

// Tests writing into a rotated file.
func TestFileLogger(t *testing.T) {
	dir, err := ioutil.TempDir("", "imager-log")
	require.NoError(t, err)
	defer os.RemoveAll(dir) // nolint: errcheck

	file := filepath.Join(dir, "imager.log")
	l := NewLoggerProvider(&providers.LoggerSettings{
		Level:     "debug",
		Format:    "json",
		File:      file,
		MaxSizeMB: 1,
	})

	l.Debug("debug message", "guid", "NVIMGNYV")
	l.Error("error message", errors.New("boom"))
	l.Flush()

	data, err := ioutil.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"debug message"`)
	assert.Contains(t, string(data), `"guid":"NVIMGNYV"`)
	assert.Contains(t, string(data), `"error":"boom"`)
}

// Tests that messages below configured level are dropped.
func TestLevelFilter(t *testing.T) {
	dir, err := ioutil.TempDir("", "imager-log")
	require.NoError(t, err)
	defer os.RemoveAll(dir) // nolint: errcheck

	file := filepath.Join(dir, "imager.log")
	l := NewLoggerProvider(&providers.LoggerSettings{
		Level: "warn",
		File:  file,
	})

	l.Info("info message")
	l.Warn("warn message")
	l.Flush()

	data, err := ioutil.ReadFile(file)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "info message")
	assert.Contains(t, string(data), "warn message")
}
