package utils

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tests build date truncation and fallback.
func TestGetBuildDate(t *testing.T) {
	defer func(old string) { BuildDate = old }(BuildDate)

	BuildDate = ""
	assert.Equal(t, "unknown", GetBuildDate())

	BuildDate = "2018-09-01T10:00:00Z"
	assert.Equal(t, BuildDate, GetBuildDate())

	BuildDate = strings.Repeat("x", MaxBuildDateLength+10)
	assert.Len(t, GetBuildDate(), MaxBuildDateLength)
}

// Tests config dir override.
func TestGetDefaultConfigsDir(t *testing.T) {
	defer func() { ConfigDir = "" }()

	assert.Equal(t, fmt.Sprintf("%s/configs", GetCurrentWorkingDir()), GetDefaultConfigsDir())

	ConfigDir = "/etc/imager"
	assert.Equal(t, "/etc/imager", GetDefaultConfigsDir())
}
