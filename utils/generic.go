package utils

import (
	"fmt"
	"os"
)

// MaxBuildDateLength limits build date reported to callers.
const MaxBuildDateLength = 40

// Arch describes build architecture.
var Arch string

// Version describes build version.
var Version string

// BuildDate describes build timestamp, set with -ldflags.
var BuildDate string

// GetBuildDate returns build date truncated to MaxBuildDateLength.
func GetBuildDate() string {
	date := BuildDate
	if "" == date {
		date = "unknown"
	}

	if len(date) > MaxBuildDateLength {
		date = date[:MaxBuildDateLength]
	}

	return date
}

// GetCurrentWorkingDir returns application working directory.
func GetCurrentWorkingDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		panic("Failed to get current working dir")
	}

	return cwd
}

// GetDefaultConfigsDir returns default config directory which is cwd/configs.
func GetDefaultConfigsDir() string {
	if ConfigDir != "" {
		return ConfigDir
	}

	return fmt.Sprintf("%s/configs", GetCurrentWorkingDir())
}

// ConfigDir allows to re-write default config directory.
var ConfigDir = ""
