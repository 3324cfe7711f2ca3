package providers

import "github.com/go-home-io/imager/plugins/common"

// ISystemLoggerProvider defines root logger which owns its output.
type ISystemLoggerProvider interface {
	common.ILoggerProvider
	Flush()
}

// LoggerSettings has configured data for the system logger.
type LoggerSettings struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" validate:"oneof=text json" default:"text"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"maxSizeMb" validate:"gte=0" default:"10"`
	MaxBackups int    `yaml:"maxBackups" validate:"gte=0" default:"3"`
	MaxAgeDays int    `yaml:"maxAgeDays" validate:"gte=0" default:"28"`
	Compress   bool   `yaml:"compress"`
}
