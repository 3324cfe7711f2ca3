// Package logger provides logrus based logger implementation.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/go-home-io/imager/plugins/common"
	"github.com/go-home-io/imager/providers"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger provider implementation.
type provider struct {
	logger *logrus.Logger
	file   *lumberjack.Logger
}

// NewLoggerProvider constructs a new logger.
// Writes to stdout unless file is configured, rotated files are handled by lumberjack.
func NewLoggerProvider(settings *providers.LoggerSettings) providers.ISystemLoggerProvider {
	prov := &provider{
		logger: logrus.New(),
	}

	var out io.Writer = os.Stdout
	if "" != settings.File {
		prov.file = &lumberjack.Logger{
			Filename:   settings.File,
			MaxSize:    settings.MaxSizeMB,
			MaxBackups: settings.MaxBackups,
			MaxAge:     settings.MaxAgeDays,
			Compress:   settings.Compress,
		}

		out = prov.file
		if settings.Console {
			out = io.MultiWriter(os.Stdout, prov.file)
		}
	}

	prov.logger.Out = out
	prov.logger.Level = getLogLevel(settings.Level)
	if "json" == settings.Format {
		prov.logger.Formatter = &logrus.JSONFormatter{}
	} else {
		prov.logger.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	}

	return prov
}

// Debug sends debug level message.
func (p *provider) Debug(msg string, fields ...string) {
	p.logger.WithFields(withFields(fields...)).Debug(msg)
}

// Info sends info level message.
func (p *provider) Info(msg string, fields ...string) {
	p.logger.WithFields(withFields(fields...)).Info(msg)
}

// Warn sends warning level message.
func (p *provider) Warn(msg string, fields ...string) {
	p.logger.WithFields(withFields(fields...)).Warn(msg)
}

// Error sends error level message.
func (p *provider) Error(msg string, err error, fields ...string) {
	p.logger.WithFields(withFields(appendError(fields, err)...)).Error(msg)
}

// Fatal sends fatal level message and exits.
func (p *provider) Fatal(msg string, err error, fields ...string) {
	p.logger.WithFields(withFields(appendError(fields, err)...)).Fatal(msg)
}

// Flush closes log file if any.
func (p *provider) Flush() {
	if nil != p.file {
		p.file.Close() // nolint: errcheck, gosec
	}
}

// Converts configured level into logrus level.
func getLogLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "warning", "warn":
		return logrus.WarnLevel
	case "error", "err":
		return logrus.ErrorLevel
	case "debug", "dbg":
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

// Helper method to convert key/value pairs into logrus fields.
// Odd trailing key is dropped.
func withFields(fields ...string) logrus.Fields {
	fLen := len(fields)
	result := make(logrus.Fields, int(fLen/2))
	for ii := 0; ii+1 < fLen; ii += 2 {
		result[fields[ii]] = fields[ii+1]
	}

	return result
}

func appendError(fields []string, err error) []string {
	if nil == err {
		return fields
	}

	return append(fields, common.LogErrorToken, err.Error())
}
