// Package common contains shared data available for all drivers.
package common

// ILoggerProvider defines logger provider which will be passed to every driver.
type ILoggerProvider interface {
	Debug(msg string, fields ...string)
	Info(msg string, fields ...string)
	Warn(msg string, fields ...string)
	Error(msg string, err error, fields ...string)
	Fatal(msg string, err error, fields ...string)
}

// ISettings describes interface used by every driver plugin settings object.
// After loading a plugin, the loader invokes internal validation and then calls this method.
type ISettings interface {
	Validate() error
}
