package utils

// ErrNoEntryPoint defines an absent Load method in a plugin.
type ErrNoEntryPoint struct {
}

// Error formats output.
func (*ErrNoEntryPoint) Error() string {
	return "entry point not found"
}

// ErrWrongSignature defines that Load method has wrong params.
type ErrWrongSignature struct {
}

// Error formats output.
func (*ErrWrongSignature) Error() string {
	return "wrong entry point signature"
}

// ErrWrongInterface defines unexpected type returned by plugin.
type ErrWrongInterface struct {
}

// Error formats output.
func (*ErrWrongInterface) Error() string {
	return "requested interface is not implemented"
}

// ErrWrongSettingsSignature defines unexpected interface implemented by plugin's settings object.
type ErrWrongSettingsSignature struct {
}

// Error formats output.
func (*ErrWrongSettingsSignature) Error() string {
	return "wrong settings signature"
}

// ErrInvalidConfig defines wrong configuration error.
type ErrInvalidConfig struct {
}

// Error formats output.
func (*ErrInvalidConfig) Error() string {
	return "config validation error"
}

// ErrPluginNotFound defines plugin which is neither on disk nor downloadable.
type ErrPluginNotFound struct {
	Name string
}

// Error formats output.
func (e *ErrPluginNotFound) Error() string {
	return "plugin not found: " + e.Name
}

// ErrCorruptedPlugin defines panic while opening a plugin.
type ErrCorruptedPlugin struct {
}

// Error formats output.
func (*ErrCorruptedPlugin) Error() string {
	return "plugin is corrupted"
}

// ErrDownload defines download through proxy error.
type ErrDownload struct {
}

// Error formats output.
func (*ErrDownload) Error() string {
	return "proxy download failed"
}
