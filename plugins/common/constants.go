package common

const (
	// LogSystemToken describes system log entry.
	LogSystemToken = "system"
	// LogProviderToken describes provider log entry.
	LogProviderToken = "provider"
	// LogDeviceClassToken describes sub-device class log entry.
	LogDeviceClassToken = "class"
	// LogGUIDToken describes device GUID log entry.
	LogGUIDToken = "guid"
	// LogSensorToken describes sensor GUID log entry.
	LogSensorToken = "sensor"
	// LogFocuserToken describes focuser GUID log entry.
	LogFocuserToken = "focuser"
	// LogFlashToken describes flash GUID log entry.
	LogFlashToken = "flash"
	// LogParameterToken describes imager parameter log entry.
	LogParameterToken = "param"
	// LogPositionToken describes camera position log entry.
	LogPositionToken = "position"
	// LogPluginToken describes plugin name log entry.
	LogPluginToken = "plugin"
)

const (
	// LogErrorToken describes error log entry.
	LogErrorToken = "error"
	// LogFileToken describes file log entry.
	LogFileToken = "file"
	// LogFieldToken describes field log entry.
	LogFieldToken = "field"
	// LogURLToken describes URL log entry.
	LogURLToken = "url"
)
