//go:generate enumer -type=DeviceClass -transform=kebab -trimprefix=Class -yaml

// Package enums contains enumerations and routing rules for imager drivers.
package enums

// DeviceClass describes enum with known imager sub-device classes.
// Identifiers are only meaningful together with a class.
type DeviceClass int

const (
	// ClassSensor describes image sensor class.
	ClassSensor DeviceClass = iota
	// ClassFocuser describes lens focuser class.
	ClassFocuser
	// ClassFlash describes flash or torch class.
	ClassFlash
)
