//go:generate enumer -type=SystemType -transform=kebab -trimprefix=Sys

// Package systems contains imager HAL sub-systems.
package systems

// SystemType is an enum describing known system types.
type SystemType int

const (
	// SysImager describes imager HAL system.
	SysImager SystemType = iota
	// SysLogger describes logger system.
	SysLogger
	// SysSensor describes sensor drivers.
	SysSensor
	// SysFocuser describes focuser drivers.
	SysFocuser
	// SysFlash describes flash drivers.
	SysFlash
	// SysExtension describes family extension drivers.
	SysExtension
	// SysTopology describes board topology provider.
	SysTopology
	// SysPeripherals describes peripheral database provider.
	SysPeripherals
)
