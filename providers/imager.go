// Package providers contains interfaces shared between imager HAL sub-systems.
package providers

import (
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/plugins/imager/enums"
)

// IImagerProvider defines imager composition logic.
type IImagerProvider interface {
	Open(guid imager.GUID) (IImager, error)
	OpenExpanded(sensor imager.GUID, focuser imager.GUID, flash imager.GUID, useDefaults bool) (IImager, error)
}

// IImager defines composed imager logic.
type IImager interface {
	Close()
	SensorGUID() imager.GUID
	FocuserGUID() imager.GUID
	FlashGUID() imager.GUID
	HasFocuser() bool
	HasFlash() bool

	SetParameter(param enums.Parameter, value interface{}) error
	GetParameter(param enums.Parameter, value interface{}) error
	SetPowerLevel(level enums.PowerLevel) error
	GetPowerLevel() enums.PowerLevel

	ListSensorModes() []imager.SensorMode
	SetSensorMode(*imager.SetModeParameters) (*imager.SensorMode, *imager.SetModeParameters, error)
	ISPStaticQuery(interface{}) error
	ISPControlQuery(interface{}) error
	ISPDynamicQuery(interface{}) error

	GetCapabilities() *imager.Capabilities
	StaticProperties() (*imager.StaticProperties, error)
}
