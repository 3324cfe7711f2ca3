package imager

import (
	"reflect"

	"github.com/go-home-io/imager/plugins/common"
	"github.com/go-home-io/imager/plugins/imager/enums"
)

// ISubdevice defines generic sub-device driver interface.
// Every sensor, focuser and flash driver implements it.
type ISubdevice interface {
	Open() error
	Close()
	GetCapabilities(*Capabilities)
	SetPowerLevel(enums.PowerLevel) error
	SetParameter(enums.Parameter, interface{}) error
	GetParameter(enums.Parameter, interface{}) error
}

// ISensor defines sensor driver interface.
type ISensor interface {
	ISubdevice
	IStaticQuerier
	ListModes() []SensorMode
	SetMode(*SetModeParameters) (*SensorMode, *SetModeParameters, error)
	GetPowerLevel() enums.PowerLevel
}

// IFocuser defines focuser driver interface.
type IFocuser interface {
	ISubdevice
}

// IFlash defines flash driver interface.
type IFlash interface {
	ISubdevice
}

// IStaticQuerier defines drivers which contribute to static properties.
// Sensors must implement it, focusers and flashes may.
type IStaticQuerier interface {
	StaticQuery(*StaticProperties) error
}

// IISPSensor defines sensors exposing ISP settings.
// Payload layout is private to the driver.
type IISPSensor interface {
	ISPStaticQuery(interface{}) error
	ISPControlQuery(interface{}) error
	ISPDynamicQuery(interface{}) error
}

// IExtensionLookup provides access to family extensions.
type IExtensionLookup interface {
	GetExtension(family uint32, minor uint32) (interface{}, error)
}

// InitDataSubdevice has data required for binding a sub-device driver.
type InitDataSubdevice struct {
	Logger     common.ILoggerProvider
	Class      enums.DeviceClass
	Extensions IExtensionLookup

	// Sensor is the already opened sensor of the same imager.
	// Nil while binding the sensor itself.
	Sensor ISensor

	// GUID is assigned after binding and is valid from Open.
	GUID GUID
}

// Factory binds a new sub-device driver.
type Factory func(*InitDataSubdevice) (ISubdevice, error)

// ExtensionFactory creates a family extension for the minor number.
type ExtensionFactory func(minor uint32) (interface{}, error)

// TypeFactory is a syntax sugar around Factory type.
var TypeFactory = reflect.TypeOf((*Factory)(nil)).Elem()

// TypeExtensionFactory is a syntax sugar around ExtensionFactory type.
var TypeExtensionFactory = reflect.TypeOf((*ExtensionFactory)(nil)).Elem()
