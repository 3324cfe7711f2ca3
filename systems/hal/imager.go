package hal

import (
	"github.com/go-home-io/imager/plugins/common"
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/plugins/imager/enums"
	"github.com/go-home-io/imager/providers"
	"github.com/go-home-io/imager/systems"
	"github.com/go-home-io/imager/utils"
	"github.com/pkg/errors"
)

// Imager owns one opened sensor and at most one focuser and one flash.
// Not safe for concurrent use.
type Imager struct {
	logger common.ILoggerProvider

	sensor  imager.ISensor
	focuser imager.ISubdevice
	flash   imager.ISubdevice

	sensorGUID  imager.GUID
	focuserGUID imager.GUID
	flashGUID   imager.GUID

	closed bool
}

// ReleaseAll closes every imager. Nil entries are skipped.
func ReleaseAll(imagers ...providers.IImager) {
	for _, v := range imagers {
		if nil != v {
			v.Close()
		}
	}
}

// Close closes sub-devices in reverse open order.
// Safe to call on nil or already closed imager.
func (i *Imager) Close() {
	if nil == i || i.closed {
		return
	}

	i.closed = true
	if nil != i.flash {
		i.flash.Close()
		i.flash = nil
	}

	if nil != i.focuser {
		i.focuser.Close()
		i.focuser = nil
	}

	if nil != i.sensor {
		i.sensor.Close()
		i.sensor = nil
	}

	i.logger.Debug("Imager is closed", common.LogSystemToken, systems.SysImager.String(),
		common.LogSensorToken, i.sensorGUID.String())
}

// SensorGUID returns GUID of the opened sensor.
func (i *Imager) SensorGUID() imager.GUID {
	return i.sensorGUID
}

// FocuserGUID returns GUID assigned to the focuser, 0 if there is none.
func (i *Imager) FocuserGUID() imager.GUID {
	return i.focuserGUID
}

// FlashGUID returns GUID assigned to the flash, 0 if there is none.
func (i *Imager) FlashGUID() imager.GUID {
	return i.flashGUID
}

// HasFocuser checks whether focuser is attached.
func (i *Imager) HasFocuser() bool {
	return nil != i.focuser
}

// HasFlash checks whether flash is attached.
func (i *Imager) HasFlash() bool {
	return nil != i.flash
}

// SetParameter routes value to the sub-device owning the parameter.
func (i *Imager) SetParameter(param enums.Parameter, value interface{}) error {
	dev, err := i.route(param)
	if err != nil {
		return err
	}

	return dev.SetParameter(param, value)
}

// GetParameter routes destination pointer to the sub-device owning the parameter.
// Build date is answered without touching any sub-device.
func (i *Imager) GetParameter(param enums.Parameter, value interface{}) error {
	if param.IsGlobal() {
		return getGlobal(param, value)
	}

	dev, err := i.route(param)
	if err != nil {
		return err
	}

	return dev.GetParameter(param, value)
}

// SetPowerLevel applies power level to sensor, focuser and flash.
// Stops on the first failure.
func (i *Imager) SetPowerLevel(level enums.PowerLevel) error {
	sensor, err := i.mustSensor()
	if err != nil {
		return err
	}

	if err := sensor.SetPowerLevel(level); err != nil {
		return errors.Wrap(err, "sensor power")
	}

	if nil != i.focuser {
		if err := i.focuser.SetPowerLevel(level); err != nil {
			return errors.Wrap(err, "focuser power")
		}
	}

	if nil != i.flash {
		if err := i.flash.SetPowerLevel(level); err != nil {
			return errors.Wrap(err, "flash power")
		}
	}

	return nil
}

// GetPowerLevel returns sensor power level.
func (i *Imager) GetPowerLevel() enums.PowerLevel {
	sensor, err := i.mustSensor()
	if err != nil {
		return enums.PowerOff
	}

	return sensor.GetPowerLevel()
}

// ListSensorModes returns modes supported by the sensor.
func (i *Imager) ListSensorModes() []imager.SensorMode {
	sensor, err := i.mustSensor()
	if err != nil {
		return nil
	}

	return sensor.ListModes()
}

// SetSensorMode switches sensor mode.
// Returns selected mode and actually applied parameters.
func (i *Imager) SetSensorMode(params *imager.SetModeParameters) (*imager.SensorMode, *imager.SetModeParameters, error) {
	sensor, err := i.mustSensor()
	if err != nil {
		return nil, nil, err
	}

	return sensor.SetMode(params)
}

// ISPStaticQuery passes static ISP query to the sensor.
func (i *Imager) ISPStaticQuery(data interface{}) error {
	isp, err := i.isp("isp static query")
	if err != nil {
		return err
	}

	return isp.ISPStaticQuery(data)
}

// ISPControlQuery passes ISP control query to the sensor.
func (i *Imager) ISPControlQuery(data interface{}) error {
	isp, err := i.isp("isp control query")
	if err != nil {
		return err
	}

	return isp.ISPControlQuery(data)
}

// ISPDynamicQuery passes dynamic ISP query to the sensor.
func (i *Imager) ISPDynamicQuery(data interface{}) error {
	isp, err := i.isp("isp dynamic query")
	if err != nil {
		return err
	}

	return isp.ISPDynamicQuery(data)
}

// GetCapabilities aggregates sensor, focuser and flash capabilities.
// Returns nil for a closed imager.
func (i *Imager) GetCapabilities() *imager.Capabilities {
	sensor, err := i.mustSensor()
	if err != nil {
		return nil
	}

	caps := &imager.Capabilities{}
	sensor.GetCapabilities(caps)
	if caps.CapabilitiesEnd != imager.CapabilitiesEnd {
		i.logger.Warn("Sensor capabilities record is out of date", common.LogSystemToken,
			systems.SysSensor.String(), common.LogSensorToken, i.sensorGUID.String())
	}

	if nil != i.focuser {
		i.focuser.GetCapabilities(caps)
	} else {
		caps.FocuserGUID = 0
	}

	if nil != i.flash {
		i.flash.GetCapabilities(caps)
	} else {
		caps.FlashGUID = 0
	}

	return caps
}

// StaticProperties aggregates properties which don't change while imager is opened.
func (i *Imager) StaticProperties() (*imager.StaticProperties, error) {
	sensor, err := i.mustSensor()
	if err != nil {
		return nil, err
	}

	props := &imager.StaticProperties{}
	if err := sensor.StaticQuery(props); err != nil {
		return nil, errors.Wrap(err, "sensor static query")
	}

	if nil == props.SensorModes {
		props.SensorModes = sensor.ListModes()
	}

	props.FocuserAvailable = nil != i.focuser
	if q, ok := i.focuser.(imager.IStaticQuerier); ok {
		if err := q.StaticQuery(props); err != nil {
			return nil, errors.Wrap(err, "focuser static query")
		}
	}

	props.FlashAvailable = nil != i.flash
	if q, ok := i.flash.(imager.IStaticQuerier); ok {
		if err := q.StaticQuery(props); err != nil {
			return nil, errors.Wrap(err, "flash static query")
		}
	}

	return props, nil
}

// Picks sub-device owning the parameter.
func (i *Imager) route(param enums.Parameter) (imager.ISubdevice, error) {
	sensor, err := i.mustSensor()
	if err != nil {
		return nil, err
	}

	class := param.Subdevice()
	switch class {
	case enums.ClassFocuser:
		if nil == i.focuser {
			return nil, &ErrSubdeviceAbsent{Class: class, Param: param}
		}
		return i.focuser, nil
	case enums.ClassFlash:
		if nil == i.flash {
			return nil, &ErrSubdeviceAbsent{Class: class, Param: param}
		}
		return i.flash, nil
	}

	return sensor, nil
}

// Returns sensor with ISP support.
func (i *Imager) isp(operation string) (imager.IISPSensor, error) {
	sensor, err := i.mustSensor()
	if err != nil {
		return nil, err
	}

	isp, ok := sensor.(imager.IISPSensor)
	if !ok {
		return nil, &ErrNotSupported{Operation: operation}
	}

	return isp, nil
}

// Returns sensor of an opened imager.
func (i *Imager) mustSensor() (imager.ISensor, error) {
	if nil == i || i.closed {
		return nil, &ErrImagerClosed{}
	}

	if nil == i.sensor {
		panic("opened imager has no sensor")
	}

	return i.sensor, nil
}

// Answers parameters which belong to the imager itself.
func getGlobal(param enums.Parameter, value interface{}) error {
	dst, ok := value.(*string)
	if !ok || nil == dst {
		return &ErrParameterSize{Param: param, Value: value}
	}

	*dst = utils.GetBuildDate()
	return nil
}
