package hal

import (
	"fmt"

	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/plugins/imager/enums"
)

// ErrSensorNotFound defines sensor GUID absent from real and virtual tables.
type ErrSensorNotFound struct {
	GUID imager.GUID
}

// Error formats output.
func (e *ErrSensorNotFound) Error() string {
	return "sensor not found: " + e.GUID.String()
}

// ErrFocuserNotFound defines unknown focuser GUID.
type ErrFocuserNotFound struct {
	GUID imager.GUID
}

// Error formats output.
func (e *ErrFocuserNotFound) Error() string {
	return "focuser not found: " + e.GUID.String()
}

// ErrFlashNotFound defines unknown flash GUID.
type ErrFlashNotFound struct {
	GUID imager.GUID
}

// Error formats output.
func (e *ErrFlashNotFound) Error() string {
	return "flash not found: " + e.GUID.String()
}

// ErrBindFailed defines driver factory failure.
type ErrBindFailed struct {
	Class enums.DeviceClass
	GUID  imager.GUID
	Err   error
}

// Error formats output.
func (e *ErrBindFailed) Error() string {
	msg := fmt.Sprintf("failed to bind %s %s", e.Class.String(), e.GUID.String())
	if nil == e.Err {
		return msg
	}

	return msg + ": " + e.Err.Error()
}

// Cause returns the driver error.
func (e *ErrBindFailed) Cause() error {
	return e.Err
}

// ErrOpenFailed defines sub-device which failed to open.
type ErrOpenFailed struct {
	Class enums.DeviceClass
	GUID  imager.GUID
	Err   error
}

// Error formats output.
func (e *ErrOpenFailed) Error() string {
	return fmt.Sprintf("failed to open %s %s: %s", e.Class.String(), e.GUID.String(), e.Err.Error())
}

// Cause returns the driver error.
func (e *ErrOpenFailed) Cause() error {
	return e.Err
}

// ErrNoDevice defines factory which returned nothing.
type ErrNoDevice struct {
}

// Error formats output.
func (*ErrNoDevice) Error() string {
	return "driver returned no device"
}

// ErrNotSensor defines sensor factory returning something else.
type ErrNotSensor struct {
}

// Error formats output.
func (*ErrNotSensor) Error() string {
	return "driver doesn't implement sensor interface"
}

// ErrBindPanic defines driver factory panic.
type ErrBindPanic struct {
	Value interface{}
}

// Error formats output.
func (e *ErrBindPanic) Error() string {
	return fmt.Sprintf("driver panicked: %v", e.Value)
}

// ErrSubdeviceAbsent defines parameter routed to a missing sub-device.
type ErrSubdeviceAbsent struct {
	Class enums.DeviceClass
	Param enums.Parameter
}

// Error formats output.
func (e *ErrSubdeviceAbsent) Error() string {
	return fmt.Sprintf("%s is not attached, can't handle %s", e.Class.String(), e.Param.String())
}

// ErrParameterSize defines wrong destination for a parameter value.
type ErrParameterSize struct {
	Param enums.Parameter
	Value interface{}
}

// Error formats output.
func (e *ErrParameterSize) Error() string {
	return fmt.Sprintf("destination %T doesn't fit parameter %s", e.Value, e.Param.String())
}

// ErrNotSupported defines operation which sensor driver doesn't implement.
type ErrNotSupported struct {
	Operation string
}

// Error formats output.
func (e *ErrNotSupported) Error() string {
	return "operation is not supported by sensor: " + e.Operation
}

// ErrImagerClosed defines call to a closed imager.
type ErrImagerClosed struct {
}

// Error formats output.
func (*ErrImagerClosed) Error() string {
	return "imager is closed"
}
