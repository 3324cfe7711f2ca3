package server

import (
	"reflect"

	"github.com/go-home-io/imager/plugins/imager/enums"
)

// Destination constructors for readable parameters.
// Parameters with driver-private payloads are not listed.
var readableParameters = map[enums.Parameter]func() interface{}{
	enums.ParamSensorExposure:          func() interface{} { return new(float32) },
	enums.ParamSensorGain:              func() interface{} { return new([4]float32) },
	enums.ParamSensorFrameRate:         func() interface{} { return new(float32) },
	enums.ParamMaxSensorFrameRate:      func() interface{} { return new(float32) },
	enums.ParamSensorInputClock:        func() interface{} { return new(uint32) },
	enums.ParamFocuserLocus:            func() interface{} { return new(int32) },
	enums.ParamFlashLevel:              func() interface{} { return new(float32) },
	enums.ParamTorchLevel:              func() interface{} { return new(float32) },
	enums.ParamFocalLength:             func() interface{} { return new(float32) },
	enums.ParamMaxAperture:             func() interface{} { return new(float32) },
	enums.ParamFNumber:                 func() interface{} { return new(float32) },
	enums.ParamSensorExposureLimits:    func() interface{} { return new([2]float32) },
	enums.ParamSensorGainLimits:        func() interface{} { return new([2]float32) },
	enums.ParamSensorFrameRateLimits:   func() interface{} { return new([2]float32) },
	enums.ParamSensorExposureLatchTime: func() interface{} { return new(uint32) },
	enums.ParamStereoCapable:           func() interface{} { return new(bool) },
	enums.ParamHorizontalViewAngle:     func() interface{} { return new(float32) },
	enums.ParamVerticalViewAngle:       func() interface{} { return new(float32) },
	enums.ParamSensorIspSupport:        func() interface{} { return new(bool) },
	enums.ParamImagerBuildDate:         func() interface{} { return new(string) },
	enums.ParamSensorIsHDRSensor:       func() interface{} { return new(bool) },
}

// Returns pointed value.
func deref(ptr interface{}) interface{} {
	return reflect.ValueOf(ptr).Elem().Interface()
}
