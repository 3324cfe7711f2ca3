//go:generate enumer -type=Parameter -transform=snake -trimprefix=Param

package enums

// Parameter describes enum with known imager parameters.
type Parameter int

const (
	// ParamSensorExposure describes sensor exposure time in seconds.
	ParamSensorExposure Parameter = iota
	// ParamSensorGain describes sensor analog gain.
	ParamSensorGain
	// ParamSensorFrameRate describes sensor frame rate.
	ParamSensorFrameRate
	// ParamMaxSensorFrameRate describes upper frame rate bound used by auto exposure.
	ParamMaxSensorFrameRate
	// ParamSensorInputClock describes sensor input clock.
	ParamSensorInputClock
	// ParamFocuserLocus describes focuser position.
	ParamFocuserLocus
	// ParamFlashCapabilities describes flash capabilities record.
	ParamFlashCapabilities
	// ParamFlashLevel describes flash level.
	ParamFlashLevel
	// ParamFlashPinState describes flash pin state.
	ParamFlashPinState
	// ParamTorchCapabilities describes torch capabilities record.
	ParamTorchCapabilities
	// ParamTorchLevel describes torch level.
	ParamTorchLevel
	// ParamFocalLength describes lens focal length.
	ParamFocalLength
	// ParamMaxAperture describes lens maximum aperture.
	ParamMaxAperture
	// ParamFNumber describes lens f-number.
	ParamFNumber
	// ParamSensorExposureLimits describes min/max exposure pair.
	ParamSensorExposureLimits
	// ParamSensorGainLimits describes min/max gain pair.
	ParamSensorGainLimits
	// ParamSensorFrameRateLimits describes min/max frame rate pair.
	ParamSensorFrameRateLimits
	// ParamSensorFrameRateLimitsAtResolution describes frame rate limits for a resolution.
	ParamSensorFrameRateLimitsAtResolution
	// ParamSensorClockLimits describes min/max input clock pair.
	ParamSensorClockLimits
	// ParamSensorExposureLatchTime describes exposure latch time in frames.
	ParamSensorExposureLatchTime
	// ParamRegionUsedByCurrentResolution describes sensor region used by current mode.
	ParamRegionUsedByCurrentResolution
	// ParamCalibrationData describes calibration data.
	ParamCalibrationData
	// ParamCommonCalibrationData describes common calibration data.
	ParamCommonCalibrationData
	// ParamIsp1CalibrationData describes calibration data for the first ISP.
	ParamIsp1CalibrationData
	// ParamIsp2CalibrationData describes calibration data for the second ISP.
	ParamIsp2CalibrationData
	// ParamCalibrationOverrides describes calibration overrides.
	ParamCalibrationOverrides
	// ParamSelfTest describes self test request.
	ParamSelfTest
	// ParamDeviceStatus describes device status.
	ParamDeviceStatus
	// ParamTestMode describes test mode switch.
	ParamTestMode
	// ParamExpectedValues describes expected values for test mode.
	ParamExpectedValues
	// ParamReset describes device reset request.
	ParamReset
	// ParamOptimizeResolutionChange describes resolution change optimisation switch.
	ParamOptimizeResolutionChange
	// ParamDetectedColorTemperature describes detected color temperature.
	ParamDetectedColorTemperature
	// ParamLinesPerSecond describes sensor read out lines per second.
	ParamLinesPerSecond
	// ParamFocuserCapabilities describes focuser capabilities record.
	ParamFocuserCapabilities
	// ParamCustomizedBlockInfo describes customized block info.
	ParamCustomizedBlockInfo
	// ParamStereoCapable describes stereo capability flag.
	ParamStereoCapable
	// ParamFocuserStereo describes stereo focuser mode.
	ParamFocuserStereo
	// ParamStereoCameraMode describes stereo camera mode.
	ParamStereoCameraMode
	// ParamSensorInherentGainAtResolution describes inherent gain at resolution.
	ParamSensorInherentGainAtResolution
	// ParamHorizontalViewAngle describes horizontal view angle.
	ParamHorizontalViewAngle
	// ParamVerticalViewAngle describes vertical view angle.
	ParamVerticalViewAngle
	// ParamISPSetting describes ISP setting pass-through.
	ParamISPSetting
	// ParamOperationalMode describes operational mode.
	ParamOperationalMode
	// ParamSensorIspSupport describes on-sensor ISP support flag.
	ParamSensorIspSupport
	// ParamAWBLock describes auto white balance lock.
	ParamAWBLock
	// ParamAELock describes auto exposure lock.
	ParamAELock
	// ParamSensorResChangeWaitTime describes resolution change wait time.
	ParamSensorResChangeWaitTime
	// ParamModuleCalibrationDataOTP describes module calibration data from OTP.
	ParamModuleCalibrationDataOTP
	// ParamModuleCalibrationDataEEPROM describes module calibration data from EEPROM.
	ParamModuleCalibrationDataEEPROM
	// ParamDeviceCalibrationData describes device calibration data.
	ParamDeviceCalibrationData
	// ParamFactoryCalibrationData describes factory calibration data.
	ParamFactoryCalibrationData
	// ParamFuseID describes sensor fuse id.
	ParamFuseID
	// ParamSensorGroupHold describes group hold register update.
	ParamSensorGroupHold
	// ParamSensorActiveRegionReadOutTime describes active region read out time.
	ParamSensorActiveRegionReadOutTime
	// ParamGetBestSensorMode describes best sensor mode query.
	ParamGetBestSensorMode
	// ParamFlashTorchQuery describes flash and torch query.
	ParamFlashTorchQuery
	// ParamImagerBuildDate describes build date of the imager library.
	ParamImagerBuildDate
	// ParamSensorHDRRatio describes HDR exposure ratio.
	ParamSensorHDRRatio
	// ParamSensorIsHDRSensor describes HDR sensor flag.
	ParamSensorIsHDRSensor
	// ParamSensorHDREnable describes HDR enable switch.
	ParamSensorHDREnable
	// ParamIspPublicControls describes public ISP controls.
	ParamIspPublicControls
)

// FocuserParameters contains parameters owned by a focuser.
var FocuserParameters = []Parameter{
	ParamFocuserLocus,
	ParamFocalLength,
	ParamMaxAperture,
	ParamFNumber,
	ParamFocuserCapabilities,
	ParamFocuserStereo,
}

// FlashParameters contains parameters owned by a flash.
var FlashParameters = []Parameter{
	ParamFlashTorchQuery,
	ParamFlashCapabilities,
	ParamFlashLevel,
	ParamTorchCapabilities,
	ParamTorchLevel,
	ParamFlashPinState,
}

// SliceContainsParameter checks whether slice contains certain parameter.
func SliceContainsParameter(s []Parameter, e Parameter) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}
	return false
}

// Subdevice returns the class of the sub-device owning the parameter.
// Anything not claimed by a focuser or a flash belongs to the sensor.
func (i Parameter) Subdevice() DeviceClass {
	switch {
	case SliceContainsParameter(FocuserParameters, i):
		return ClassFocuser
	case SliceContainsParameter(FlashParameters, i):
		return ClassFlash
	default:
		return ClassSensor
	}
}

// IsGlobal checks whether parameter is answered without any sub-device.
func (i Parameter) IsGlobal() bool {
	return i == ParamImagerBuildDate
}
