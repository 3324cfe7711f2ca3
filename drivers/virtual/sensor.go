package virtual

import (
	"strconv"
	"sync"

	"github.com/go-home-io/imager/plugins/common"
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/plugins/imager/enums"
)

// Sensor without hardware behind it.
// Accepts any resolution and keeps the last written values.
type nullSensor struct {
	sync.Mutex

	profile *profile
	logger  common.ILoggerProvider

	opened     bool
	power      enums.PowerLevel
	mode       imager.SensorMode
	stereoMode imager.StereoCameraMode

	exposure  float32
	gain      float32
	frameRate float32
	locus     int32
}

func newFactory(p *profile) imager.Factory {
	return func(data *imager.InitDataSubdevice) (imager.ISubdevice, error) {
		return &nullSensor{
			profile: p,
			logger:  data.Logger,
		}, nil
	}
}

// Open resets sensor state.
func (s *nullSensor) Open() error {
	s.Lock()
	defer s.Unlock()

	s.opened = true
	s.power = enums.PowerOff
	s.mode = defaultMode
	s.stereoMode = imager.StereoModeLeftOnly
	s.exposure, s.gain, s.frameRate, s.locus = 0, 0, 0, 0

	s.logger.Debug("Null sensor opened", common.LogSensorToken, s.profile.caps.Identifier)
	return nil
}

// Close marks sensor as closed.
func (s *nullSensor) Close() {
	s.Lock()
	defer s.Unlock()
	s.opened = false
}

// GetCapabilities copies sensor profile.
func (s *nullSensor) GetCapabilities(caps *imager.Capabilities) {
	*caps = s.profile.caps
	caps.PixelTypes = append([]imager.PixelType(nil), s.profile.caps.PixelTypes...)
	caps.ClockProfiles = append([]imager.ClockProfile(nil), s.profile.caps.ClockProfiles...)
}

// StaticQuery reports capabilities and modes.
func (s *nullSensor) StaticQuery(props *imager.StaticProperties) error {
	s.GetCapabilities(&props.Capabilities)
	props.SensorModes = s.ListModes()
	return nil
}

// ListModes returns the only mode.
func (s *nullSensor) ListModes() []imager.SensorMode {
	s.Lock()
	defer s.Unlock()

	mode := s.mode
	if imager.StereoModeStereo == s.stereoMode {
		mode.PixelAspectRatio = 0.5
	}

	return []imager.SensorMode{mode}
}

// SetMode changes resolution to any requested one.
// Nil parameters keep current resolution, exposure and gain.
func (s *nullSensor) SetMode(params *imager.SetModeParameters) (*imager.SensorMode,
	*imager.SetModeParameters, error) {
	s.Lock()
	defer s.Unlock()

	if !s.opened {
		return nil, nil, &imager.ErrNotOpened{}
	}

	if params != nil {
		s.mode.ActiveDimensions = params.Resolution
	}

	// ISP stall control needs extra lines and columns.
	if imager.StereoModeStereo == s.stereoMode {
		s.mode.ActiveDimensions.Width += stereoPadding
		s.mode.ActiveDimensions.Height += stereoPadding
	}

	if params != nil {
		s.exposure = params.Exposure
		s.gain = params.Gains[0]
	}

	selected := s.mode
	result := &imager.SetModeParameters{
		Resolution: s.mode.ActiveDimensions,
		Exposure:   s.exposure,
		Gains:      [4]float32{s.gain, s.gain, s.gain, s.gain},
	}

	s.logger.Debug("Null sensor mode set", common.LogSensorToken, s.profile.caps.Identifier,
		"width", strconv.Itoa(selected.ActiveDimensions.Width), "height", strconv.Itoa(selected.ActiveDimensions.Height))
	return &selected, result, nil
}

// SetPowerLevel stores requested power level.
func (s *nullSensor) SetPowerLevel(level enums.PowerLevel) error {
	s.Lock()
	defer s.Unlock()
	s.power = level
	return nil
}

// GetPowerLevel returns last stored power level.
func (s *nullSensor) GetPowerLevel() enums.PowerLevel {
	s.Lock()
	defer s.Unlock()
	return s.power
}

// SetParameter validates and stores writable parameters.
func (s *nullSensor) SetParameter(param enums.Parameter, value interface{}) error {
	s.Lock()
	defer s.Unlock()

	switch param {
	case enums.ParamSensorExposure:
		return setFloat(param, value, exposureMin, exposureMax, &s.exposure)
	case enums.ParamSensorGain:
		return setFloat(param, value, gainMin, gainMax, &s.gain)
	case enums.ParamSensorFrameRate:
		return setFloat(param, value, frameRateMin, frameRateMax, &s.frameRate)
	case enums.ParamFocuserLocus:
		v, ok := value.(int32)
		if !ok {
			return &imager.ErrParameterType{Param: param, Value: value}
		}
		if v < focusMin || v > focusMax {
			return &imager.ErrParameterRange{Param: param}
		}
		s.locus = v
		return nil
	case enums.ParamOptimizeResolutionChange:
		return nil
	}

	if s.profile.stereo {
		if enums.ParamStereoCameraMode != param {
			return &imager.ErrUnsupportedParameter{Param: param}
		}

		v, ok := value.(imager.StereoCameraMode)
		if !ok {
			return &imager.ErrParameterType{Param: param, Value: value}
		}
		s.stereoMode = v
		return nil
	}

	switch param {
	case enums.ParamAWBLock, enums.ParamAELock, enums.ParamISPSetting:
		return nil
	}

	return &imager.ErrUnsupportedParameter{Param: param}
}

// GetParameter writes parameter value into the destination pointer.
func (s *nullSensor) GetParameter(param enums.Parameter, value interface{}) error {
	s.Lock()
	defer s.Unlock()

	switch param {
	case enums.ParamSensorExposure:
		return getFloat(param, value, s.exposure)
	case enums.ParamSensorGain:
		dst, ok := value.(*[4]float32)
		if !ok {
			return &imager.ErrParameterType{Param: param, Value: value}
		}
		*dst = [4]float32{s.gain, s.gain, s.gain, s.gain}
		return nil
	case enums.ParamSensorFrameRate:
		return getFloat(param, value, s.frameRate)
	case enums.ParamFocuserLocus:
		dst, ok := value.(*int32)
		if !ok {
			return &imager.ErrParameterType{Param: param, Value: value}
		}
		*dst = s.locus
		return nil
	case enums.ParamSensorExposureLimits:
		return getLimits(param, value, exposureMin, exposureMax)
	case enums.ParamSensorGainLimits:
		return getLimits(param, value, gainMin, gainMax)
	case enums.ParamSensorFrameRateLimits:
		return getLimits(param, value, frameRateMin, frameRateMax)
	case enums.ParamSensorExposureLatchTime:
		dst, ok := value.(*uint32)
		if !ok {
			return &imager.ErrParameterType{Param: param, Value: value}
		}
		*dst = 1
		return nil
	}

	if s.profile.stereo {
		if enums.ParamStereoCapable != param {
			return &imager.ErrUnsupportedParameter{Param: param}
		}
		return getBool(param, value, true)
	}

	switch param {
	case enums.ParamFocalLength, enums.ParamHorizontalViewAngle, enums.ParamVerticalViewAngle:
		return getFloat(param, value, 1)
	case enums.ParamSensorIspSupport:
		return getBool(param, value, familyBayer == s.profile.family)
	}

	return &imager.ErrUnsupportedParameter{Param: param}
}

func setFloat(param enums.Parameter, value interface{}, lo float32, hi float32, dst *float32) error {
	v, ok := value.(float32)
	if !ok {
		return &imager.ErrParameterType{Param: param, Value: value}
	}

	if v < lo || v > hi {
		return &imager.ErrParameterRange{Param: param}
	}

	*dst = v
	return nil
}

func getFloat(param enums.Parameter, value interface{}, v float32) error {
	dst, ok := value.(*float32)
	if !ok {
		return &imager.ErrParameterType{Param: param, Value: value}
	}

	*dst = v
	return nil
}

func getLimits(param enums.Parameter, value interface{}, lo float32, hi float32) error {
	dst, ok := value.(*[2]float32)
	if !ok {
		return &imager.ErrParameterType{Param: param, Value: value}
	}

	*dst = [2]float32{lo, hi}
	return nil
}

func getBool(param enums.Parameter, value interface{}, v bool) error {
	dst, ok := value.(*bool)
	if !ok {
		return &imager.ErrParameterType{Param: param, Value: value}
	}

	*dst = v
	return nil
}
