package server

import (
	"strings"

	"github.com/go-home-io/imager/plugins/common"
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/plugins/imager/enums"
	"github.com/go-home-io/imager/providers"
	"github.com/gobwas/glob"
)

// DriverInfo describes one registered driver.
type DriverInfo struct {
	Class   enums.DeviceClass
	GUID    imager.GUID
	Plugin  string
	Virtual bool
}

// ImagerDescription describes an opened imager.
type ImagerDescription struct {
	Sensor  imager.GUID
	Focuser imager.GUID
	Flash   imager.GUID

	Capabilities *imager.Capabilities
	Static       *imager.StaticProperties
	Power        enums.PowerLevel
}

// ParameterValue describes one parameter read result.
type ParameterValue struct {
	Param enums.Parameter
	Value interface{}
	Err   error
}

// ListDrivers returns every registered driver in lookup order.
func (s *ImagerServer) ListDrivers() []*DriverInfo {
	plugins := s.pluginNames()
	result := make([]*DriverInfo, 0)
	for _, class := range enums.DeviceClassValues() {
		for _, guid := range s.Registry.GUIDs(class) {
			info := &DriverInfo{
				Class:  class,
				GUID:   guid,
				Plugin: plugins[class][guid],
			}

			if enums.ClassSensor == class {
				info.Virtual = s.Registry.IsVirtual(guid)
			}

			result = append(result, info)
		}
	}

	return result
}

// Describe opens an imager and reports its static properties.
func (s *ImagerServer) Describe(guid imager.GUID) (*ImagerDescription, error) {
	img, err := s.Imagers.Open(guid)
	if err != nil {
		return nil, err
	}
	defer img.Close()

	static, err := img.StaticProperties()
	if err != nil {
		s.Logger.Error("Failed to query static properties", err, common.LogSystemToken, logSystem,
			common.LogGUIDToken, guid.String())
		return nil, err
	}

	return &ImagerDescription{
		Sensor:       img.SensorGUID(),
		Focuser:      img.FocuserGUID(),
		Flash:        img.FlashGUID(),
		Capabilities: img.GetCapabilities(),
		Static:       static,
		Power:        img.GetPowerLevel(),
	}, nil
}

// DumpParameters reads every readable parameter with name matching the pattern.
// Empty pattern matches all. Per-parameter failures are reported, not returned.
func (s *ImagerServer) DumpParameters(guid imager.GUID, pattern string) ([]*ParameterValue, error) {
	if "" == pattern {
		pattern = "*"
	}

	matcher, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, &ErrBadPattern{Pattern: pattern}
	}

	img, err := s.Imagers.Open(guid)
	if err != nil {
		return nil, err
	}
	defer img.Close()

	result := make([]*ParameterValue, 0)
	for _, param := range enums.ParameterValues() {
		newDst, ok := readableParameters[param]
		if !ok || !matcher.Match(param.String()) {
			continue
		}

		result = append(result, readParameter(img, param, newDst()))
	}

	return result, nil
}

// SetPower opens an imager, applies the power level and reports the resulting one.
func (s *ImagerServer) SetPower(guid imager.GUID, level string) (enums.PowerLevel, error) {
	power, err := enums.PowerLevelString(strings.ToLower(level))
	if err != nil {
		return enums.PowerOff, &ErrUnknownPowerLevel{Name: level}
	}

	img, err := s.Imagers.Open(guid)
	if err != nil {
		return enums.PowerOff, err
	}
	defer img.Close()

	if err := img.SetPowerLevel(power); err != nil {
		s.Logger.Error("Failed to set power level", err, common.LogSystemToken, logSystem,
			common.LogGUIDToken, guid.String())
		return img.GetPowerLevel(), err
	}

	return img.GetPowerLevel(), nil
}

// Maps configured GUIDs to plugin names.
func (s *ImagerServer) pluginNames() map[enums.DeviceClass]map[imager.GUID]string {
	result := map[enums.DeviceClass]map[imager.GUID]string{
		enums.ClassSensor:  {},
		enums.ClassFocuser: {},
		enums.ClassFlash:   {},
	}

	drivers := s.Settings.Drivers()
	if nil == drivers {
		return result
	}

	add := func(class enums.DeviceClass, defs []*providers.DriverDefinition) {
		for _, v := range defs {
			if _, ok := result[class][v.GUID]; !ok {
				result[class][v.GUID] = v.Plugin
			}
		}
	}

	add(enums.ClassSensor, drivers.Sensors)
	add(enums.ClassFocuser, drivers.Focusers)
	add(enums.ClassFlash, drivers.Flashes)
	return result
}

func readParameter(img providers.IImager, param enums.Parameter, dst interface{}) *ParameterValue {
	if err := img.GetParameter(param, dst); err != nil {
		return &ParameterValue{Param: param, Err: err}
	}

	return &ParameterValue{Param: param, Value: deref(dst)}
}
