package virtual

import (
	"testing"

	"github.com/go-home-io/imager/mocks"
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/plugins/imager/enums"
	"github.com/go-home-io/imager/systems/hal"
	"github.com/go-home-io/imager/systems/registry"
	"github.com/go-home-io/imager/systems/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSensor(t *testing.T, guid imager.GUID) *nullSensor {
	for _, v := range Entries() {
		if v.GUID != guid {
			continue
		}

		dev, err := v.Factory(&imager.InitDataSubdevice{Logger: mocks.FakeNewLogger(nil), Class: enums.ClassSensor})
		require.NoError(t, err)
		require.NoError(t, dev.Open())
		return dev.(*nullSensor)
	}

	require.Fail(t, "sensor is not registered", guid.String())
	return nil
}

// Tests virtual table order.
func TestEntriesOrder(t *testing.T) {
	expected := []imager.GUID{
		imager.GUIDNullYUV,
		imager.GUIDNullBayer,
		imager.GUIDHost,
		imager.GUIDNullCSIA,
		imager.GUIDNullCSIB,
		imager.GUIDTestPatternABayer,
		imager.GUIDTestPatternARGB,
		imager.GUIDTestPatternBBayer,
		imager.GUIDTestPatternBRGB,
	}

	entries := Entries()
	require.Equal(t, len(expected), len(entries))
	for ii, v := range expected {
		assert.Equal(t, v, entries[ii].GUID, "index %d", ii)
		assert.NotNil(t, entries[ii].Factory)
	}
}

// Tests capability records of every sensor.
func TestCapabilities(t *testing.T) {
	data := []struct {
		guid  imager.GUID
		name  string
		iface imager.SensorInterface
		blank imager.Size
		isp   bool
	}{
		{imager.GUIDNullYUV, "Null YUV Sensor", imager.InterfaceParallel8, imager.Size{}, false},
		{imager.GUIDNullBayer, "Null Bayer Sensor", imager.InterfaceParallel10, imager.Size{Width: 32, Height: 24}, true},
		{imager.GUIDTestPatternABayer, "Null TPGA Bayer Sensor", imager.InterfaceSerialA, imager.Size{Width: 32, Height: 24}, true},
		{imager.GUIDTestPatternBRGB, "Null TPGB Rgb Sensor", imager.InterfaceSerialB, imager.Size{Width: 32, Height: 24}, false},
	}

	for _, v := range data {
		s := openSensor(t, v.guid)
		caps := imager.Capabilities{}
		s.GetCapabilities(&caps)

		assert.Equal(t, v.name, caps.Identifier)
		assert.Equal(t, v.iface, caps.SensorInterface)
		assert.Equal(t, v.blank, caps.MinimumBlank)
		assert.Equal(t, uint32(120000), caps.InitialClockKHz)
		assert.Equal(t, imager.CapabilitiesEnd, caps.CapabilitiesEnd)
		assert.Equal(t, imager.GUID(0), caps.FocuserGUID)
		assert.Equal(t, imager.GUID(0), caps.FlashGUID)

		isp := !v.isp
		require.NoError(t, s.GetParameter(enums.ParamSensorIspSupport, &isp))
		assert.Equal(t, v.isp, isp, v.name)
	}
}

// Tests that capability records are independent copies.
func TestCapabilitiesCopy(t *testing.T) {
	s := openSensor(t, imager.GUIDNullBayer)
	caps := imager.Capabilities{}
	s.GetCapabilities(&caps)
	caps.PixelTypes[0] = imager.PixelUnknown

	again := imager.Capabilities{}
	s.GetCapabilities(&again)
	assert.Equal(t, imager.PixelBayerRGGB, again.PixelTypes[0])
}

// Tests writable parameters and their limits.
func TestParameterLimits(t *testing.T) {
	s := openSensor(t, imager.GUIDNullYUV)

	assert.NoError(t, s.SetParameter(enums.ParamSensorGain, float32(8)))
	assert.IsType(t, &imager.ErrParameterRange{}, s.SetParameter(enums.ParamSensorGain, float32(17)))
	assert.IsType(t, &imager.ErrParameterRange{}, s.SetParameter(enums.ParamSensorExposure, float32(2)))
	assert.NoError(t, s.SetParameter(enums.ParamSensorExposure, float32(1)))
	assert.IsType(t, &imager.ErrParameterType{}, s.SetParameter(enums.ParamSensorFrameRate, 1))
	assert.NoError(t, s.SetParameter(enums.ParamFocuserLocus, int32(8)))
	assert.IsType(t, &imager.ErrParameterRange{}, s.SetParameter(enums.ParamFocuserLocus, int32(-1)))

	gains := [4]float32{}
	require.NoError(t, s.GetParameter(enums.ParamSensorGain, &gains))
	assert.Equal(t, [4]float32{8, 8, 8, 8}, gains)

	var exposure float32
	require.NoError(t, s.GetParameter(enums.ParamSensorExposure, &exposure))
	assert.Equal(t, float32(1), exposure)

	var locus int32
	require.NoError(t, s.GetParameter(enums.ParamFocuserLocus, &locus))
	assert.Equal(t, int32(8), locus)

	limits := [2]float32{}
	require.NoError(t, s.GetParameter(enums.ParamSensorGainLimits, &limits))
	assert.Equal(t, [2]float32{1, 16}, limits)

	var latch uint32
	require.NoError(t, s.GetParameter(enums.ParamSensorExposureLatchTime, &latch))
	assert.Equal(t, uint32(1), latch)

	var angle float32
	require.NoError(t, s.GetParameter(enums.ParamHorizontalViewAngle, &angle))
	assert.Equal(t, float32(1), angle)
}

// Tests parameters which are accepted and ignored.
func TestIgnoredParameters(t *testing.T) {
	s := openSensor(t, imager.GUIDNullBayer)
	for _, v := range []enums.Parameter{enums.ParamAWBLock, enums.ParamAELock,
		enums.ParamISPSetting, enums.ParamOptimizeResolutionChange} {
		assert.NoError(t, s.SetParameter(v, true), v.String())
	}

	assert.IsType(t, &imager.ErrUnsupportedParameter{}, s.SetParameter(enums.ParamStereoCameraMode,
		imager.StereoModeStereo))
	assert.IsType(t, &imager.ErrUnsupportedParameter{}, s.GetParameter(enums.ParamStereoCapable, new(bool)))
}

// Tests stereo handling of serial sensors.
func TestStereoMode(t *testing.T) {
	s := openSensor(t, imager.GUIDNullCSIA)

	capable := false
	require.NoError(t, s.GetParameter(enums.ParamStereoCapable, &capable))
	assert.True(t, capable)
	assert.IsType(t, &imager.ErrUnsupportedParameter{}, s.SetParameter(enums.ParamAWBLock, true))

	require.NoError(t, s.SetParameter(enums.ParamStereoCameraMode, imager.StereoModeStereo))
	modes := s.ListModes()
	require.Equal(t, 1, len(modes))
	assert.Equal(t, float32(0.5), modes[0].PixelAspectRatio)

	mode, result, err := s.SetMode(&imager.SetModeParameters{Resolution: imager.Size{Width: 640, Height: 480}})
	require.NoError(t, err)
	assert.Equal(t, imager.Size{Width: 660, Height: 500}, mode.ActiveDimensions)
	assert.Equal(t, imager.Size{Width: 660, Height: 500}, result.Resolution)
}

// Tests that any resolution is accepted.
func TestSetMode(t *testing.T) {
	s := openSensor(t, imager.GUIDNullYUV)

	modes := s.ListModes()
	require.Equal(t, 1, len(modes))
	assert.Equal(t, imager.Size{Width: 4000, Height: 3000}, modes[0].ActiveDimensions)
	assert.Equal(t, float32(30), modes[0].PeakFrameRate)

	mode, result, err := s.SetMode(&imager.SetModeParameters{
		Resolution: imager.Size{Width: 123, Height: 45},
		Exposure:   0.5,
		Gains:      [4]float32{2, 3, 4, 5},
	})
	require.NoError(t, err)
	assert.Equal(t, imager.Size{Width: 123, Height: 45}, mode.ActiveDimensions)
	assert.Equal(t, float32(0.5), result.Exposure)
	assert.Equal(t, [4]float32{2, 2, 2, 2}, result.Gains)

	_, result, err = s.SetMode(nil)
	require.NoError(t, err)
	assert.Equal(t, imager.Size{Width: 123, Height: 45}, result.Resolution)

	s.Close()
	_, _, err = s.SetMode(nil)
	assert.IsType(t, &imager.ErrNotOpened{}, err)
}

// Tests power level bookkeeping.
func TestPower(t *testing.T) {
	s := openSensor(t, imager.GUIDHost)
	assert.Equal(t, enums.PowerOff, s.GetPowerLevel())
	require.NoError(t, s.SetPowerLevel(enums.PowerOn))
	assert.Equal(t, enums.PowerOn, s.GetPowerLevel())
}

// Tests that an imager falls back to the default virtual sensor.
func TestVirtualFallback(t *testing.T) {
	log := mocks.FakeNewLogger(nil)
	reg := registry.NewRegistry(&registry.ConstructRegistry{VirtualSensors: Entries()})
	res := resolver.NewResolver(&resolver.ConstructResolver{
		Logger:      log,
		Topology:    mocks.FakeNewTopology(true),
		Peripherals: mocks.FakeNewPeripherals(false),
		Registry:    reg,
	})
	provider := hal.NewImagerProvider(&hal.ConstructImagerProvider{
		Logger:   log,
		Registry: reg,
		Resolver: res,
	})

	img, err := provider.Open(imager.SlotRear)
	require.NoError(t, err)
	defer img.Close()

	assert.Equal(t, imager.GUIDNullYUV, img.SensorGUID())
	assert.False(t, img.HasFocuser())
	assert.False(t, img.HasFlash())
	assert.Equal(t, "Null YUV Sensor", img.GetCapabilities().Identifier)

	props, err := img.StaticProperties()
	require.NoError(t, err)
	assert.Equal(t, 1, len(props.SensorModes))
}
