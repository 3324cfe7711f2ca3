package server

import (
	"testing"

	"github.com/go-home-io/imager/mocks"
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/plugins/imager/enums"
	"github.com/go-home-io/imager/providers"
	"github.com/go-home-io/imager/systems/hal"
	"github.com/go-home-io/imager/systems/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var realSensor = imager.NewGUID("SONYIMX2")

func newTestServer(t *testing.T) *ImagerServer {
	driver := &mocks.FakeDriver{
		Name:    "imx",
		Journal: mocks.FakeNewJournal(),
		Caps:    imager.Capabilities{Identifier: "imx", CapabilitiesEnd: imager.CapabilitiesEnd},
	}

	settings := mocks.FakeNewSettings(nil)
	settings.AddLoader(mocks.FakeNewPluginLoader(map[string]interface{}{
		"imx219": driver.SensorFactory(),
	}))
	settings.AddDrivers(&providers.DriversSettings{
		Sensors: []*providers.DriverDefinition{{GUID: realSensor, Plugin: "imx219"}},
	})

	srv, err := NewServer(settings)
	require.NoError(t, err)
	return srv
}

// Tests that registry contains configured and built-in drivers.
func TestListDrivers(t *testing.T) {
	srv := newTestServer(t)
	drivers := srv.ListDrivers()
	require.Equal(t, 10, len(drivers))

	assert.Equal(t, realSensor, drivers[0].GUID)
	assert.Equal(t, "imx219", drivers[0].Plugin)
	assert.False(t, drivers[0].Virtual)

	assert.Equal(t, imager.GUIDNullYUV, drivers[1].GUID)
	assert.Equal(t, "", drivers[1].Plugin)
	for _, v := range drivers[1:] {
		assert.True(t, v.Virtual, v.GUID.String())
		assert.Equal(t, enums.ClassSensor, v.Class)
	}
}

// Tests failed driver plugin.
func TestNewServerFailedPlugin(t *testing.T) {
	settings := mocks.FakeNewSettings(nil)
	settings.AddDrivers(&providers.DriversSettings{
		Flashes: []*providers.DriverDefinition{{GUID: imager.NewGUID("FLASH001"), Plugin: "missing"}},
	})

	srv, err := NewServer(settings)
	assert.Nil(t, srv)
	assert.IsType(t, &registry.ErrDriverLoad{}, err)
}

// Tests imager description.
func TestDescribe(t *testing.T) {
	srv := newTestServer(t)

	desc, err := srv.Describe(imager.SlotRear)
	require.NoError(t, err)
	assert.Equal(t, imager.GUIDNullYUV, desc.Sensor)
	assert.Equal(t, imager.GUID(0), desc.Focuser)
	assert.Equal(t, "Null YUV Sensor", desc.Capabilities.Identifier)
	assert.Equal(t, 1, len(desc.Static.SensorModes))

	desc, err = srv.Describe(realSensor)
	require.NoError(t, err)
	assert.Equal(t, "imx", desc.Capabilities.Identifier)

	_, err = srv.Describe(imager.NewGUID("UNKNOWN1"))
	assert.IsType(t, &hal.ErrSensorNotFound{}, err)
}

// Tests parameters filtering.
func TestDumpParameters(t *testing.T) {
	srv := newTestServer(t)

	values, err := srv.DumpParameters(imager.GUIDNullBayer, "sensor_*_limits")
	require.NoError(t, err)
	require.Equal(t, 3, len(values))
	assert.Equal(t, enums.ParamSensorExposureLimits, values[0].Param)
	assert.Equal(t, [2]float32{1, 1}, values[0].Value)
	assert.Equal(t, enums.ParamSensorGainLimits, values[1].Param)
	assert.Equal(t, [2]float32{1, 16}, values[1].Value)
	assert.Equal(t, enums.ParamSensorFrameRateLimits, values[2].Param)

	values, err = srv.DumpParameters(imager.GUIDNullBayer, "IMAGER_BUILD_DATE")
	require.NoError(t, err)
	require.Equal(t, 1, len(values))
	assert.NoError(t, values[0].Err)
	assert.IsType(t, "", values[0].Value)

	values, err = srv.DumpParameters(imager.GUIDNullBayer, "focuser_locus")
	require.NoError(t, err)
	require.Equal(t, 1, len(values))
	assert.IsType(t, &hal.ErrSubdeviceAbsent{}, values[0].Err)
	assert.Nil(t, values[0].Value)

	values, err = srv.DumpParameters(imager.GUIDNullBayer, "")
	require.NoError(t, err)
	assert.Equal(t, len(readableParameters), len(values))

	_, err = srv.DumpParameters(imager.GUIDNullBayer, "[")
	assert.IsType(t, &ErrBadPattern{}, err)
}

// Tests power level changes.
func TestSetPower(t *testing.T) {
	srv := newTestServer(t)

	level, err := srv.SetPower(imager.GUIDHost, "On")
	require.NoError(t, err)
	assert.Equal(t, enums.PowerOn, level)

	_, err = srv.SetPower(imager.GUIDHost, "bogus")
	assert.IsType(t, &ErrUnknownPowerLevel{}, err)

	_, err = srv.SetPower(imager.NewGUID("UNKNOWN1"), "on")
	assert.IsType(t, &hal.ErrSensorNotFound{}, err)
}
