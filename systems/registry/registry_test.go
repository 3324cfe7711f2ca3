package registry

import (
	"errors"
	"testing"

	"github.com/go-home-io/imager/mocks"
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/plugins/imager/enums"
	"github.com/go-home-io/imager/providers"
	"github.com/go-home-io/imager/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory which reports its tag through the bind error.
func taggedFactory(tag string) imager.Factory {
	return func(*imager.InitDataSubdevice) (imager.ISubdevice, error) {
		return nil, errors.New(tag)
	}
}

func factoryTag(t *testing.T, f imager.Factory) string {
	require.NotNil(t, f)
	_, err := f(&imager.InitDataSubdevice{})
	require.Error(t, err)
	return err.Error()
}

func newTestRegistry() providers.IRegistryProvider {
	return NewRegistry(&ConstructRegistry{
		Sensors: []Entry{
			{GUID: imager.NewGUID("SENSOR01"), Factory: taggedFactory("sensor01")},
			{GUID: imager.NewGUID("SENSOR02"), Factory: taggedFactory("sensor02")},
			{GUID: imager.NewGUID("SENSOR01"), Factory: taggedFactory("shadowed")},
			{GUID: imager.GUIDHost, Factory: taggedFactory("real-host")},
		},
		VirtualSensors: []Entry{
			{GUID: imager.GUIDNullYUV, Factory: taggedFactory("null-yuv")},
			{GUID: imager.GUIDHost, Factory: taggedFactory("virtual-host")},
		},
		Focusers: []Entry{
			{GUID: imager.NewGUID("FOCUS001"), Factory: taggedFactory("focus001")},
			{GUID: imager.FocuserSharesSensorGUID, Factory: taggedFactory("shared")},
		},
		Flashes: []Entry{
			{GUID: imager.NewGUID("FLASH001"), Factory: taggedFactory("flash001")},
		},
		Extensions: []ExtensionEntry{
			{Family: 0x4E56, Factory: func(minor uint32) (interface{}, error) { return minor * 2, nil }},
		},
	})
}

// Tests that every registered GUID resolves to its factory.
func TestFindRegistered(t *testing.T) {
	r := newTestRegistry()
	data := []struct {
		guid    imager.GUID
		class   enums.DeviceClass
		virtual bool
		tag     string
	}{
		{imager.NewGUID("SENSOR01"), enums.ClassSensor, false, "sensor01"},
		{imager.NewGUID("SENSOR02"), enums.ClassSensor, true, "sensor02"},
		{imager.GUIDNullYUV, enums.ClassSensor, true, "null-yuv"},
		{imager.GUIDHost, enums.ClassSensor, true, "real-host"},
		{imager.NewGUID("FOCUS001"), enums.ClassFocuser, false, "focus001"},
		{imager.FocuserSharesSensorGUID, enums.ClassFocuser, true, "shared"},
		{imager.NewGUID("FLASH001"), enums.ClassFlash, false, "flash001"},
	}

	for _, v := range data {
		f, ok := r.FindFactory(v.guid, v.class, v.virtual)
		assert.True(t, ok, v.guid.String())
		assert.Equal(t, v.tag, factoryTag(t, f), v.guid.String())
	}
}

// Tests that lookups are scoped by class and virtual flag.
func TestFindNotFound(t *testing.T) {
	r := newTestRegistry()
	data := []struct {
		guid    imager.GUID
		class   enums.DeviceClass
		virtual bool
	}{
		{imager.NewGUID("UNKNOWN"), enums.ClassSensor, true},
		{imager.GUIDNullYUV, enums.ClassSensor, false},
		{imager.NewGUID("SENSOR01"), enums.ClassFocuser, true},
		{imager.NewGUID("FOCUS001"), enums.ClassFlash, true},
		{imager.NewGUID("FLASH001"), enums.ClassSensor, true},
		{imager.GUIDNullYUV, enums.ClassFocuser, true},
		{0, enums.ClassSensor, true},
		{imager.NewGUID("SENSOR01"), enums.DeviceClass(42), true},
	}

	for _, v := range data {
		f, ok := r.FindFactory(v.guid, v.class, v.virtual)
		assert.False(t, ok, v.guid.String())
		assert.Nil(t, f, v.guid.String())
	}
}

// Tests that lookups are stable.
func TestFindIsPure(t *testing.T) {
	r := newTestRegistry()
	for ii := 0; ii < 3; ii++ {
		f, ok := r.FindFactory(imager.NewGUID("SENSOR01"), enums.ClassSensor, true)
		assert.True(t, ok)
		assert.Equal(t, "sensor01", factoryTag(t, f))
	}
}

// Tests that registry doesn't share tables with the caller.
func TestTablesAreCopied(t *testing.T) {
	sensors := []Entry{{GUID: imager.NewGUID("SENSOR01"), Factory: taggedFactory("sensor01")}}
	r := NewRegistry(&ConstructRegistry{Sensors: sensors})
	sensors[0] = Entry{GUID: imager.NewGUID("SENSOR01"), Factory: taggedFactory("changed")}

	f, ok := r.FindFactory(imager.NewGUID("SENSOR01"), enums.ClassSensor, false)
	assert.True(t, ok)
	assert.Equal(t, "sensor01", factoryTag(t, f))
}

// Tests default virtual sensor.
func TestDefaultVirtualSensor(t *testing.T) {
	assert.Equal(t, imager.GUIDNullYUV, newTestRegistry().DefaultVirtualSensor())
	assert.Equal(t, imager.GUID(0), NewRegistry(&ConstructRegistry{}).DefaultVirtualSensor())
}

// Tests listing helpers.
func TestGUIDs(t *testing.T) {
	r := newTestRegistry()
	assert.Equal(t, []imager.GUID{imager.NewGUID("SENSOR01"), imager.NewGUID("SENSOR02"),
		imager.NewGUID("SENSOR01"), imager.GUIDHost, imager.GUIDNullYUV, imager.GUIDHost},
		r.GUIDs(enums.ClassSensor))
	assert.Equal(t, []imager.GUID{imager.NewGUID("FLASH001")}, r.GUIDs(enums.ClassFlash))
	assert.Empty(t, r.GUIDs(enums.DeviceClass(42)))

	assert.True(t, r.IsVirtual(imager.GUIDNullYUV))
	assert.False(t, r.IsVirtual(imager.GUIDHost))
	assert.False(t, r.IsVirtual(imager.NewGUID("SENSOR01")))
}

// Tests extension lookup.
func TestGetExtension(t *testing.T) {
	r := newTestRegistry()
	ext, err := r.GetExtension(0x4E56, 21)
	assert.NoError(t, err)
	assert.Equal(t, uint32(42), ext)

	_, err = r.GetExtension(0x1, 0)
	assert.IsType(t, &ErrExtensionNotFound{}, err)
}

// Tests registry assembly from configured plugins.
func TestLoad(t *testing.T) {
	loader := mocks.FakeNewPluginLoader(map[string]interface{}{
		"ov5650":  taggedFactory("ov5650"),
		"ad5820":  taggedFactory("ad5820"),
		"ltc3216": taggedFactory("ltc3216"),
		"nvc":     imager.ExtensionFactory(func(uint32) (interface{}, error) { return "nvc", nil }),
	})

	r, err := Load(&ConstructLoader{
		Logger: mocks.FakeNewLogger(nil),
		Loader: loader,
		Drivers: &providers.DriversSettings{
			Sensors: []*providers.DriverDefinition{
				{GUID: imager.NewGUID("OV5650"), Plugin: "ov5650", Config: map[string]interface{}{"port": "csi-a"}},
			},
			Focusers:   []*providers.DriverDefinition{{GUID: imager.NewGUID("AD5820"), Plugin: "ad5820"}},
			Flashes:    []*providers.DriverDefinition{{GUID: imager.NewGUID("LTC3216"), Plugin: "ltc3216"}},
			Extensions: []*providers.ExtensionDefinition{{Family: 7, Plugin: "nvc"}},
		},
		VirtualSensors: []Entry{{GUID: imager.GUIDNullYUV, Factory: taggedFactory("null-yuv")}},
	})

	require.NoError(t, err)

	f, ok := r.FindFactory(imager.NewGUID("OV5650"), enums.ClassSensor, false)
	assert.True(t, ok)
	assert.Equal(t, "ov5650", factoryTag(t, f))

	f, ok = r.FindFactory(imager.NewGUID("AD5820"), enums.ClassFocuser, false)
	assert.True(t, ok)
	assert.Equal(t, "ad5820", factoryTag(t, f))

	f, ok = r.FindFactory(imager.NewGUID("LTC3216"), enums.ClassFlash, false)
	assert.True(t, ok)
	assert.Equal(t, "ltc3216", factoryTag(t, f))

	ext, err := r.GetExtension(7, 0)
	assert.NoError(t, err)
	assert.Equal(t, "nvc", ext)
	assert.Equal(t, imager.GUIDNullYUV, r.DefaultVirtualSensor())

	requests := loader.Requests()
	require.Len(t, requests, 4)
	assert.Equal(t, systems.SysSensor, requests[0].SystemType)
	assert.Equal(t, "port: csi-a\n", string(requests[0].RawConfig))
	assert.Nil(t, requests[1].RawConfig)
	assert.Equal(t, systems.SysExtension, requests[3].SystemType)
	assert.Equal(t, imager.TypeExtensionFactory, requests[3].ExpectedType)
}

// Tests that a broken plugin aborts loading.
func TestLoadFailure(t *testing.T) {
	data := []*providers.DriversSettings{
		{Sensors: []*providers.DriverDefinition{{GUID: imager.NewGUID("OV5650"), Plugin: "missing"}}},
		{Focusers: []*providers.DriverDefinition{{GUID: imager.NewGUID("AD5820"), Plugin: "wrong"}}},
		{Flashes: []*providers.DriverDefinition{{GUID: imager.NewGUID("LTC3216"), Plugin: "missing"}}},
		{Extensions: []*providers.ExtensionDefinition{{Family: 1, Plugin: "factory"}}},
	}

	for k, v := range data {
		_, err := Load(&ConstructLoader{
			Logger: mocks.FakeNewLogger(nil),
			Loader: mocks.FakeNewPluginLoader(map[string]interface{}{
				"wrong":   "not a factory",
				"factory": taggedFactory("factory"),
			}),
			Drivers: v,
		})

		assert.IsType(t, &ErrDriverLoad{}, err, "%d", k)
	}
}

// Tests registry without configured drivers.
func TestLoadEmpty(t *testing.T) {
	r, err := Load(&ConstructLoader{
		Logger: mocks.FakeNewLogger(nil),
		Loader: mocks.FakeNewPluginLoader(nil),
	})

	assert.NoError(t, err)
	assert.Empty(t, r.GUIDs(enums.ClassSensor))
}
