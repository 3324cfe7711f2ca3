//+build !release

package mocks

import (
	"github.com/go-home-io/imager/plugins/common"
	"github.com/go-home-io/imager/providers"
	"github.com/go-home-io/imager/systems"
)

// IFakeSettings adds additional capabilities to a fake settings provider.
type IFakeSettings interface {
	providers.ISettingsProvider
	AddLoader(loader providers.IPluginLoaderProvider)
	AddDrivers(drivers *providers.DriversSettings)
	AddTopology(topology providers.ITopologyProvider)
	AddPeripherals(peripherals providers.IPeripheralProvider)
}

type fakeSettings struct {
	logger      common.ILoggerProvider
	loader      providers.IPluginLoaderProvider
	drivers     *providers.DriversSettings
	topology    providers.ITopologyProvider
	peripherals providers.IPeripheralProvider
}

func (f *fakeSettings) SystemLogger() common.ILoggerProvider {
	return f.logger
}

func (f *fakeSettings) PluginLogger(systems.SystemType, string) common.ILoggerProvider {
	return f.logger
}

func (f *fakeSettings) PluginLoader() providers.IPluginLoaderProvider {
	return f.loader
}

func (f *fakeSettings) Validator() providers.IValidatorProvider {
	return FakeNewValidator(true)
}

func (f *fakeSettings) Drivers() *providers.DriversSettings {
	return f.drivers
}

func (f *fakeSettings) Topology() providers.ITopologyProvider {
	return f.topology
}

func (f *fakeSettings) Peripherals() providers.IPeripheralProvider {
	return f.peripherals
}

func (f *fakeSettings) Flush() {
}

func (f *fakeSettings) AddLoader(loader providers.IPluginLoaderProvider) {
	f.loader = loader
}

func (f *fakeSettings) AddDrivers(drivers *providers.DriversSettings) {
	f.drivers = drivers
}

func (f *fakeSettings) AddTopology(topology providers.ITopologyProvider) {
	f.topology = topology
}

func (f *fakeSettings) AddPeripherals(peripherals providers.IPeripheralProvider) {
	f.peripherals = peripherals
}

// FakeNewSettings creates a new fake settings provider
// with empty drivers, no topology and no peripherals.
func FakeNewSettings(logCallback func(string)) IFakeSettings {
	return &fakeSettings{
		logger:      FakeNewLogger(logCallback),
		loader:      FakeNewPluginLoader(nil),
		drivers:     &providers.DriversSettings{},
		topology:    FakeNewTopology(false),
		peripherals: FakeNewPeripherals(false),
	}
}
