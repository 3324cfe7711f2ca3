package settings

import (
	"github.com/go-home-io/imager/plugins/common"
	"github.com/go-home-io/imager/providers"
	"github.com/go-home-io/imager/systems"
	"github.com/go-home-io/imager/systems/logger"
)

// SystemLogger returns default system logger.
func (s *settingsProvider) SystemLogger() common.ILoggerProvider {
	return s.logger
}

// PluginLogger returns logger specifically for plugin provider.
func (s *settingsProvider) PluginLogger(system systems.SystemType, provider string) common.ILoggerProvider {
	return logger.NewPluginLogger(&logger.ConstructPluginLogger{
		SystemLogger: s.logger,
		System:       system.String(),
		Provider:     provider,
	})
}

// PluginLoader returns plugin loader provider.
func (s *settingsProvider) PluginLoader() providers.IPluginLoaderProvider {
	return s.pluginLoader
}

// Validator returns yaml validator provider.
func (s *settingsProvider) Validator() providers.IValidatorProvider {
	return s.validator
}

// Drivers returns configured driver plugins.
func (s *settingsProvider) Drivers() *providers.DriversSettings {
	return s.drivers
}

// Topology returns board layout provider.
func (s *settingsProvider) Topology() providers.ITopologyProvider {
	return s.topology
}

// Peripherals returns peripheral database provider.
func (s *settingsProvider) Peripherals() providers.IPeripheralProvider {
	return s.peripherals
}

// Flush releases opened resources and flushes logs.
func (s *settingsProvider) Flush() {
	for _, v := range s.closers {
		if err := v.Close(); err != nil {
			s.logger.Error("Failed to close resource", err, common.LogSystemToken, logSystem)
		}
	}

	s.closers = nil
	s.logger.Flush()
}
