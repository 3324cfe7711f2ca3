// Package server wires imager HAL sub-systems together.
package server

import (
	"github.com/go-home-io/imager/drivers/virtual"
	"github.com/go-home-io/imager/plugins/common"
	"github.com/go-home-io/imager/providers"
	"github.com/go-home-io/imager/systems"
	"github.com/go-home-io/imager/systems/hal"
	"github.com/go-home-io/imager/systems/registry"
	"github.com/go-home-io/imager/systems/resolver"
)

const (
	// Logger system representation.
	logSystem = "server"
)

// ImagerServer holds loaded capability tables and the imager provider.
type ImagerServer struct {
	Settings providers.ISettingsProvider
	Logger   common.ILoggerProvider
	Registry providers.IRegistryProvider
	Imagers  providers.IImagerProvider
}

// NewServer loads configured driver plugins and constructs the imager provider.
func NewServer(settings providers.ISettingsProvider) (*ImagerServer, error) {
	reg, err := registry.Load(&registry.ConstructLoader{
		Logger:         settings.PluginLogger(systems.SysImager, "registry"),
		Loader:         settings.PluginLoader(),
		Drivers:        settings.Drivers(),
		VirtualSensors: virtual.Entries(),
	})

	if err != nil {
		settings.SystemLogger().Error("Failed to load drivers", err, common.LogSystemToken, logSystem)
		return nil, err
	}

	res := resolver.NewResolver(&resolver.ConstructResolver{
		Logger:      settings.PluginLogger(systems.SysImager, "resolver"),
		Topology:    settings.Topology(),
		Peripherals: settings.Peripherals(),
		Registry:    reg,
	})

	server := &ImagerServer{
		Settings: settings,
		Logger:   settings.SystemLogger(),
		Registry: reg,
		Imagers: hal.NewImagerProvider(&hal.ConstructImagerProvider{
			Logger:   settings.SystemLogger(),
			Registry: reg,
			Resolver: res,
		}),
	}

	server.Logger.Info("Imager HAL is ready", common.LogSystemToken, logSystem)
	return server, nil
}
