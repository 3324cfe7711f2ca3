package providers

import (
	"github.com/go-home-io/imager/plugins/common"
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/systems"
)

// ISettingsProvider defines settings loader provider logic.
type ISettingsProvider interface {
	SystemLogger() common.ILoggerProvider
	PluginLogger(system systems.SystemType, provider string) common.ILoggerProvider
	PluginLoader() IPluginLoaderProvider
	Validator() IValidatorProvider
	Drivers() *DriversSettings
	Topology() ITopologyProvider
	Peripherals() IPeripheralProvider
	Flush()
}

// DriverDefinition binds device GUID to a driver plugin.
type DriverDefinition struct {
	GUID   imager.GUID            `yaml:"guid" validate:"guid"`
	Plugin string                 `yaml:"plugin" validate:"required"`
	Config map[string]interface{} `yaml:"config"`
}

// ExtensionDefinition binds family code to an extension plugin.
type ExtensionDefinition struct {
	Family uint32                 `yaml:"family" validate:"required"`
	Plugin string                 `yaml:"plugin" validate:"required"`
	Config map[string]interface{} `yaml:"config"`
}

// DriversSettings has configured driver plugins per table.
type DriversSettings struct {
	Sensors    []*DriverDefinition    `yaml:"sensors" validate:"dive"`
	Focusers   []*DriverDefinition    `yaml:"focusers" validate:"dive"`
	Flashes    []*DriverDefinition    `yaml:"flashes" validate:"dive"`
	Extensions []*ExtensionDefinition `yaml:"extensions" validate:"dive"`
}
