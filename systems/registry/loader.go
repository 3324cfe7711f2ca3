package registry

import (
	"reflect"
	"strconv"

	"github.com/go-home-io/imager/plugins/common"
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/providers"
	"github.com/go-home-io/imager/systems"
	"gopkg.in/yaml.v2"
)

// ConstructLoader has data required for building a registry from configured plugins.
type ConstructLoader struct {
	Logger         common.ILoggerProvider
	Loader         providers.IPluginLoaderProvider
	Drivers        *providers.DriversSettings
	VirtualSensors []Entry
}

// Load builds a registry from configured driver plugins and built-in virtual sensors.
// Any failed plugin aborts the start-up.
func Load(ctor *ConstructLoader) (providers.IRegistryProvider, error) {
	regCtor := &ConstructRegistry{
		VirtualSensors: ctor.VirtualSensors,
	}

	drivers := ctor.Drivers
	if nil == drivers {
		drivers = &providers.DriversSettings{}
	}

	var err error
	if regCtor.Sensors, err = loadTable(ctor, systems.SysSensor, drivers.Sensors); err != nil {
		return nil, err
	}

	if regCtor.Focusers, err = loadTable(ctor, systems.SysFocuser, drivers.Focusers); err != nil {
		return nil, err
	}

	if regCtor.Flashes, err = loadTable(ctor, systems.SysFlash, drivers.Flashes); err != nil {
		return nil, err
	}

	for _, v := range drivers.Extensions {
		obj, err := loadDriver(ctor, systems.SysExtension, v.Plugin, v.Config, imager.TypeExtensionFactory)
		if err != nil {
			return nil, err
		}

		factory, ok := obj.(imager.ExtensionFactory)
		if !ok {
			return nil, &ErrDriverLoad{Plugin: v.Plugin, Err: &ErrWrongFactory{}}
		}

		regCtor.Extensions = append(regCtor.Extensions, ExtensionEntry{
			Family:  v.Family,
			Factory: factory,
		})
	}

	ctor.Logger.Info("Capability tables are loaded", common.LogSystemToken, systems.SysImager.String(),
		"sensors", strconv.Itoa(len(regCtor.Sensors)), "virtual", strconv.Itoa(len(regCtor.VirtualSensors)),
		"focusers", strconv.Itoa(len(regCtor.Focusers)), "flashes", strconv.Itoa(len(regCtor.Flashes)))

	return NewRegistry(regCtor), nil
}

// Loads one capability table.
func loadTable(ctor *ConstructLoader, system systems.SystemType,
	definitions []*providers.DriverDefinition) ([]Entry, error) {
	table := make([]Entry, 0, len(definitions))
	for _, v := range definitions {
		obj, err := loadDriver(ctor, system, v.Plugin, v.Config, imager.TypeFactory)
		if err != nil {
			return nil, err
		}

		factory, ok := obj.(imager.Factory)
		if !ok {
			return nil, &ErrDriverLoad{Plugin: v.Plugin, Err: &ErrWrongFactory{}}
		}

		table = append(table, Entry{
			GUID:    v.GUID,
			Factory: factory,
		})
	}

	return table, nil
}

// Loads one driver plugin.
func loadDriver(ctor *ConstructLoader, system systems.SystemType, plugin string,
	config map[string]interface{}, expectedType reflect.Type) (interface{}, error) {
	var rawConfig []byte
	if nil != config {
		data, err := yaml.Marshal(config)
		if err != nil {
			return nil, &ErrDriverLoad{Plugin: plugin, Err: err}
		}
		rawConfig = data
	}

	obj, err := ctor.Loader.LoadPlugin(&providers.PluginLoadRequest{
		SystemType:     system,
		PluginProvider: plugin,
		RawConfig:      rawConfig,
		ExpectedType:   expectedType,
	})

	if err != nil {
		ctor.Logger.Error("Failed to load driver plugin", err, common.LogSystemToken, system.String(),
			common.LogPluginToken, plugin)
		return nil, &ErrDriverLoad{Plugin: plugin, Err: err}
	}

	return obj, nil
}
