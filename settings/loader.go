// Package settings is responsible for parsing yaml-based configuration.
package settings

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-home-io/imager/plugins/common"
	"github.com/go-home-io/imager/providers"
	"github.com/go-home-io/imager/systems"
	"github.com/go-home-io/imager/systems/logger"
	"github.com/go-home-io/imager/systems/topology"
	"github.com/go-home-io/imager/utils"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	// Logger system.
	logSystem = "settings"

	// DefaultConfigFile describes config file name inside of the default configs folder.
	DefaultConfigFile = "imager.yaml"

	// Describes logger provider which writes colored output to stdout.
	loggerConsole = "console"
	// Describes peripherals provider backed by a database file.
	peripheralsSqlite = "sqlite"
	// Describes peripherals provider with an inline list.
	peripheralsList = "list"
)

// StartUpOptions defines arguments allowed by the system.
type StartUpOptions struct {
	PluginsFolder string `short:"p" long:"plugins" description:"Plugins location."`
	PluginsProxy  string `long:"proxy" description:"Plugins download proxy URL."`
	ConfigFile    string `short:"c" long:"config" description:"Config file. Defaults to configs/imager.yaml."`
}

// Defines loaded provider record.
type rawProvider struct {
	System   systems.SystemType
	Provider string
	Config   []byte
}

// Inline peripherals list.
type peripheralsListSettings struct {
	Devices []topology.PeripheralEntry `yaml:"devices" validate:"dive"`
}

// System settings.
type settingsProvider struct {
	logger       providers.ISystemLoggerProvider
	pluginLoader providers.IPluginLoaderProvider
	validator    providers.IValidatorProvider

	drivers     *providers.DriversSettings
	topology    providers.ITopologyProvider
	peripherals providers.IPeripheralProvider

	closers []io.Closer
}

// Load system configuration.
// Missing default config file is not an error: only built-in sensors are available then.
func Load(options *StartUpOptions) (providers.ISettingsProvider, error) {
	s := &settingsProvider{
		logger:  logger.NewConsoleLogger(),
		drivers: &providers.DriversSettings{},
	}

	s.validator = utils.NewValidator(s.logger)

	data, err := s.readConfig(options.ConfigFile)
	if err != nil {
		return nil, err
	}

	tpl := newTemplateProvider(&constructTemplate{Logger: s.logger})
	data, err = tpl.Process(data)
	if err != nil {
		return nil, errors.Wrap(err, "config template")
	}

	allProviders := s.loadFile(data)
	allProviders, err = s.loadLoggerProvider(allProviders)
	if err != nil {
		return nil, err
	}

	s.pluginLoader = utils.NewPluginLoader(&utils.ConstructPluginLoader{
		PluginsFolder: options.PluginsFolder,
		PluginsProxy:  options.PluginsProxy,
		Validator:     s.validator,
		Logger:        s.PluginLogger(systems.SysImager, "loader"),
	})

	for _, v := range allProviders {
		if err := s.parseProvider(v); err != nil {
			s.Flush()
			return nil, err
		}
	}

	s.validate()
	return s, nil
}

// Reads config file.
func (s *settingsProvider) readConfig(file string) ([]byte, error) {
	explicit := "" != file
	if !explicit {
		file = filepath.Join(utils.GetDefaultConfigsDir(), DefaultConfigFile)
	}

	data, err := ioutil.ReadFile(file)
	if err == nil {
		return data, nil
	}

	if !explicit && os.IsNotExist(err) {
		s.logger.Warn("Config file is not found, using built-in sensors only",
			common.LogSystemToken, logSystem, common.LogFileToken, file)
		return []byte{}, nil
	}

	return nil, errors.Wrap(err, "read config")
}

// Sets defaults for the optional sections.
func (s *settingsProvider) validate() {
	if nil == s.topology {
		s.logger.Debug("Topology is not defined, auto-select falls back to enumeration",
			common.LogSystemToken, logSystem)
		s.topology = topology.NewLayoutProvider(&topology.ConstructLayout{
			Logger: s.PluginLogger(systems.SysTopology, "yaml"),
		})
	}

	if nil == s.peripherals {
		s.logger.Debug("Peripherals are not defined", common.LogSystemToken, logSystem)
		s.peripherals = topology.NewPeripheralList(nil)
	}
}

// Processes yaml documents.
func (s *settingsProvider) loadFile(fileData []byte) []*rawProvider {
	provs := make([]*rawProvider, 0)
	decoder := yaml.NewDecoder(bytes.NewReader(fileData))
	for {
		var value map[string]interface{}
		err := decoder.Decode(&value)
		if err == io.EOF {
			break
		}

		if err != nil {
			s.logger.Error("Failed to parse config file", err, common.LogSystemToken, logSystem)
			break
		}

		if nil == value {
			continue
		}

		componentType := ""
		componentProvider := ""

		if cs, ok := value["system"].(string); ok {
			componentType = strings.ToLower(cs)
		}

		if ct, ok := value["provider"].(string); ok {
			componentProvider = strings.ToLower(ct)
		}

		if componentType == "" || componentProvider == "" {
			s.logger.Warn("Failed to parse a record in the config file: system or provider is not defined",
				common.LogSystemToken, logSystem)
			continue
		}

		system, err := systems.SystemTypeString(componentType)
		if err != nil {
			s.logger.Warn("Unknown provider's system", common.LogSystemToken, componentType,
				common.LogProviderToken, componentProvider)
			continue
		}

		byteData, err := yaml.Marshal(value)
		if err != nil {
			s.logger.Error("Failed to parse config file", err, common.LogSystemToken, componentType,
				common.LogProviderToken, componentProvider)
			continue
		}

		provs = append(provs, &rawProvider{
			System:   system,
			Provider: componentProvider,
			Config:   byteData,
		})
	}

	return provs
}

// Loads logger configuration.
// Only the first logger record is used.
func (s *settingsProvider) loadLoggerProvider(provs []*rawProvider) ([]*rawProvider, error) {
	rest := make([]*rawProvider, 0, len(provs))
	loaded := false
	for _, v := range provs {
		if systems.SysLogger != v.System {
			rest = append(rest, v)
			continue
		}

		if loaded {
			s.logger.Warn("Duplicated logger provider", common.LogProviderToken, v.Provider,
				common.LogSystemToken, logSystem)
			continue
		}

		loaded = true
		if loggerConsole == v.Provider {
			continue
		}

		settings := &providers.LoggerSettings{}
		if err := s.unmarshal(v, settings); err != nil {
			return nil, err
		}

		s.logger = logger.NewLoggerProvider(settings)
		s.validator.SetLogger(s.PluginLogger(systems.SysLogger, "validator"))
	}

	return rest, nil
}

// Parses single config record.
func (s *settingsProvider) parseProvider(provider *rawProvider) error {
	s.logger.Debug("Processing config", common.LogProviderToken, provider.Provider,
		common.LogSystemToken, provider.System.String())

	switch provider.System {
	case systems.SysSensor, systems.SysFocuser, systems.SysFlash:
		return s.loadDriver(provider)
	case systems.SysExtension:
		def := &providers.ExtensionDefinition{}
		if err := s.unmarshal(provider, def); err != nil {
			return err
		}
		s.drivers.Extensions = append(s.drivers.Extensions, def)
	case systems.SysTopology:
		return s.loadTopology(provider)
	case systems.SysPeripherals:
		return s.loadPeripherals(provider)
	default:
		s.logger.Warn("Unsupported provider's system", common.LogProviderToken, provider.Provider,
			common.LogSystemToken, provider.System.String())
	}

	return nil
}

// Loads driver definition.
func (s *settingsProvider) loadDriver(provider *rawProvider) error {
	def := &providers.DriverDefinition{}
	if err := s.unmarshal(provider, def); err != nil {
		return err
	}

	switch provider.System {
	case systems.SysSensor:
		s.drivers.Sensors = append(s.drivers.Sensors, def)
	case systems.SysFocuser:
		s.drivers.Focusers = append(s.drivers.Focusers, def)
	case systems.SysFlash:
		s.drivers.Flashes = append(s.drivers.Flashes, def)
	}

	return nil
}

// Loads board layout.
func (s *settingsProvider) loadTopology(provider *rawProvider) error {
	if nil != s.topology {
		s.logger.Warn("Duplicated topology provider", common.LogProviderToken, provider.Provider,
			common.LogSystemToken, logSystem)
		return nil
	}

	settings := &topology.LayoutSettings{}
	if err := s.unmarshal(provider, settings); err != nil {
		return err
	}

	s.topology = topology.NewLayoutProvider(&topology.ConstructLayout{
		Logger:   s.PluginLogger(systems.SysTopology, provider.Provider),
		Settings: settings,
	})

	return nil
}

// Loads peripheral database.
func (s *settingsProvider) loadPeripherals(provider *rawProvider) error {
	if nil != s.peripherals {
		s.logger.Warn("Duplicated peripherals provider", common.LogProviderToken, provider.Provider,
			common.LogSystemToken, logSystem)
		return nil
	}

	switch provider.Provider {
	case peripheralsSqlite:
		settings := &topology.DatabaseSettings{}
		if err := s.unmarshal(provider, settings); err != nil {
			return err
		}

		db, err := topology.OpenPeripheralDatabase(&topology.ConstructDatabase{
			Logger:   s.PluginLogger(systems.SysPeripherals, provider.Provider),
			Settings: settings,
		})
		if err != nil {
			return errors.Wrap(err, "peripheral database")
		}

		s.closers = append(s.closers, db)
		s.peripherals = db
	case peripheralsList:
		settings := &peripheralsListSettings{}
		if err := s.unmarshal(provider, settings); err != nil {
			return err
		}

		s.peripherals = topology.NewPeripheralList(settings.Devices)
	default:
		s.logger.Warn("Unknown peripherals provider", common.LogProviderToken, provider.Provider,
			common.LogSystemToken, logSystem)
	}

	return nil
}

// Unmarshals and validates a record.
func (s *settingsProvider) unmarshal(provider *rawProvider, target interface{}) error {
	if err := yaml.Unmarshal(provider.Config, target); err != nil {
		s.logger.Error("Failed to unmarshal config", err, common.LogProviderToken, provider.Provider,
			common.LogSystemToken, provider.System.String())
		return &ErrInvalidRecord{System: provider.System.String(), Provider: provider.Provider}
	}

	if def, ok := target.(*providers.DriverDefinition); ok && "" == def.Plugin {
		def.Plugin = provider.Provider
	}

	if def, ok := target.(*providers.ExtensionDefinition); ok && "" == def.Plugin {
		def.Plugin = provider.Provider
	}

	if !s.validator.Validate(target) {
		return &ErrInvalidRecord{System: provider.System.String(), Provider: provider.Provider}
	}

	return nil
}
