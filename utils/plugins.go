// Package utils contains various helpers.
package utils

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"plugin"
	"reflect"
	"strings"
	"time"

	"github.com/go-home-io/imager/plugins/common"
	"github.com/go-home-io/imager/providers"
	"github.com/go-home-io/imager/systems"
	"github.com/mholt/archiver"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	// PluginEntryPointMethodName is the name of main plugin method.
	PluginEntryPointMethodName = "Load"
	// Default download timeout.
	downloadTimeout = 30 * time.Second
	// Logger system.
	logSystem = "plugins"
)

// ConstructPluginLoader contains params required for creating a new plugin loader instance.
type ConstructPluginLoader struct {
	PluginsFolder string
	PluginsProxy  string
	Validator     providers.IValidatorProvider
	Logger        common.ILoggerProvider
}

// Plugins loader.
type pluginLoader struct {
	pluginsFolder string
	pluginsProxy  string
	validator     providers.IValidatorProvider
	logger        common.ILoggerProvider

	loadedPlugins *cache.Cache
}

// NewPluginLoader creates a new plugins loader.
func NewPluginLoader(ctor *ConstructPluginLoader) providers.IPluginLoaderProvider {
	loc := ctor.PluginsFolder
	if "" == loc {
		loc = fmt.Sprintf("%s/plugins", GetCurrentWorkingDir())
	}

	loader := pluginLoader{
		pluginsFolder: loc,
		pluginsProxy:  ctor.PluginsProxy,
		validator:     ctor.Validator,
		loadedPlugins: cache.New(cache.NoExpiration, 0),
		logger:        ctor.Logger,
	}

	return &loader
}

// LoadPlugin loads requested plugin.
// Returns the plugin object which should be casted to request.ExpectedType.
//noinspection GoUnhandledErrorResult
func (l *pluginLoader) LoadPlugin(request *providers.PluginLoadRequest) (obj interface{}, err error) {
	pKey := getPluginKey(request.SystemType, request.PluginProvider)
	if method, ok := l.loadedPlugins.Get(pKey); ok {
		l.logger.Debug("Loading plugin from cache", common.LogSystemToken, logSystem, common.LogPluginToken, pKey)
		return l.loadPlugin(request, method.(func() (interface{}, interface{}, error)))
	}

	l.logger.Info("Loading plugin", common.LogSystemToken, logSystem, common.LogPluginToken, pKey)
	fileName := l.getActualFileName(pKey)
	defer func() {
		if recover() != nil {
			os.Remove(fileName) // nolint: gosec, errcheck
			l.logger.Error("Error opening plugin, corrupted? Removing the .so file",
				&ErrCorruptedPlugin{}, common.LogSystemToken, logSystem, common.LogPluginToken, pKey)
			obj = nil
			err = &ErrCorruptedPlugin{}
		}
	}()

	if _, err := os.Stat(fileName); err != nil {
		err = l.unpackFile(pKey, fileName)
		if err != nil {
			return nil, errors.Wrap(err, "plugin is not available")
		}
	}

	p, err := plugin.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "lib open failed")
	}

	loadSymbol, err := p.Lookup(PluginEntryPointMethodName)
	if err != nil {
		return nil, &ErrNoEntryPoint{}
	}

	loadMethod, ok := loadSymbol.(func() (interface{}, interface{}, error))
	if !ok {
		return nil, &ErrWrongSignature{}
	}

	l.loadedPlugins.Set(pKey, loadMethod, cache.NoExpiration)

	return l.loadPlugin(request, loadMethod)
}

// Internal plugin cache key.
func getPluginKey(subSystemType systems.SystemType, pluginName string) string {
	return fmt.Sprintf("%s/%s", subSystemType.String(), pluginName)
}

// Performs actual plugin load.
func (l *pluginLoader) loadPlugin(request *providers.PluginLoadRequest,
	loadMethod func() (interface{}, interface{}, error)) (interface{}, error) {
	pluginObject, settingsObject, err := loadMethod()
	if err != nil {
		return nil, errors.Wrap(err, "load call failed")
	}

	if nil == pluginObject || !reflect.TypeOf(pluginObject).AssignableTo(request.ExpectedType) {
		return nil, &ErrWrongInterface{}
	}

	if nil == request.RawConfig || nil == settingsObject {
		return pluginObject, nil
	}

	err = yaml.Unmarshal(request.RawConfig, settingsObject)
	if err != nil {
		return nil, errors.Wrap(err, "yaml un-marshal failed")
	}

	settingsInterface, ok := settingsObject.(common.ISettings)
	if !ok {
		return nil, &ErrWrongSettingsSignature{}
	}

	if !l.validator.Validate(settingsObject) {
		return nil, &ErrInvalidConfig{}
	}

	err = settingsInterface.Validate()
	if err != nil {
		return nil, errors.Wrap(err, "settings validate failed")
	}

	return pluginObject, nil
}

// Gets actual plugin name.
func (l *pluginLoader) getActualFileName(pluginKey string) string {
	actualVersion := ""
	if "" != Version {
		actualVersion = fmt.Sprintf("-%s", Version)
	}

	return fmt.Sprintf("%s/%s%s.so", l.pluginsFolder, pluginKey, actualVersion)
}

// Un-tars plugin archive, downloading it from the proxy if needed.
//noinspection GoUnhandledErrorResult
func (l *pluginLoader) unpackFile(pluginKey string, actualName string) error {
	archName := fmt.Sprintf("%s.tar.gz", actualName)
	if _, err := os.Stat(archName); err != nil {
		if "" == l.pluginsProxy {
			return &ErrPluginNotFound{Name: pluginKey}
		}

		err = l.downloadFile(pluginKey, archName)
		if err != nil {
			return err
		}
	}

	err := archiver.TarGz.Open(archName, filepath.Dir(actualName))
	if err != nil {
		l.logger.Error("Failed to un-tar a file", err, common.LogSystemToken, logSystem,
			common.LogPluginToken, pluginKey)
		return errors.Wrap(err, "un-tar failed")
	}

	return nil
}

// Downloads plugin archive from the proxy.
//noinspection GoUnhandledErrorResult
func (l *pluginLoader) downloadFile(pluginKey string, archName string) error {
	name := strings.Replace(pluginKey, "/", "_", -1)
	name = fmt.Sprintf("%s-%s.so.tar.gz", name, Version)
	url := fmt.Sprintf("%s/%s/%s", strings.TrimRight(l.pluginsProxy, "/"), Arch, name)

	l.logger.Info("Downloading file", common.LogSystemToken, logSystem,
		common.LogPluginToken, pluginKey, common.LogURLToken, url)
	err := os.MkdirAll(filepath.Dir(archName), os.ModePerm)
	if err != nil {
		return errors.Wrap(err, "mkdir failed")
	}

	client := http.Client{
		Timeout: downloadTimeout,
	}

	res, err := client.Get(url)
	if err != nil || res.StatusCode != http.StatusOK {
		if nil == err {
			res.Body.Close() // nolint: errcheck, gosec
		}
		l.logger.Error("Failed to download a file", &ErrDownload{}, common.LogSystemToken, logSystem,
			common.LogURLToken, url)
		return &ErrDownload{}
	}

	defer res.Body.Close() // nolint: errcheck
	out, err := os.Create(archName)
	if err != nil {
		return errors.Wrap(err, "archive create failed")
	}

	defer out.Close() // nolint: errcheck
	_, err = io.Copy(out, res.Body)
	if err != nil {
		os.Remove(archName) // nolint: gosec, errcheck
		return errors.Wrap(err, "copy file failed")
	}

	return nil
}
