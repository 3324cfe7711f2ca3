// Package topology contains board layout and peripheral database providers.
package topology

import (
	"io/ioutil"

	"github.com/go-home-io/imager/plugins/common"
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/providers"
	"github.com/go-home-io/imager/systems"
	"gopkg.in/yaml.v2"
)

// LayoutSettings describes board layout configuration.
// Layout file takes precedence over inline devices.
type LayoutSettings struct {
	File    string                  `yaml:"file"`
	Devices []*imager.TopologyEntry `yaml:"devices" validate:"dive"`
}

// ConstructLayout has data required for a new layout provider.
type ConstructLayout struct {
	Logger   common.ILoggerProvider
	Settings *LayoutSettings
}

// Board layout provider.
type layout struct {
	logger  common.ILoggerProvider
	file    string
	devices []*imager.TopologyEntry
}

// NewLayoutProvider constructs a new board layout provider.
func NewLayoutProvider(ctor *ConstructLayout) providers.ITopologyProvider {
	l := &layout{
		logger: ctor.Logger,
	}

	if nil != ctor.Settings {
		l.file = ctor.Settings.File
		l.devices = ctor.Settings.Devices
	}

	return l
}

// Layout returns declared devices.
// File is re-read on every call so board changes are picked up without restart.
func (l *layout) Layout() ([]*imager.TopologyEntry, error) {
	if "" == l.file {
		return copyLayout(l.devices), nil
	}

	data, err := ioutil.ReadFile(l.file)
	if err != nil {
		l.logger.Warn("Failed to read board layout", common.LogSystemToken, systems.SysTopology.String(),
			common.LogFileToken, l.file)
		return nil, &ErrLayoutFile{File: l.file, Err: err}
	}

	var devices []*imager.TopologyEntry
	if err := yaml.Unmarshal(data, &devices); err != nil {
		l.logger.Warn("Failed to parse board layout", common.LogSystemToken, systems.SysTopology.String(),
			common.LogFileToken, l.file)
		return nil, &ErrLayoutFile{File: l.file, Err: err}
	}

	return devices, nil
}

func copyLayout(devices []*imager.TopologyEntry) []*imager.TopologyEntry {
	result := make([]*imager.TopologyEntry, 0, len(devices))
	for _, v := range devices {
		if nil == v {
			continue
		}

		e := *v
		result = append(result, &e)
	}

	return result
}
