package imager

import "github.com/go-home-io/imager/plugins/imager/enums"

// TopologyEntry describes one camera device declared by board layout.
type TopologyEntry struct {
	GUID     GUID              `yaml:"guid" validate:"required"`
	Class    enums.DeviceClass `yaml:"class"`
	Position enums.Position    `yaml:"position"`
}
