package providers

import (
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/plugins/imager/enums"
)

// IRegistryProvider defines capability table lookups.
type IRegistryProvider interface {
	imager.IExtensionLookup
	FindFactory(guid imager.GUID, class enums.DeviceClass, allowVirtual bool) (imager.Factory, bool)
	DefaultVirtualSensor() imager.GUID
	GUIDs(class enums.DeviceClass) []imager.GUID
	IsVirtual(guid imager.GUID) bool
}
