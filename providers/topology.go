package providers

import (
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/plugins/imager/enums"
)

// ITopologyProvider defines board layout source.
// Layout is queried on every auto-select and never cached.
type ITopologyProvider interface {
	Layout() ([]*imager.TopologyEntry, error)
}

// IPeripheralProvider defines peripheral database logic.
type IPeripheralProvider interface {
	Enumerate(class enums.PeripheralClass, max int) ([]imager.GUID, error)
}
