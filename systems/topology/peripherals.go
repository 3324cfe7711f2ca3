package topology

import (
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/plugins/imager/enums"
	"github.com/go-home-io/imager/providers"
)

// PeripheralEntry describes one attached peripheral.
type PeripheralEntry struct {
	GUID  imager.GUID           `yaml:"guid" validate:"required"`
	Class enums.PeripheralClass `yaml:"class"`
}

// Static peripheral list.
type peripheralList struct {
	devices []PeripheralEntry
}

// NewPeripheralList constructs a peripheral provider backed by a fixed list.
func NewPeripheralList(devices []PeripheralEntry) providers.IPeripheralProvider {
	return &peripheralList{
		devices: append([]PeripheralEntry(nil), devices...),
	}
}

// Enumerate returns up to max GUIDs of the class in declaration order.
func (p *peripheralList) Enumerate(class enums.PeripheralClass, max int) ([]imager.GUID, error) {
	if max <= 0 {
		return nil, &ErrInvalidMax{Max: max}
	}

	result := make([]imager.GUID, 0)
	for _, v := range p.devices {
		if v.Class != class {
			continue
		}

		result = append(result, v.GUID)
		if len(result) == max {
			break
		}
	}

	return result, nil
}
