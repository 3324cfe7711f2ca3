// Package registry contains capability tables mapping device GUIDs to driver factories.
package registry

import (
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/plugins/imager/enums"
	"github.com/go-home-io/imager/providers"
)

// Entry pairs a device GUID with its driver factory.
type Entry struct {
	GUID    imager.GUID
	Factory imager.Factory
}

// ExtensionEntry pairs a family code with its extension factory.
type ExtensionEntry struct {
	Family  uint32
	Factory imager.ExtensionFactory
}

// ConstructRegistry has data required for a new registry.
type ConstructRegistry struct {
	Sensors        []Entry
	VirtualSensors []Entry
	Focusers       []Entry
	Flashes        []Entry
	Extensions     []ExtensionEntry
}

// Capability tables.
// Built once and never modified, so lookups are safe for concurrent use.
type registry struct {
	sensors    []Entry
	virtual    []Entry
	focusers   []Entry
	flashes    []Entry
	extensions []ExtensionEntry
}

// NewRegistry constructs a new immutable registry.
func NewRegistry(ctor *ConstructRegistry) providers.IRegistryProvider {
	return &registry{
		sensors:    copyEntries(ctor.Sensors),
		virtual:    copyEntries(ctor.VirtualSensors),
		focusers:   copyEntries(ctor.Focusers),
		flashes:    copyEntries(ctor.Flashes),
		extensions: append([]ExtensionEntry(nil), ctor.Extensions...),
	}
}

// FindFactory looks up a driver factory.
// Sensors are searched in the real table first, then in the virtual one if allowed.
// First match wins, later duplicates are shadowed.
func (r *registry) FindFactory(guid imager.GUID, class enums.DeviceClass,
	allowVirtual bool) (imager.Factory, bool) {
	switch class {
	case enums.ClassSensor:
		if f, ok := find(r.sensors, guid); ok {
			return f, true
		}

		if allowVirtual {
			return find(r.virtual, guid)
		}
	case enums.ClassFocuser:
		return find(r.focusers, guid)
	case enums.ClassFlash:
		return find(r.flashes, guid)
	}

	return nil, false
}

// DefaultVirtualSensor returns the first virtual sensor GUID.
// Returns 0 if there are no virtual sensors.
func (r *registry) DefaultVirtualSensor() imager.GUID {
	if 0 == len(r.virtual) {
		return 0
	}

	return r.virtual[0].GUID
}

// GetExtension creates a family extension.
func (r *registry) GetExtension(family uint32, minor uint32) (interface{}, error) {
	for _, v := range r.extensions {
		if v.Family == family {
			return v.Factory(minor)
		}
	}

	return nil, &ErrExtensionNotFound{Family: family}
}

// GUIDs returns registered GUIDs of the class, virtual sensors included.
func (r *registry) GUIDs(class enums.DeviceClass) []imager.GUID {
	var tables [][]Entry
	switch class {
	case enums.ClassSensor:
		tables = [][]Entry{r.sensors, r.virtual}
	case enums.ClassFocuser:
		tables = [][]Entry{r.focusers}
	case enums.ClassFlash:
		tables = [][]Entry{r.flashes}
	}

	result := make([]imager.GUID, 0)
	for _, t := range tables {
		for _, v := range t {
			result = append(result, v.GUID)
		}
	}

	return result
}

// IsVirtual checks whether GUID resolves to a virtual sensor.
func (r *registry) IsVirtual(guid imager.GUID) bool {
	if _, ok := find(r.sensors, guid); ok {
		return false
	}

	_, ok := find(r.virtual, guid)
	return ok
}

// Linear scan, first match wins.
func find(table []Entry, guid imager.GUID) (imager.Factory, bool) {
	for _, v := range table {
		if v.GUID == guid {
			return v.Factory, true
		}
	}

	return nil, false
}

func copyEntries(in []Entry) []Entry {
	return append([]Entry(nil), in...)
}
