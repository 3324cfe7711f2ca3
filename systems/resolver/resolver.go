// Package resolver expands requested imager GUIDs into concrete sub-device GUIDs.
package resolver

import (
	"github.com/go-home-io/imager/plugins/common"
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/plugins/imager/enums"
	"github.com/go-home-io/imager/providers"
	"github.com/go-home-io/imager/systems"
)

// Resolution contains concrete GUIDs for every sub-device.
// Zero focuser or flash GUID means the sub-device is not requested.
type Resolution struct {
	Sensor            imager.GUID
	Focuser           imager.GUID
	Flash             imager.GUID
	UseSensorDefaults bool
}

// ConstructResolver has data required for a new resolver.
type ConstructResolver struct {
	Logger      common.ILoggerProvider
	Topology    providers.ITopologyProvider
	Peripherals providers.IPeripheralProvider
	Registry    providers.IRegistryProvider
}

// Resolver expands auto-select slots and enumeration indexes.
type Resolver struct {
	logger      common.ILoggerProvider
	topology    providers.ITopologyProvider
	peripherals providers.IPeripheralProvider
	registry    providers.IRegistryProvider
}

// NewResolver constructs a new resolver.
func NewResolver(ctor *ConstructResolver) *Resolver {
	return &Resolver{
		logger:      ctor.Logger,
		topology:    ctor.Topology,
		peripherals: ctor.Peripherals,
		registry:    ctor.Registry,
	}
}

// Resolve expands requested GUID.
// Concrete GUIDs are returned as is with focuser and flash taken from sensor defaults.
func (r *Resolver) Resolve(requested imager.GUID) (*Resolution, error) {
	res := &Resolution{
		Sensor:            requested,
		UseSensorDefaults: true,
	}

	if requested == imager.SlotRear || requested == imager.SlotFront {
		if err := r.fromTopology(requested, res); err != nil {
			return nil, err
		}
	}

	if res.Sensor.IsSlot() {
		guid, err := r.fromEnumeration(requested)
		if err != nil {
			return nil, err
		}

		res.Sensor = guid
	}

	r.logger.Debug("Resolved imager", common.LogSystemToken, systems.SysImager.String(),
		common.LogGUIDToken, requested.String(), common.LogSensorToken, res.Sensor.String(),
		common.LogFocuserToken, res.Focuser.String(), common.LogFlashToken, res.Flash.String())

	return res, nil
}

// Walks board layout for devices at the slot position.
// Unavailable layout isn't an error, caller falls back to enumeration.
func (r *Resolver) fromTopology(slot imager.GUID, res *Resolution) error {
	if nil == r.topology {
		return nil
	}

	position := enums.Position(slot)
	layout, err := r.topology.Layout()
	if err != nil {
		r.logger.Debug("Board topology is not available, falling back to enumeration",
			common.LogSystemToken, systems.SysTopology.String(), common.LogErrorToken, err.Error())
		return nil
	}

	if 0 == len(layout) {
		r.logger.Debug("Board topology is empty, falling back to enumeration",
			common.LogSystemToken, systems.SysTopology.String())
		return nil
	}

	var sensor, focuser, flash *imager.TopologyEntry
	for _, v := range layout {
		if nil == v || v.Position != position {
			continue
		}

		switch v.Class {
		case enums.ClassSensor:
			if nil == sensor {
				sensor = v
			}
		case enums.ClassFocuser:
			if nil == focuser {
				focuser = v
			}
		case enums.ClassFlash:
			if nil == flash {
				flash = v
			}
		}
	}

	if nil == sensor {
		r.logger.Warn("No sensor at requested position", common.LogSystemToken, systems.SysTopology.String(),
			common.LogPositionToken, position.String())
		return &ErrNoDeviceAtPosition{Position: position}
	}

	res.Sensor = sensor.GUID
	if sensor.GUID > imager.SlotFront {
		res.UseSensorDefaults = false
	}

	if nil != focuser {
		res.Focuser = focuser.GUID
	}

	if nil != flash {
		res.Flash = flash.GUID
	}

	return nil
}

// Picks sensor by index from the peripheral database.
// Empty database selects the default virtual sensor.
func (r *Resolver) fromEnumeration(index imager.GUID) (imager.GUID, error) {
	var guids []imager.GUID
	if nil != r.peripherals {
		list, err := r.peripherals.Enumerate(enums.PeripheralImager, int(imager.MaxRealImagerGUID))
		if err != nil {
			r.logger.Warn("Failed to enumerate imagers", common.LogSystemToken, systems.SysPeripherals.String(),
				common.LogErrorToken, err.Error())
		} else {
			guids = list
		}
	}

	if len(guids) > int(imager.MaxRealImagerGUID) {
		guids = guids[:imager.MaxRealImagerGUID]
	}

	if 0 == len(guids) {
		def := r.registry.DefaultVirtualSensor()
		r.logger.Debug("No imagers found, using default virtual sensor", common.LogSystemToken,
			systems.SysImager.String(), common.LogSensorToken, def.String())
		return def, nil
	}

	if uint64(index) >= uint64(len(guids)) {
		return 0, &ErrNoSuchDeviceIndex{Index: int(index), Count: len(guids)}
	}

	return guids[index], nil
}

