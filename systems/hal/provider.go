// Package hal composes sensor, focuser and flash drivers into imagers.
package hal

import (
	"github.com/go-home-io/imager/plugins/common"
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/plugins/imager/enums"
	"github.com/go-home-io/imager/providers"
	"github.com/go-home-io/imager/systems"
	"github.com/go-home-io/imager/systems/logger"
	"github.com/go-home-io/imager/systems/resolver"
)

// ConstructImagerProvider has data required for a new imager provider.
type ConstructImagerProvider struct {
	Logger   common.ILoggerProvider
	Registry providers.IRegistryProvider
	Resolver *resolver.Resolver
}

// Imager provider implementation.
type provider struct {
	logger   common.ILoggerProvider
	registry providers.IRegistryProvider
	resolver *resolver.Resolver
}

// NewImagerProvider constructs a new imager provider.
func NewImagerProvider(ctor *ConstructImagerProvider) providers.IImagerProvider {
	return &provider{
		logger:   ctor.Logger,
		registry: ctor.Registry,
		resolver: ctor.Resolver,
	}
}

// Open resolves requested GUID and composes an imager.
func (p *provider) Open(guid imager.GUID) (providers.IImager, error) {
	res, err := p.resolver.Resolve(guid)
	if err != nil {
		p.logger.Error("Failed to resolve imager", err, common.LogSystemToken, systems.SysImager.String(),
			common.LogGUIDToken, guid.String())
		return nil, err
	}

	return p.OpenExpanded(res.Sensor, res.Focuser, res.Flash, res.UseSensorDefaults)
}

// OpenExpanded composes an imager from concrete GUIDs.
// Sensor is opened first, then focuser, then flash.
// Nothing stays opened if the call fails.
func (p *provider) OpenExpanded(sensorGUID imager.GUID, focuserGUID imager.GUID,
	flashGUID imager.GUID, useDefaults bool) (providers.IImager, error) {
	img, err := p.compose(sensorGUID, focuserGUID, flashGUID, useDefaults)
	if err != nil {
		p.logger.Error("Failed to open imager", err, common.LogSystemToken, systems.SysImager.String(),
			common.LogSensorToken, sensorGUID.String())
		return nil, err
	}

	p.logger.Info("Imager is opened", common.LogSystemToken, systems.SysImager.String(),
		common.LogSensorToken, img.sensorGUID.String(), common.LogFocuserToken, img.FocuserGUID().String(),
		common.LogFlashToken, img.FlashGUID().String())
	return img, nil
}

// Performs actual composition.
func (p *provider) compose(sensorGUID imager.GUID, focuserGUID imager.GUID,
	flashGUID imager.GUID, useDefaults bool) (*Imager, error) {
	factory, ok := p.registry.FindFactory(sensorGUID, enums.ClassSensor, true)
	if !ok {
		return nil, &ErrSensorNotFound{GUID: sensorGUID}
	}

	data := p.initData(enums.ClassSensor, sensorGUID, nil)
	dev, err := bind(factory, data)
	if err != nil {
		return nil, &ErrBindFailed{Class: enums.ClassSensor, GUID: sensorGUID, Err: err}
	}

	sensor, ok := dev.(imager.ISensor)
	if !ok {
		return nil, &ErrBindFailed{Class: enums.ClassSensor, GUID: sensorGUID, Err: &ErrNotSensor{}}
	}

	data.GUID = sensorGUID
	if err := sensor.Open(); err != nil {
		return nil, &ErrOpenFailed{Class: enums.ClassSensor, GUID: sensorGUID, Err: err}
	}

	img := &Imager{
		logger:     p.logger,
		sensor:     sensor,
		sensorGUID: sensorGUID,
	}

	caps := &imager.Capabilities{}
	sensor.GetCapabilities(caps)
	if useDefaults {
		focuserGUID = caps.FocuserGUID
		flashGUID = caps.FlashGUID
	}

	if 0 != focuserGUID {
		if err := p.attachFocuser(img, focuserGUID); err != nil {
			img.Close()
			return nil, err
		}
	}

	if 0 != flashGUID {
		if err := p.attachFlash(img, flashGUID); err != nil {
			img.Close()
			return nil, err
		}
	}

	return img, nil
}

// Binds and opens focuser. Every failure is fatal for the imager.
func (p *provider) attachFocuser(img *Imager, guid imager.GUID) error {
	factory, ok := p.registry.FindFactory(guid, enums.ClassFocuser, false)
	if !ok {
		return &ErrFocuserNotFound{GUID: guid}
	}

	data := p.initData(enums.ClassFocuser, guid, img.sensor)
	dev, err := bind(factory, data)
	if err != nil {
		return &ErrBindFailed{Class: enums.ClassFocuser, GUID: guid, Err: err}
	}

	if guid == imager.FocuserSharesSensorGUID {
		data.GUID = 0
	} else {
		data.GUID = guid
	}

	if err := dev.Open(); err != nil {
		return &ErrOpenFailed{Class: enums.ClassFocuser, GUID: guid, Err: err}
	}

	img.focuser = dev
	img.focuserGUID = data.GUID
	return nil
}

// Binds and opens flash.
// Open failure leaves imager without flash, lookup and bind failures are fatal.
func (p *provider) attachFlash(img *Imager, guid imager.GUID) error {
	factory, ok := p.registry.FindFactory(guid, enums.ClassFlash, false)
	if !ok {
		return &ErrFlashNotFound{GUID: guid}
	}

	data := p.initData(enums.ClassFlash, guid, img.sensor)
	dev, err := bind(factory, data)
	if err != nil {
		return &ErrBindFailed{Class: enums.ClassFlash, GUID: guid, Err: err}
	}

	data.GUID = guid
	if err := dev.Open(); err != nil {
		p.logger.Warn("Failed to open flash, continuing without it", common.LogSystemToken,
			systems.SysFlash.String(), common.LogFlashToken, guid.String(), common.LogErrorToken, err.Error())
		return nil
	}

	img.flash = dev
	img.flashGUID = guid
	return nil
}

// Prepares binding data with a logger scoped to the sub-device.
// GUID is filled after binding.
func (p *provider) initData(class enums.DeviceClass, guid imager.GUID, sensor imager.ISensor) *imager.InitDataSubdevice {
	return &imager.InitDataSubdevice{
		Logger: logger.NewPluginLogger(&logger.ConstructPluginLogger{
			SystemLogger: p.logger,
			System:       class.String(),
			Provider:     guid.String(),
		}),
		Class:      class,
		Extensions: p.registry,
		Sensor:     sensor,
	}
}

// Invokes driver factory.
func bind(factory imager.Factory, data *imager.InitDataSubdevice) (dev imager.ISubdevice, err error) {
	defer func() {
		if r := recover(); r != nil {
			dev = nil
			err = &ErrBindPanic{Value: r}
		}
	}()

	dev, err = factory(data)
	if err != nil {
		return nil, err
	}

	if nil == dev {
		return nil, &ErrNoDevice{}
	}

	return dev, nil
}
