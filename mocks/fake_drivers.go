//+build !release

package mocks

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/plugins/imager/enums"
)

// FakeJournal records calls made to fake drivers.
// One journal is usually shared by every driver of a test.
type FakeJournal struct {
	sync.Mutex
	calls  []string
	opened int
	closed int
}

// FakeNewJournal creates a new calls journal.
func FakeNewJournal() *FakeJournal {
	return &FakeJournal{}
}

func (j *FakeJournal) record(name string, method string) {
	j.Lock()
	defer j.Unlock()

	j.calls = append(j.calls, fmt.Sprintf("%s.%s", name, method))
	switch method {
	case "Open":
		j.opened++
	case "Close":
		j.closed++
	}
}

// Calls returns all recorded calls.
func (j *FakeJournal) Calls() []string {
	j.Lock()
	defer j.Unlock()
	return append([]string(nil), j.calls...)
}

// CallsTo returns calls recorded for the named driver.
func (j *FakeJournal) CallsTo(name string) []string {
	result := make([]string, 0)
	for _, v := range j.Calls() {
		if strings.HasPrefix(v, name+".") {
			result = append(result, v)
		}
	}

	return result
}

// Live returns number of successfully opened and not yet closed devices.
func (j *FakeJournal) Live() int {
	j.Lock()
	defer j.Unlock()
	return j.opened - j.closed
}

// Reset clears the journal.
func (j *FakeJournal) Reset() {
	j.Lock()
	defer j.Unlock()
	j.calls = nil
	j.opened = 0
	j.closed = 0
}

// FakeDriver produces fake sub-devices and keeps every bound instance.
type FakeDriver struct {
	Name     string
	Journal  *FakeJournal
	Caps     imager.Capabilities
	FailBind  bool
	FailOpen  bool
	FailPower bool
	ISP       bool

	Bound []*FakeSubdevice
}

// FakeSubdevice is a recording focuser or flash driver.
type FakeSubdevice struct {
	Data    *imager.InitDataSubdevice
	Params  map[enums.Parameter]interface{}
	Power   enums.PowerLevel
	IsOpen  bool
	driver  *FakeDriver
	openErr error
}

// FakeSensor is a recording sensor driver.
type FakeSensor struct {
	*FakeSubdevice
	mode imager.SensorMode
}

// FakeISPSensor is a recording sensor driver with ISP support.
type FakeISPSensor struct {
	*FakeSensor
}

// Factory returns a factory binding focusers and flashes.
func (d *FakeDriver) Factory() imager.Factory {
	return func(data *imager.InitDataSubdevice) (imager.ISubdevice, error) {
		dev, err := d.bind(data)
		if err != nil {
			return nil, err
		}
		return dev, nil
	}
}

// SensorFactory returns a factory binding sensors.
func (d *FakeDriver) SensorFactory() imager.Factory {
	return func(data *imager.InitDataSubdevice) (imager.ISubdevice, error) {
		dev, err := d.bind(data)
		if err != nil {
			return nil, err
		}

		sensor := &FakeSensor{
			FakeSubdevice: dev,
			mode: imager.SensorMode{
				ActiveDimensions: imager.Size{Width: 640, Height: 480},
				PeakFrameRate:    30,
				PixelAspectRatio: 1,
				Type:             imager.ModePreview,
			},
		}

		if d.ISP {
			return &FakeISPSensor{FakeSensor: sensor}, nil
		}

		return sensor, nil
	}
}

// Last returns most recently bound instance.
func (d *FakeDriver) Last() *FakeSubdevice {
	if 0 == len(d.Bound) {
		return nil
	}

	return d.Bound[len(d.Bound)-1]
}

func (d *FakeDriver) bind(data *imager.InitDataSubdevice) (*FakeSubdevice, error) {
	d.Journal.record(d.Name, "Bind")
	if d.FailBind {
		return nil, errors.New("bind failed")
	}

	dev := &FakeSubdevice{
		Data:   data,
		Params: make(map[enums.Parameter]interface{}),
		driver: d,
	}

	if d.FailOpen {
		dev.openErr = errors.New("open failed")
	}

	d.Bound = append(d.Bound, dev)
	return dev, nil
}

// Open records the call and fails if configured.
func (s *FakeSubdevice) Open() error {
	if s.openErr != nil {
		s.driver.Journal.record(s.driver.Name, "OpenFailed")
		return s.openErr
	}

	s.driver.Journal.record(s.driver.Name, "Open")
	s.IsOpen = true
	return nil
}

// Close records the call.
func (s *FakeSubdevice) Close() {
	s.driver.Journal.record(s.driver.Name, "Close")
	s.IsOpen = false
}

// GetCapabilities overwrites the record for sensors and contributes for others.
func (s *FakeSubdevice) GetCapabilities(caps *imager.Capabilities) {
	s.driver.Journal.record(s.driver.Name, "GetCapabilities")
	switch s.Data.Class {
	case enums.ClassSensor:
		*caps = s.driver.Caps
	case enums.ClassFocuser:
		caps.FocuserRange = s.driver.Caps.FocuserRange
	case enums.ClassFlash:
		caps.FlashLevels = s.driver.Caps.FlashLevels
	}
}

// SetPowerLevel records the call and fails if configured.
func (s *FakeSubdevice) SetPowerLevel(level enums.PowerLevel) error {
	s.driver.Journal.record(s.driver.Name, "SetPowerLevel")
	if s.driver.FailPower {
		return errors.New("power failed")
	}

	s.Power = level
	return nil
}

// SetParameter stores the value.
func (s *FakeSubdevice) SetParameter(param enums.Parameter, value interface{}) error {
	s.driver.Journal.record(s.driver.Name, "SetParameter")
	s.Params[param] = value
	return nil
}

// GetParameter copies stored value into the destination pointer.
func (s *FakeSubdevice) GetParameter(param enums.Parameter, value interface{}) error {
	s.driver.Journal.record(s.driver.Name, "GetParameter")
	stored, ok := s.Params[param]
	if !ok {
		return &imager.ErrUnsupportedParameter{Param: param}
	}

	dst := reflect.ValueOf(value)
	if dst.Kind() != reflect.Ptr || dst.IsNil() || dst.Elem().Type() != reflect.TypeOf(stored) {
		return &imager.ErrParameterType{Param: param, Value: value}
	}

	dst.Elem().Set(reflect.ValueOf(stored))
	return nil
}

// StaticQuery contributes fake static properties.
func (s *FakeSubdevice) StaticQuery(props *imager.StaticProperties) error {
	s.driver.Journal.record(s.driver.Name, "StaticQuery")
	switch s.Data.Class {
	case enums.ClassSensor:
		props.Capabilities = s.driver.Caps
	case enums.ClassFocuser:
		props.FocalLengths = []float32{4.5}
		props.FocuserPositions = s.driver.Caps.FocuserRange
	case enums.ClassFlash:
		props.FlashChargeDurationUS = 100
	}

	return nil
}

// ListModes returns single fake mode.
func (s *FakeSensor) ListModes() []imager.SensorMode {
	s.driver.Journal.record(s.driver.Name, "ListModes")
	return []imager.SensorMode{s.mode}
}

// SetMode accepts any resolution.
func (s *FakeSensor) SetMode(params *imager.SetModeParameters) (*imager.SensorMode, *imager.SetModeParameters, error) {
	s.driver.Journal.record(s.driver.Name, "SetMode")
	s.mode.ActiveDimensions = params.Resolution
	mode := s.mode
	result := *params
	return &mode, &result, nil
}

// GetPowerLevel returns last set power level.
func (s *FakeSensor) GetPowerLevel() enums.PowerLevel {
	s.driver.Journal.record(s.driver.Name, "GetPowerLevel")
	return s.Power
}

// ISPStaticQuery records the call.
func (s *FakeISPSensor) ISPStaticQuery(interface{}) error {
	s.driver.Journal.record(s.driver.Name, "ISPStaticQuery")
	return nil
}

// ISPControlQuery records the call.
func (s *FakeISPSensor) ISPControlQuery(interface{}) error {
	s.driver.Journal.record(s.driver.Name, "ISPControlQuery")
	return nil
}

// ISPDynamicQuery records the call.
func (s *FakeISPSensor) ISPDynamicQuery(interface{}) error {
	s.driver.Journal.record(s.driver.Name, "ISPDynamicQuery")
	return nil
}
