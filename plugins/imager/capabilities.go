package imager

// CapabilitiesEnd marks the current layout of the capabilities record.
// Drivers must copy it into Capabilities.CapabilitiesEnd.
const CapabilitiesEnd uint32 = 0x3434<<16 | 2

// SensorInterface describes physical sensor connection.
type SensorInterface string

// Known sensor interfaces.
const (
	InterfaceParallel8  SensorInterface = "parallel8"
	InterfaceParallel10 SensorInterface = "parallel10"
	InterfaceSerialA    SensorInterface = "csi-a"
	InterfaceSerialB    SensorInterface = "csi-b"
	InterfaceHost       SensorInterface = "host"
)

// PixelType describes sensor output format.
type PixelType string

// Known pixel types.
const (
	PixelUYVY      PixelType = "uyvy"
	PixelYUYV      PixelType = "yuyv"
	PixelBayerRGGB PixelType = "bayer_rggb"
	PixelBayerBGGR PixelType = "bayer_bggr"
	PixelBayerGRBG PixelType = "bayer_grbg"
	PixelBayerGBRG PixelType = "bayer_gbrg"
	PixelR8G8B8    PixelType = "r8g8b8"
	PixelR10G10B10 PixelType = "r10g10b10"
	PixelUnknown   PixelType = "unknown"
)

// Direction describes where sensor is facing.
type Direction string

// Known directions.
const (
	DirectionAway   Direction = "away"
	DirectionToward Direction = "toward"
)

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Point is a pixel coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Range is an inclusive limits pair.
type Range struct {
	Min int32 `yaml:"min"`
	Max int32 `yaml:"max"`
}

// ClockProfile describes supported input clock.
type ClockProfile struct {
	ExternalClockKHz uint32
	ClockMultiplier  float32
}

// Capabilities contains information about imager hardware.
// Sensor fills the record first, focuser and flash contribute in place.
type Capabilities struct {
	Identifier         string
	SensorInterface    SensorInterface
	PixelTypes         []PixelType
	Orientation        int
	Direction          Direction
	InitialClockKHz    uint32
	ClockProfiles      []ClockProfile
	MinimumBlank       Size
	PreferredModeIndex int

	FocuserGUID GUID
	FlashGUID   GUID

	FocuserRange          Range
	FlashLevels           uint32
	FlashControlEnabled   bool
	AdjustableFlashTiming bool
	IsHDRSensor           bool

	CapabilitiesEnd uint32
}

// ModeType describes sensor mode purpose.
type ModeType string

// Known mode types.
const (
	ModePreview ModeType = "preview"
	ModeStill   ModeType = "still"
	ModeVideo   ModeType = "video"
)

// SensorMode describes one sensor output mode.
type SensorMode struct {
	ActiveDimensions Size
	ActiveStart      Point
	PeakFrameRate    float32
	PixelAspectRatio float32
	PLLMultiplier    float32
	LineLength       uint32
	Type             ModeType
}

// SetModeParameters contains requested sensor mode.
type SetModeParameters struct {
	Resolution Size
	Exposure   float32
	Gains      [4]float32
}

// StaticProperties contains imager properties which never change while it is opened.
type StaticProperties struct {
	Capabilities Capabilities
	SensorModes  []SensorMode

	FocuserAvailable      bool
	FocalLengths          []float32
	Apertures             []float32
	FlashAvailable        bool
	FlashChargeDurationUS uint32
	AvailableLeds         []uint32
	FocuserPositions      Range
}

// StereoCameraMode describes which cameras of a stereo pair are streaming.
type StereoCameraMode int

// Known stereo modes.
const (
	StereoModeLeftOnly StereoCameraMode = iota
	StereoModeRightOnly
	StereoModeStereo
)
