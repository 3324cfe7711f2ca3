package virtual

import (
	"github.com/go-home-io/imager/plugins/imager"
)

// Output family reported by a null sensor.
// Only Bayer sensors claim ISP support.
type pixelFamily int

const (
	familyYUV pixelFamily = iota
	familyBayer
	familyRGB
)

// Static description of one virtual sensor.
type profile struct {
	guid   imager.GUID
	family pixelFamily
	stereo bool
	caps   imager.Capabilities
}

const (
	nullClockKHz = 120000

	exposureMin  float32 = 1
	exposureMax  float32 = 1
	gainMin      float32 = 1
	gainMax      float32 = 16
	frameRateMin float32 = 1
	frameRateMax float32 = 1
	focusMin     int32   = 0
	focusMax     int32   = 8

	stereoPadding = 20
)

var defaultMode = imager.SensorMode{
	ActiveDimensions: imager.Size{Width: 4000, Height: 3000},
	PeakFrameRate:    30,
	PixelAspectRatio: 1,
	PLLMultiplier:    20,
	LineLength:       4000,
	Type:             imager.ModePreview,
}

func nullCaps(identifier string, iface imager.SensorInterface, blank imager.Size,
	pixels ...imager.PixelType) imager.Capabilities {
	return imager.Capabilities{
		Identifier:      identifier,
		SensorInterface: iface,
		PixelTypes:      pixels,
		Direction:       imager.DirectionAway,
		InitialClockKHz: nullClockKHz,
		ClockProfiles:   []imager.ClockProfile{{ExternalClockKHz: nullClockKHz, ClockMultiplier: 1}},
		MinimumBlank:    blank,
		CapabilitiesEnd: imager.CapabilitiesEnd,
	}
}

var (
	noBlank      = imager.Size{}
	patternBlank = imager.Size{Width: 32, Height: 24}
)

// Order matters: the first profile is the default virtual sensor.
var profiles = []*profile{
	{
		guid:   imager.GUIDNullYUV,
		family: familyYUV,
		caps: nullCaps("Null YUV Sensor", imager.InterfaceParallel8, noBlank,
			imager.PixelUYVY, imager.PixelYUYV),
	},
	{
		guid:   imager.GUIDNullBayer,
		family: familyBayer,
		caps: nullCaps("Null Bayer Sensor", imager.InterfaceParallel10, patternBlank,
			imager.PixelBayerRGGB, imager.PixelBayerBGGR, imager.PixelBayerGBRG, imager.PixelBayerGRBG),
	},
	{
		guid:   imager.GUIDHost,
		family: familyYUV,
		caps:   nullCaps("Host Sensor", imager.InterfaceHost, noBlank, imager.PixelUYVY),
	},
	{
		guid:   imager.GUIDNullCSIA,
		family: familyBayer,
		stereo: true,
		caps:   nullCaps("Null CSIA Sensor", imager.InterfaceSerialA, noBlank, imager.PixelBayerRGGB),
	},
	{
		guid:   imager.GUIDNullCSIB,
		family: familyBayer,
		stereo: true,
		caps:   nullCaps("Null CSIB Sensor", imager.InterfaceSerialB, noBlank, imager.PixelBayerRGGB),
	},
	{
		guid:   imager.GUIDTestPatternABayer,
		family: familyBayer,
		caps:   nullCaps("Null TPGA Bayer Sensor", imager.InterfaceSerialA, patternBlank, imager.PixelBayerRGGB),
	},
	{
		guid:   imager.GUIDTestPatternARGB,
		family: familyRGB,
		caps:   nullCaps("Null TPGA Rgb Sensor", imager.InterfaceSerialA, patternBlank, imager.PixelR8G8B8),
	},
	{
		guid:   imager.GUIDTestPatternBBayer,
		family: familyBayer,
		caps:   nullCaps("Null TPGB Bayer Sensor", imager.InterfaceSerialB, patternBlank, imager.PixelBayerRGGB),
	},
	{
		guid:   imager.GUIDTestPatternBRGB,
		family: familyRGB,
		caps:   nullCaps("Null TPGB Rgb Sensor", imager.InterfaceSerialB, patternBlank, imager.PixelR8G8B8),
	},
}
