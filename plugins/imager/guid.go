// Package imager contains contracts for camera sub-device drivers.
package imager

import (
	"fmt"
	"strconv"
	"strings"
)

// GUID is an opaque 64-bit device identifier.
// Concrete devices conventionally use eight packed ASCII characters.
type GUID uint64

const (
	// MaxRealImagerGUID is the first value naming a concrete device.
	// Lower values are auto-select slots or enumeration indexes.
	MaxRealImagerGUID GUID = 10

	guidBytes = 8
)

// Auto-select slots.
const (
	// SlotRear selects the rear camera.
	SlotRear GUID = 0
	// SlotFront selects the front camera.
	SlotFront GUID = 1
)

var (
	// GUIDNullYUV is the default virtual sensor.
	GUIDNullYUV = NewGUID("NVIMGNYV")
	// GUIDNullBayer is the virtual Bayer sensor.
	GUIDNullBayer = NewGUID("NVIMGNBR")
	// GUIDHost is the virtual host sensor.
	GUIDHost = NewGUID("NVIMGHST")
	// GUIDNullCSIA is the virtual sensor on CSI port A.
	GUIDNullCSIA = NewGUID("NVIMGNCA")
	// GUIDNullCSIB is the virtual sensor on CSI port B.
	GUIDNullCSIB = NewGUID("NVIMGNCB")
	// GUIDTestPatternABayer is the test-pattern A Bayer sensor.
	GUIDTestPatternABayer = NewGUID("NVIMGTAB")
	// GUIDTestPatternARGB is the test-pattern A RGB sensor.
	GUIDTestPatternARGB = NewGUID("NVIMGTAR")
	// GUIDTestPatternBBayer is the test-pattern B Bayer sensor.
	GUIDTestPatternBBayer = NewGUID("NVIMGTBB")
	// GUIDTestPatternBRGB is the test-pattern B RGB sensor.
	GUIDTestPatternBRGB = NewGUID("NVIMGTBR")

	// FocuserSharesSensorGUID is a focuser identifier for focusers driven
	// through the sensor's own device. The factory registered under it is
	// bound, but the sub-device receives GUID 0.
	FocuserSharesSensorGUID = NewGUID("NVCFOCUS")
)

// NewGUID packs up to eight ASCII characters into a GUID.
// First character lands in the most significant byte.
func NewGUID(tag string) GUID {
	var g GUID
	for ii := 0; ii < guidBytes; ii++ {
		g <<= 8
		if ii < len(tag) {
			g |= GUID(tag[ii])
		}
	}

	return g
}

// IsSlot checks whether value is an auto-select slot or enumeration index.
func (g GUID) IsSlot() bool {
	return g < MaxRealImagerGUID
}

// String renders GUID as a decimal index, an ASCII tag or hex.
// Tags which would parse back into another value are rendered as hex.
func (g GUID) String() string {
	if g.IsSlot() {
		return strconv.FormatUint(uint64(g), 10)
	}

	buf := make([]byte, guidBytes)
	for ii := 0; ii < guidBytes; ii++ {
		buf[ii] = byte(g >> uint(8*(guidBytes-1-ii)))
	}

	tag := strings.TrimRight(string(buf), "\x00")
	if parsed, err := ParseGUID(tag); err == nil && parsed == g {
		return tag
	}

	return fmt.Sprintf("0x%016x", uint64(g))
}

// MarshalYAML implements the yaml.Marshaler interface.
func (g GUID) MarshalYAML() (interface{}, error) {
	return g.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (g *GUID) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	parsed, err := ParseGUID(s)
	if err != nil {
		return err
	}

	*g = parsed
	return nil
}

// ParseGUID accepts decimal, 0x-prefixed hex or an ASCII tag up to eight characters long.
func ParseGUID(s string) (GUID, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return 0, &ErrInvalidGUID{Value: s}
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "0x") {
		v, err := strconv.ParseUint(lower[2:], 16, 64)
		if err != nil {
			return 0, &ErrInvalidGUID{Value: s}
		}
		return GUID(v), nil
	}

	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return GUID(v), nil
	}

	if len(s) > guidBytes || !isPrintable(s) {
		return 0, &ErrInvalidGUID{Value: s}
	}

	return NewGUID(s), nil
}

func isPrintable(s string) bool {
	if "" == s {
		return false
	}

	for _, c := range []byte(s) {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}

	return true
}
