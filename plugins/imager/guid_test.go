package imager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

// Tests GUID packing.
func TestNewGUID(t *testing.T) {
	assert.Equal(t, GUID(0x4E56494D474E5956), GUIDNullYUV)
	assert.Equal(t, GUID(0x4142000000000000), NewGUID("AB"))
	assert.Equal(t, NewGUID("ABCDEFGH"), NewGUID("ABCDEFGHIJ"))
}

// Tests slots detection.
func TestGUIDIsSlot(t *testing.T) {
	assert.True(t, SlotRear.IsSlot())
	assert.True(t, SlotFront.IsSlot())
	assert.True(t, GUID(9).IsSlot())
	assert.False(t, MaxRealImagerGUID.IsSlot())
	assert.False(t, GUIDHost.IsSlot())
}

// Tests GUID rendering.
func TestGUIDString(t *testing.T) {
	data := []struct {
		guid GUID
		out  string
	}{
		{SlotFront, "1"},
		{GUIDNullBayer, "NVIMGNBR"},
		{NewGUID("AB"), "AB"},
		{GUID(0x100), "0x0000000000000100"},
		{FocuserSharesSensorGUID, "NVCFOCUS"},
	}

	for _, v := range data {
		assert.Equal(t, v.out, v.guid.String())
	}
}

// Tests GUID parsing.
func TestParseGUID(t *testing.T) {
	data := []struct {
		in   string
		guid GUID
	}{
		{"0", SlotRear},
		{"7", GUID(7)},
		{"0x100", GUID(0x100)},
		{" NVIMGHST ", GUIDHost},
		{"AB", NewGUID("AB")},
	}

	for _, v := range data {
		g, err := ParseGUID(v.in)
		require.NoError(t, err, v.in)
		assert.Equal(t, v.guid, g, v.in)
	}

	for _, v := range []string{"", "0xZZ", "TOOLONGTAG", "a\tb"} {
		_, err := ParseGUID(v)
		assert.IsType(t, &ErrInvalidGUID{}, err, v)
	}
}

// Tests that rendered GUIDs parse back.
func TestGUIDRoundTrip(t *testing.T) {
	data := []GUID{
		SlotFront,
		GUIDTestPatternBRGB,
		GUID(0x100),
		GUID(0xFFFFFFFFFFFFFFFF),
		NewGUID("12345678"),
		NewGUID("0x1F"),
		NewGUID("CAM     "),
		NewGUID(" NVIMG"),
		NewGUID("A\x00B"),
	}

	for _, v := range data {
		g, err := ParseGUID(v.String())
		require.NoError(t, err, v.String())
		assert.Equal(t, v, g, v.String())
	}
}

// Tests that ambiguous tags are rendered as hex.
func TestGUIDStringAmbiguousTag(t *testing.T) {
	assert.Equal(t, "0x3132333435363738", NewGUID("12345678").String())
	assert.Equal(t, "0x3078314600000000", NewGUID("0x1F").String())
	assert.Equal(t, "0x43414d2020202020", NewGUID("CAM     ").String())
	assert.Equal(t, "0x204e56494d470000", NewGUID(" NVIMG").String())
}

// Tests yaml conversions of topology entries.
func TestTopologyEntryYaml(t *testing.T) {
	entry := &TopologyEntry{}
	require.NoError(t, yaml.Unmarshal([]byte("guid: NVIMGNCA\nclass: sensor\nposition: front\n"), entry))
	assert.Equal(t, GUIDNullCSIA, entry.GUID)

	out, err := yaml.Marshal(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), "guid: NVIMGNCA")

	assert.Error(t, yaml.Unmarshal([]byte("guid: \"\"\n"), entry))
}
