package utils

import (
	"testing"

	"github.com/go-home-io/imager/mocks"
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/stretchr/testify/assert"
)

type testStruct struct {
	GUID   imager.GUID `validate:"guid"`
	Plugin string      `validate:"required" default:"null"`
}

// Tests success validation
func TestSuccessValidation(t *testing.T) {
	in := []*testStruct{
		{
			GUID: imager.NewGUID("SENSOR01"),
		},
		{
			GUID:   imager.MaxRealImagerGUID,
			Plugin: "ov5650",
		},
	}

	validator := NewValidator(mocks.FakeNewLogger(nil))
	for _, v := range in {
		assert.True(t, validator.Validate(v), v.GUID.String())
	}

	assert.Equal(t, "null", in[0].Plugin)
}

// Tests validation without pointer.
func TestNotPointer(t *testing.T) {
	validator := NewValidator(mocks.FakeNewLogger(nil))
	d := testStruct{
		GUID: imager.NewGUID("SENSOR01"),
	}

	assert.False(t, validator.Validate(d))
}

// Tests incorrect data
func TestFailedValidation(t *testing.T) {
	in := []*testStruct{
		{
			GUID: imager.SlotRear,
		},
		{
			GUID: imager.SlotFront,
		},
		{
			GUID: imager.MaxRealImagerGUID - 1,
		},
	}

	validator := NewValidator(mocks.FakeNewLogger(nil))
	for k, v := range in {
		assert.False(t, validator.Validate(v), "%d", k)
	}
}
