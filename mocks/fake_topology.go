//+build !release

package mocks

import (
	"errors"

	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/plugins/imager/enums"
)

type fakeTopology struct {
	layout []*imager.TopologyEntry
	fail   bool
	calls  int
}

// Layout returns configured layout or an error.
func (f *fakeTopology) Layout() ([]*imager.TopologyEntry, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("topology is not available")
	}

	return f.layout, nil
}

// Calls returns number of Layout invocations.
func (f *fakeTopology) Calls() int {
	return f.calls
}

// FakeNewTopology creates a fake board topology provider.
func FakeNewTopology(fail bool, layout ...*imager.TopologyEntry) *fakeTopology {
	return &fakeTopology{
		layout: layout,
		fail:   fail,
	}
}

type fakePeripherals struct {
	guids []imager.GUID
	fail  bool
}

// Enumerate returns configured imagers.
func (f *fakePeripherals) Enumerate(class enums.PeripheralClass, max int) ([]imager.GUID, error) {
	if f.fail {
		return nil, errors.New("peripheral database is not available")
	}

	if class != enums.PeripheralImager {
		return nil, nil
	}

	if len(f.guids) > max {
		return f.guids[:max], nil
	}

	return f.guids, nil
}

// FakeNewPeripherals creates a fake peripheral database.
func FakeNewPeripherals(fail bool, guids ...imager.GUID) *fakePeripherals {
	return &fakePeripherals{
		guids: guids,
		fail:  fail,
	}
}
