//+build !release

package mocks

import (
	"errors"

	"github.com/go-home-io/imager/providers"
)

type fakePluginLoader struct {
	returnObj map[string]interface{}
	requests  []*providers.PluginLoadRequest
}

func (f *fakePluginLoader) LoadPlugin(request *providers.PluginLoadRequest) (interface{}, error) {
	f.requests = append(f.requests, request)
	obj, ok := f.returnObj[request.PluginProvider]
	if !ok || nil == obj {
		return nil, errors.New("not found")
	}

	return obj, nil
}

// Requests returns all received load requests.
func (f *fakePluginLoader) Requests() []*providers.PluginLoadRequest {
	return f.requests
}

// FakeNewPluginLoader creates a fake plugin loader.
// Objects are returned by plugin provider name.
func FakeNewPluginLoader(returnObj map[string]interface{}) *fakePluginLoader {
	return &fakePluginLoader{
		returnObj: returnObj,
	}
}
