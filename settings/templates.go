package settings

import (
	"bytes"
	"os"
	"text/template"

	"github.com/go-home-io/imager/plugins/common"
)

// Template engine provider.
type templateProvider struct {
	logger    common.ILoggerProvider
	functions template.FuncMap
}

// Contains data required for a new template.
type constructTemplate struct {
	Logger common.ILoggerProvider
}

// Constructs a new template engine.
func newTemplateProvider(ctor *constructTemplate) *templateProvider {
	provider := &templateProvider{
		logger: ctor.Logger,
	}

	provider.functions = template.FuncMap{
		"env": provider.getEnvVariable,
	}

	return provider
}

// Process applies template functions to allow reading from environment variables.
func (p *templateProvider) Process(rawFile []byte) ([]byte, error) {
	tpl, err := template.New("imager").Funcs(p.functions).Parse(string(rawFile))
	if err != nil {
		p.logger.Error("Failed to parse template", err, common.LogSystemToken, logSystem)
		return nil, err
	}

	b := bytes.Buffer{}
	if err = tpl.Execute(&b, nil); err != nil {
		p.logger.Error("Failed to execute template", err, common.LogSystemToken, logSystem)
		return nil, err
	}

	return b.Bytes(), nil
}

// Returns environment variable.
func (p *templateProvider) getEnvVariable(name string) string {
	p.logger.Debug("Template is requesting environment variable",
		common.LogFieldToken, name, common.LogSystemToken, logSystem)
	return os.Getenv(name)
}
