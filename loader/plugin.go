package loader

import (
	"plugin"

	"github.com/pkg/errors"
)

// Plugin opens driver artifacts built with -buildmode=plugin.
type Plugin struct{}

// Open maps the plugin at path. Symbols are resolved lazily by Lookup.
func (Plugin) Open(path string) (Artifact, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, err
	}
	return &pluginArtifact{path: path, plugin: p}, nil
}

type pluginArtifact struct {
	path   string
	plugin *plugin.Plugin
}

func (a *pluginArtifact) Lookup(symbol string) (any, error) {
	if a.plugin == nil {
		return nil, errors.Errorf("%s: artifact is closed", a.path)
	}
	return a.plugin.Lookup(symbol)
}

// Close drops the handle. The runtime keeps the plugin mapped for the
// life of the process.
func (a *pluginArtifact) Close() error {
	if a.plugin == nil {
		return errors.Errorf("%s: artifact already closed", a.path)
	}
	a.plugin = nil
	return nil
}
