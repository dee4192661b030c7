package logger

import (
	"github.com/philipp01105/mysyslog/core"
	"github.com/philipp01105/mysyslog/driver"
	"github.com/philipp01105/mysyslog/formatter"
	"github.com/philipp01105/mysyslog/loader"
)

// BuiltinLoader returns a loader serving the compiled-in text and JSON
// drivers. The Formatter field of cfg is ignored; each driver gets its
// own formatter built from fcfg.
func BuiltinLoader(cfg driver.Config, fcfg formatter.Config) *loader.Builtin {
	textCfg, jsonCfg := cfg, cfg
	textCfg.Formatter = formatter.NewTextFormatter(fcfg)
	jsonCfg.Formatter = formatter.NewJSONFormatter(fcfg)

	b := loader.NewBuiltin()
	b.Register(driverArtifacts[core.DriverText], driver.NewText(textCfg).DriverWrite)
	b.Register(driverArtifacts[core.DriverJSON], driver.NewJSON(jsonCfg).DriverWrite)
	return b
}
