package loader

//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks Loader,Artifact

import (
	"github.com/philipp01105/mysyslog/core"
)

// EntryPoint is the symbol every driver artifact must export.
const EntryPoint = "DriverWrite"

// WriteFunc is the calling convention of EntryPoint.
type WriteFunc func(message string, level int, path string) error

// Loader maps an artifact at a resolved path.
type Loader interface {
	Open(path string) (Artifact, error)
}

// Artifact is a mapped driver artifact. It must be closed exactly once.
type Artifact interface {
	// Lookup resolves an exported symbol by name
	Lookup(symbol string) (any, error)
	// Close releases the artifact
	Close() error
}

// ArtifactFile returns the file name of the artifact for a driver name.
func ArtifactFile(name string) string {
	return "libmysyslog-" + name + ".so"
}

// Bind resolves EntryPoint in a and checks its calling convention.
// It does not close a; that is the caller's job on every path.
func Bind(a Artifact) (WriteFunc, error) {
	sym, err := a.Lookup(EntryPoint)
	if err != nil {
		return nil, core.Wrapf(core.DriverEntryPointMissing, err, "lookup %s", EntryPoint)
	}

	var fn WriteFunc
	switch f := sym.(type) {
	case WriteFunc:
		fn = f
	case func(string, int, string) error:
		fn = f
	default:
		return nil, core.Errorf(core.DriverEntryPointMissing,
			"symbol %s has type %T, want func(string, int, string) error", EntryPoint, sym)
	}
	if fn == nil {
		return nil, core.Errorf(core.DriverEntryPointMissing, "symbol %s is nil", EntryPoint)
	}
	return fn, nil
}
