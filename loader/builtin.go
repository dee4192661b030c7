package loader

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Builtin serves driver artifacts compiled into the binary, keyed by
// artifact file name. Open never touches the filesystem.
type Builtin struct {
	mu        sync.RWMutex
	artifacts map[string]WriteFunc
}

// NewBuiltin creates an empty builtin loader
func NewBuiltin() *Builtin {
	return &Builtin{artifacts: make(map[string]WriteFunc)}
}

// Register makes fn available as the entry point of the artifact for the
// driver name. It panics if the name is registered twice.
func (b *Builtin) Register(name string, fn WriteFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()

	file := ArtifactFile(name)
	if _, exists := b.artifacts[file]; exists {
		panic(fmt.Sprintf("driver artifact %s already registered", file))
	}
	b.artifacts[file] = fn
}

// Open returns the builtin artifact whose file name matches the base name
// of path.
func (b *Builtin) Open(path string) (Artifact, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	file := filepath.Base(path)
	fn, ok := b.artifacts[file]
	if !ok {
		return nil, errors.Errorf("%s: no builtin driver artifact named %s", path, file)
	}
	return &builtinArtifact{path: path, entry: fn}, nil
}

type builtinArtifact struct {
	path   string
	entry  WriteFunc
	closed bool
}

func (a *builtinArtifact) Lookup(symbol string) (any, error) {
	if a.closed {
		return nil, errors.Errorf("%s: artifact is closed", a.path)
	}
	if symbol != EntryPoint {
		return nil, errors.Errorf("%s: undefined symbol: %s", a.path, symbol)
	}
	return a.entry, nil
}

func (a *builtinArtifact) Close() error {
	if a.closed {
		return errors.Errorf("%s: artifact already closed", a.path)
	}
	a.closed = true
	return nil
}
