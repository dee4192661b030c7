package logger_test

import (
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/philipp01105/mysyslog/loader"
	"github.com/philipp01105/mysyslog/logger"
)

// buildDriverPlugin compiles ./cmd/mysyslog-<name> into dir and returns
// the artifact path.
func buildDriverPlugin(t *testing.T, name, dir string) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping plugin build in short mode")
	}
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skipf("plugins are not supported on %s", runtime.GOOS)
	}
	gobin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go tool not found")
	}
	out, err := exec.Command(gobin, "env", "CGO_ENABLED").Output()
	if err != nil || strings.TrimSpace(string(out)) != "1" {
		t.Skip("plugins need cgo")
	}

	artifact := filepath.Join(dir, loader.ArtifactFile(name))
	cmd := exec.Command(gobin, "build", "-buildmode=plugin", "-o", artifact, "./cmd/mysyslog-"+name)
	cmd.Dir = ".."
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "plugin build failed:\n%s", output)
	return artifact
}

func TestDispatcher_PluginLoaderEndToEnd(t *testing.T) {
	local := t.TempDir()
	buildDriverPlugin(t, "json", local)
	path := filepath.Join(t.TempDir(), "test.log")

	diag, logs := observed()
	d := logger.NewBuilder().
		WithSearchPath(local, t.TempDir()).
		WithLoader(loader.Plugin{}).
		WithDiagnostics(diag).
		Build()

	require.NoError(t, d.Log("this is an error", logger.ErrorLevel, logger.DriverJSON, logger.FormatJSON, path))

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Regexp(t, jsonLine, lines[0])
	assert.Zero(t, logs.FilterLevelExact(zap.ErrorLevel).Len())
	assert.Zero(t, logs.FilterLevelExact(zap.WarnLevel).Len())
}
