package logger

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/mysyslog/core"
)

func TestLogr_Info(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logr.log")
	log := NewLogr(newSlogDispatcher(t), core.DriverText, path)

	log.Info("reconciled", "name", "web", "replicas", 3)
	log.V(1).Info("cache warm")

	assert.Equal(t,
		"1700000000 INFO slogtest reconciled name=web replicas=3\n"+
			"1700000000 DEBUG slogtest cache warm\n",
		readLog(t, path))
}

func TestLogr_ErrorWithNameAndValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logr.log")
	log := NewLogr(newSlogDispatcher(t), core.DriverJSON, path).
		WithName("controller").
		WithName("pod").
		WithValues("ns", "default")

	log.Error(errors.New("timeout"), "sync failed", "attempt")

	want := `{"timestamp":1700000000,"log_level":"ERROR","process":"slogtest",` +
		`"message":"controller/pod: sync failed ns=default error=timeout attempt=(MISSING)"}` + "\n"
	assert.Equal(t, want, readLog(t, path))
}

func TestDiagnosticsLogr(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	d := New(Config{Diagnostics: zap.New(obsCore)})

	d.DiagnosticsLogr().Info("loader ready", "artifacts", 2)

	entries := logs.FilterMessage("loader ready").All()
	if assert.Len(t, entries, 1) {
		assert.EqualValues(t, 2, entries[0].ContextMap()["artifacts"])
	}
}
