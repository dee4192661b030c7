package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewDiagnostics creates the console logger the dispatcher reports
// failures on.
func NewDiagnostics(w zapcore.WriteSyncer, level zapcore.LevelEnabler) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	enc := zapcore.NewConsoleEncoder(encCfg)

	return zap.New(zapcore.NewCore(enc, w, level)).Named("mysyslog")
}

// stderrDiagnostics reports warnings and errors on stderr.
func stderrDiagnostics() *zap.Logger {
	return NewDiagnostics(stderrSyncer(), zapcore.WarnLevel)
}

func stderrSyncer() zapcore.WriteSyncer {
	return zapcore.Lock(os.Stderr)
}
