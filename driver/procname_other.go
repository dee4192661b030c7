//go:build !linux

package driver

import (
	"os"
	"path/filepath"
)

func systemProcessName() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Base(exe), nil
}
