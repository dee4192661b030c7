//go:build linux

package driver

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// systemProcessName reads the kernel's comm value for the calling thread,
// the same name /proc/self/comm reports.
func systemProcessName() (string, error) {
	var comm [16]byte
	if err := unix.Prctl(unix.PR_GET_NAME, uintptr(unsafe.Pointer(&comm[0])), 0, 0, 0); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(comm[:]), nil
}
