//go:build windows
// +build windows

package ampboot

import "errors"

// Windows is not a supported bootstrap target; the kernel name maps to
// FamilyUnsupported and DetectPlatform fails before any side effects.
func kernelName() string {
	return "Windows"
}

func freeBytes(path string) (uint64, error) {
	return 0, errors.New("free space check not supported on this platform")
}
