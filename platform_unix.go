//go:build !windows
// +build !windows

package ampboot

import (
	"golang.org/x/sys/unix"
)

// kernelName returns the kernel name as uname reports it (e.g. "Linux",
// "Darwin", "FreeBSD"). Falls back to a runtime.GOOS mapping if the
// syscall fails.
func kernelName() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return fallbackKernelName()
	}
	name := unix.ByteSliceToString(uts.Sysname[:])
	if name == "" {
		return fallbackKernelName()
	}
	return name
}

// freeBytes returns the free space, in bytes, on the filesystem containing
// path. Used by the preflight check before downloading the installer.
func freeBytes(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, err
	}
	return uint64(st.Bavail) * uint64(st.Bsize), nil
}
