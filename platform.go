package ampboot

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// OSFamily identifies the operating system family the bootstrapper is
// running on. Only the three families the original installer supports are
// recognized; everything else maps to FamilyUnsupported.
type OSFamily int

const (
	FamilyUnsupported OSFamily = iota
	FamilyLinux
	FamilyDarwin
	FamilyFreeBSD
)

// String returns the kernel name for the family, as reported by uname.
func (f OSFamily) String() string {
	switch f {
	case FamilyLinux:
		return "Linux"
	case FamilyDarwin:
		return "Darwin"
	case FamilyFreeBSD:
		return "FreeBSD"
	default:
		return "Unsupported"
	}
}

// Miniconda installer payloads, fixed per OS family. FreeBSD receives the
// macOS payload, matching the original installer's grouping (the script ran
// there under the Linux binary compatibility layer with a BSD userland).
const (
	linuxInstallerURL = "https://repo.continuum.io/miniconda/Miniconda3-latest-Linux-x86_64.sh"
	macosInstallerURL = "https://repo.continuum.io/miniconda/Miniconda3-latest-MacOSX-x86_64.sh"
)

// PlatformProfile captures everything platform-dependent about a bootstrap
// run: which shell profile file to touch and which installer to download.
// It is determined once at startup and immutable afterwards.
type PlatformProfile struct {
	// Family is the detected OS family.
	Family OSFamily

	// ShellProfilePath is the login shell initialization file that should
	// source the conda runtime (~/.bashrc on Linux, ~/.bash_profile on
	// Darwin and FreeBSD).
	ShellProfilePath string

	// InstallerURL is the platform-specific miniconda installer payload.
	InstallerURL string
}

// DetectPlatform probes the running system and returns its profile.
// It returns ErrUnsupportedPlatform for any OS family other than Linux,
// Darwin, or FreeBSD.
func DetectPlatform(home string) (PlatformProfile, error) {
	return ProfileForKernel(kernelName(), home)
}

// ProfileForKernel maps a kernel name (the output of uname) to a platform
// profile. Split out from DetectPlatform so the mapping can be exercised
// without running on each platform.
func ProfileForKernel(kernel string, home string) (PlatformProfile, error) {
	switch kernel {
	case "Linux":
		return PlatformProfile{
			Family:           FamilyLinux,
			ShellProfilePath: filepath.Join(home, ".bashrc"),
			InstallerURL:     linuxInstallerURL,
		}, nil
	case "Darwin":
		return PlatformProfile{
			Family:           FamilyDarwin,
			ShellProfilePath: filepath.Join(home, ".bash_profile"),
			InstallerURL:     macosInstallerURL,
		}, nil
	case "FreeBSD":
		return PlatformProfile{
			Family:           FamilyFreeBSD,
			ShellProfilePath: filepath.Join(home, ".bash_profile"),
			InstallerURL:     macosInstallerURL,
		}, nil
	default:
		return PlatformProfile{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, kernel)
	}
}

// fallbackKernelName converts runtime.GOOS to a uname-style kernel name.
// Used when the uname syscall is unavailable or fails.
func fallbackKernelName() string {
	switch runtime.GOOS {
	case "linux":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "freebsd":
		return "FreeBSD"
	default:
		return runtime.GOOS
	}
}
