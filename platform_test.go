package ampboot

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestProfileForKernel(t *testing.T) {
	home := "/home/amps"
	tests := []struct {
		kernel      string
		family      OSFamily
		profilePath string
		installer   string
	}{
		{"Linux", FamilyLinux, filepath.Join(home, ".bashrc"), linuxInstallerURL},
		{"Darwin", FamilyDarwin, filepath.Join(home, ".bash_profile"), macosInstallerURL},
		{"FreeBSD", FamilyFreeBSD, filepath.Join(home, ".bash_profile"), macosInstallerURL},
	}

	for _, tt := range tests {
		profile, err := ProfileForKernel(tt.kernel, home)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.kernel, err)
			continue
		}
		if profile.Family != tt.family {
			t.Errorf("%s: expected family %s, got %s", tt.kernel, tt.family, profile.Family)
		}
		if profile.ShellProfilePath != tt.profilePath {
			t.Errorf("%s: expected profile path %s, got %s", tt.kernel, tt.profilePath, profile.ShellProfilePath)
		}
		if profile.InstallerURL != tt.installer {
			t.Errorf("%s: expected installer URL %s, got %s", tt.kernel, tt.installer, profile.InstallerURL)
		}
	}
}

func TestProfileForKernelUnsupported(t *testing.T) {
	for _, kernel := range []string{"SunOS", "Windows", "Haiku", ""} {
		_, err := ProfileForKernel(kernel, "/home/amps")
		if !errors.Is(err, ErrUnsupportedPlatform) {
			t.Errorf("%q: expected ErrUnsupportedPlatform, got %v", kernel, err)
		}
	}
}

func TestOSFamilyString(t *testing.T) {
	if FamilyLinux.String() != "Linux" || FamilyUnsupported.String() != "Unsupported" {
		t.Errorf("unexpected family names: %s, %s", FamilyLinux, FamilyUnsupported)
	}
}
