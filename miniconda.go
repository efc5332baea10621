package ampboot

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// CondaRuntime is the package-manager runtime the bootstrapper delegates
// to: a conda executable rooted at an install prefix.
type CondaRuntime struct {
	// Prefix is the miniconda install prefix (e.g. ~/miniconda).
	Prefix string

	// CondaPath is the full path to the conda executable.
	CondaPath string

	// Version is the detected conda version.
	Version Version

	// IsNew indicates whether the runtime was installed by this run (true)
	// or already present (false).
	IsNew bool
}

// downloadFunc matches DownloadInstaller; swapped out in tests.
type downloadFunc func(url string, dir string, progress ProgressCallback) (string, error)

// EnsureRuntime checks for a conda executable under prefix and installs
// miniconda there when absent. If conda already answers --version no
// download or installer execution occurs. On a fresh install the
// downloaded artifact is deleted after the installer succeeds.
func EnsureRuntime(profile PlatformProfile, prefix string, runner CommandRunner, progress ProgressCallback) (*CondaRuntime, error) {
	return ensureRuntime(profile, prefix, runner, progress, DownloadInstaller)
}

func ensureRuntime(profile PlatformProfile, prefix string, runner CommandRunner, progress ProgressCallback, download downloadFunc) (*CondaRuntime, error) {
	rt := &CondaRuntime{
		Prefix:    prefix,
		CondaPath: filepath.Join(prefix, "bin", "conda"),
	}

	out, err := runner.RunReadCombined(rt.CondaPath, "--version")
	if err != nil {
		// No usable conda; bootstrap the runtime from the installer payload.
		if err := installMiniconda(profile, prefix, runner, progress, download); err != nil {
			return nil, err
		}
		rt.IsNew = true

		out, err = runner.RunReadCombined(rt.CondaPath, "--version")
		if err != nil {
			return nil, fmt.Errorf("%w: conda not runnable after install: %v", ErrInstaller, err)
		}
	}

	rt.Version, err = ParseCondaVersion(out)
	if err != nil {
		// A pre-existing runtime with a broken banner is an unusable tool,
		// not an installer failure; no installer ran on that path.
		class := ErrMissingTool
		if rt.IsNew {
			class = ErrInstaller
		}
		return nil, fmt.Errorf("%w: parsing conda version: %v", class, err)
	}
	return rt, nil
}

// installMiniconda downloads the platform installer and runs it
// non-interactively into prefix. The installer is a shell archive, so bash
// must be present on the host.
func installMiniconda(profile PlatformProfile, prefix string, runner CommandRunner, progress ProgressCallback, download downloadFunc) error {
	bashPath, err := exec.LookPath("bash")
	if err != nil {
		return fmt.Errorf("%w: bash is required to run the miniconda installer", ErrMissingTool)
	}

	artifact, err := download(profile.InstallerURL, os.TempDir(), progress)
	if err != nil {
		return err
	}

	// -b: batch (no license prompt), -p: install prefix.
	if err := runner.RunStreaming("Installing miniconda...", progress, bashPath, artifact, "-b", "-p", prefix); err != nil {
		return fmt.Errorf("%w: %v", ErrInstaller, err)
	}

	// The artifact is only needed once; a failed removal is not worth
	// aborting a successful install over.
	os.Remove(artifact)

	if progress != nil {
		progress("Miniconda installed", 100, 100)
	}
	return nil
}
