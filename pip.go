package ampboot

import "fmt"

// UpgradeTooling upgrades the environment's pip to the latest version.
// The environment must have been activated first so PipPath is validated.
func (env *CondaEnvironment) UpgradeTooling(progress ProgressCallback) error {
	err := env.runner.RunStreaming("Upgrading pip...", progress,
		env.PipPath, "install", "--no-warn-script-location", "--upgrade", "pip")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrToolingUpgrade, err)
	}
	if progress != nil {
		progress("Pip upgraded", 100, 100)
	}
	return nil
}

// InstallLocalPackage installs the project at dir into the environment as
// an editable, dependency-free package. Dependencies were already pinned
// and installed by Create, so pip is told not to resolve them again.
func (env *CondaEnvironment) InstallLocalPackage(dir string, progress ProgressCallback) error {
	err := env.runner.RunStreaming("Installing local package...", progress,
		env.PipPath, "install", "--no-warn-script-location", "--no-deps", "-e", dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLocalInstall, err)
	}
	if progress != nil {
		progress("Local package installed", 100, 100)
	}
	return nil
}
