package ampboot

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CondaEnvironment represents the named environment the bootstrapper
// builds, with the paths and version information resolved from a conda
// runtime prefix.
type CondaEnvironment struct {
	// Spec is the environment specification being realized.
	Spec EnvironmentSpec

	// Runtime is the conda runtime managing the environment.
	Runtime *CondaRuntime

	// EnvPath is the full path to the environment directory.
	EnvPath string

	// EnvBinPath is the path to the environment's bin directory.
	EnvBinPath string

	// PythonPath is the full path to the environment's Python executable.
	PythonPath string

	// PipPath is the full path to the environment's pip executable.
	PipPath string

	// PythonVersion is the detected Python version, set by Activate.
	PythonVersion Version

	// PipVersion is the detected pip version, set by Activate.
	PipVersion Version

	runner CommandRunner
}

// NewCondaEnvironment describes the target environment under the runtime's
// prefix. It performs no side effects; the environment may not exist yet.
func NewCondaEnvironment(spec EnvironmentSpec, rt *CondaRuntime, runner CommandRunner) *CondaEnvironment {
	env := &CondaEnvironment{
		Spec:    spec,
		Runtime: rt,
		runner:  runner,
	}
	env.EnvPath = filepath.Join(rt.Prefix, "envs", spec.Name)
	env.EnvBinPath = filepath.Join(env.EnvPath, "bin")
	env.PythonPath = filepath.Join(env.EnvBinPath, "python")
	env.PipPath = filepath.Join(env.EnvBinPath, "pip")
	return env
}

// Remove deletes any pre-existing environment of the same name. A missing
// environment is success; the point is a clean slate for Create.
func (env *CondaEnvironment) Remove(progress ProgressCallback) error {
	out, err := env.runner.RunReadCombined(env.Runtime.CondaPath,
		"remove", "--name", env.Spec.Name, "--all", "--yes")
	if err != nil {
		// conda reports a nonexistent environment as an error; that is the
		// state we wanted anyway.
		lower := strings.ToLower(out)
		if strings.Contains(lower, "not found") || strings.Contains(lower, "not find") ||
			strings.Contains(lower, "notfound") {
			return nil
		}
		return fmt.Errorf("removing environment %s: %v: %s", env.Spec.Name, err, out)
	}
	if progress != nil {
		progress(fmt.Sprintf("Removed existing environment %s", env.Spec.Name), 100, 100)
	}
	return nil
}

// Create builds the named environment with the pinned interpreter and the
// package list for the given profile, streaming solver/install output to
// the progress callback. Package conflicts surface here; the remedy is to
// loosen the pinned versions, not to retry.
func (env *CondaEnvironment) Create(profile Profile, progress ProgressCallback) error {
	args := []string{"create", "--name", env.Spec.Name, "python=" + env.Spec.PythonVersion}
	args = append(args, env.Spec.PackageList(profile)...)
	for _, channel := range env.Spec.Channels {
		args = append(args, "--channel", channel)
	}
	args = append(args, "--yes")

	desc := fmt.Sprintf("Creating environment %s...", env.Spec.Name)
	if err := env.runner.RunStreaming(desc, progress, env.Runtime.CondaPath, args...); err != nil {
		return fmt.Errorf("%w: %v (package conflicts may require loosening the pinned package versions)",
			ErrEnvironmentCreation, err)
	}

	if progress != nil {
		progress(fmt.Sprintf("Environment %s created", env.Spec.Name), 100, 100)
	}
	return nil
}

// Activate verifies the environment is usable: the interpreter and pip
// must run from the environment's bin directory and report versions, and
// the interpreter must satisfy the spec's pinned version. A subprocess
// cannot mutate the invoking shell, so "activation" here means resolving
// and validating the paths later steps (and the user's next shell, via the
// profile line) will use.
func (env *CondaEnvironment) Activate() error {
	requested, err := ParseVersion(env.Spec.PythonVersion)
	if err != nil {
		return fmt.Errorf("%w: parsing requested python version: %v", ErrActivation, err)
	}

	out, err := env.runner.RunReadCombined(env.PythonPath, "--version")
	if err != nil {
		return fmt.Errorf("%w: running python --version: %v", ErrActivation, err)
	}
	env.PythonVersion, err = ParsePythonVersion(out)
	if err != nil {
		return fmt.Errorf("%w: parsing python version: %v", ErrActivation, err)
	}

	if env.PythonVersion.Major != requested.Major || env.PythonVersion.Minor != requested.Minor {
		return fmt.Errorf("%w: requested python %s, environment has %s",
			ErrActivation, env.Spec.PythonVersion, env.PythonVersion.String())
	}

	out, err = env.runner.RunReadCombined(env.PipPath, "--version")
	if err != nil {
		return fmt.Errorf("%w: running pip --version: %v", ErrActivation, err)
	}
	env.PipVersion, err = ParsePipVersion(out)
	if err != nil {
		return fmt.Errorf("%w: parsing pip version: %v", ErrActivation, err)
	}

	return nil
}
