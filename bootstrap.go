package ampboot

import (
	"fmt"
	"os"
	"path/filepath"
)

// minFreeBytes is the free-space preflight threshold: the installer plus a
// populated environment comfortably exceed 1 GiB.
const minFreeBytes = 2 << 30

// Bootstrapper sequences the environment bootstrap: detect the platform,
// ensure the conda runtime exists, wire the shell profile, replace the
// named environment, verify it, upgrade pip, and install the local project.
//
// Execution is strictly linear and single-threaded: one external command
// at a time, each awaited to completion. The first fatal step failure
// aborts the run; best-effort failures are reported through Warnf and the
// run continues. There are no retries.
type Bootstrapper struct {
	// Spec is the environment to build. Zero value means DefaultSpec.
	Spec EnvironmentSpec

	// Profile selects the package set (standard or developer).
	Profile Profile

	// Prefix is the miniconda install prefix. Empty means <home>/miniconda.
	Prefix string

	// ProjectDir is the directory installed as an editable package.
	// Empty means the current directory.
	ProjectDir string

	// SkipLocal skips the editable project install step.
	SkipLocal bool

	// Kernel overrides the detected kernel name. Empty means probe the
	// running system via uname.
	Kernel string

	// Home overrides the user home directory. Empty means os.UserHomeDir.
	Home string

	// Progress receives progress updates from long-running steps; may be nil.
	Progress ProgressCallback

	// Warnf receives diagnostics for best-effort step failures; may be nil.
	Warnf func(format string, args ...interface{})

	// Runner executes external commands. Nil means the os/exec runner.
	Runner CommandRunner

	// download fetches the installer; swapped out in tests.
	download downloadFunc
}

// New returns a Bootstrapper for the default spec and the given profile.
func New(profile Profile) *Bootstrapper {
	return &Bootstrapper{
		Spec:    DefaultSpec(),
		Profile: profile,
	}
}

// Run executes the bootstrap sequence and returns the created environment.
// On failure it returns a *StepError identifying the failed step; no later
// step runs after a fatal failure.
func (b *Bootstrapper) Run() (*CondaEnvironment, error) {
	runner := b.Runner
	if runner == nil {
		runner = NewCommandRunner()
	}
	download := b.download
	if download == nil {
		download = DownloadInstaller
	}
	spec := b.Spec
	if spec.Name == "" {
		spec = DefaultSpec()
	}
	profile := b.Profile
	if profile == "" {
		profile = ProfileStandard
	}

	home := b.Home
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, fatalStep(StepDetectPlatform, fmt.Errorf("resolving home directory: %w", err))
		}
	}
	prefix := b.Prefix
	if prefix == "" {
		prefix = filepath.Join(home, "miniconda")
	}
	projectDir := b.ProjectDir
	if projectDir == "" {
		projectDir = "."
	}
	kernel := b.Kernel
	if kernel == "" {
		kernel = kernelName()
	}

	// Platform detection happens before anything else; an unsupported
	// platform must produce no side effects at all.
	platform, err := ProfileForKernel(kernel, home)
	if err != nil {
		return nil, fatalStep(StepDetectPlatform, err)
	}

	if free, err := freeBytes(home); err == nil && free < minFreeBytes {
		b.reportBestEffort(StepPreflight,
			fmt.Errorf("low disk space: %d MB free under %s, the environment may not fit", free>>20, home))
	}

	runtime, err := ensureRuntime(platform, prefix, runner, b.Progress, download)
	if err != nil {
		return nil, fatalStep(StepEnsureRuntime, err)
	}

	if _, err := EnsureProfileSourcesRuntime(platform, prefix); err != nil {
		return nil, fatalStep(StepShellProfile, err)
	}

	env := NewCondaEnvironment(spec, runtime, runner)

	// Removal failures other than "not found" are survivable: if the old
	// environment is truly in the way, Create reports it immediately.
	if err := env.Remove(b.Progress); err != nil {
		b.reportBestEffort(StepRemoveEnvironment, err)
	}

	if err := env.Create(profile, b.Progress); err != nil {
		return nil, fatalStep(StepCreateEnvironment, err)
	}

	if err := env.Activate(); err != nil {
		return nil, fatalStep(StepActivateEnvironment, err)
	}

	if err := env.UpgradeTooling(b.Progress); err != nil {
		b.reportBestEffort(StepUpgradeTooling, err)
	}

	if !b.SkipLocal {
		if err := env.InstallLocalPackage(projectDir, b.Progress); err != nil {
			return nil, fatalStep(StepInstallLocal, err)
		}
	}

	return env, nil
}

// reportBestEffort surfaces a non-fatal step failure through the warning
// hook. The step keeps its StepError shape so diagnostics look the same
// for both severities.
func (b *Bootstrapper) reportBestEffort(step string, err error) {
	stepErr := &StepError{Step: step, Severity: SeverityBestEffort, Err: err}
	b.warnf("%v, continuing", stepErr)
}

func (b *Bootstrapper) warnf(format string, args ...interface{}) {
	if b.Warnf != nil {
		b.Warnf(format, args...)
	}
}
