package ampboot

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeRunner records every command line and replays stubbed results.
// Stubs are matched by substring so tests don't have to reconstruct
// temp-dir-dependent absolute paths. Repeated stubs for the same pattern
// are consumed in order; the last one is sticky.
type fakeRunner struct {
	calls   []string
	results map[string][]fakeResult
}

type fakeResult struct {
	out string
	err error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{results: map[string][]fakeResult{}}
}

func (f *fakeRunner) stub(pattern string, out string, err error) {
	f.results[pattern] = append(f.results[pattern], fakeResult{out: out, err: err})
}

func (f *fakeRunner) take(cmdline string) fakeResult {
	for pattern, queue := range f.results {
		if strings.Contains(cmdline, pattern) && len(queue) > 0 {
			res := queue[0]
			if len(queue) > 1 {
				f.results[pattern] = queue[1:]
			}
			return res
		}
	}
	return fakeResult{}
}

func (f *fakeRunner) RunReadCombined(name string, args ...string) (string, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, cmdline)
	res := f.take(cmdline)
	return res.out, res.err
}

func (f *fakeRunner) RunStreaming(desc string, progress ProgressCallback, name string, args ...string) error {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, cmdline)
	if progress != nil {
		progress(desc, 1, -1)
	}
	return f.take(cmdline).err
}

func (f *fakeRunner) called(substr string) bool {
	for _, c := range f.calls {
		if strings.Contains(c, substr) {
			return true
		}
	}
	return false
}

// stubHealthy registers results for a fully working conda installation.
func stubHealthy(f *fakeRunner) {
	f.stub("conda --version", "conda 4.3.21", nil)
	f.stub("python --version", "Python 3.5.4", nil)
	f.stub("pip --version", "pip 9.0.1 from /opt/lib/python3.5/site-packages (python 3.5)", nil)
}

func testBootstrapper(t *testing.T, f *fakeRunner) *Bootstrapper {
	t.Helper()
	home := t.TempDir()
	return &Bootstrapper{
		Spec:       DefaultSpec(),
		Profile:    ProfileStandard,
		Home:       home,
		Prefix:     filepath.Join(home, "miniconda"),
		ProjectDir: home,
		Kernel:     "Linux",
		Runner:     f,
		download: func(url, dir string, progress ProgressCallback) (string, error) {
			t.Fatalf("unexpected download of %s", url)
			return "", nil
		},
	}
}

func TestRunHappyPathSequencing(t *testing.T) {
	f := newFakeRunner()
	stubHealthy(f)
	b := testBootstrapper(t, f)

	env, err := b.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if env.PythonVersion.String() != "3.5.4" {
		t.Errorf("expected python 3.5.4, got %s", env.PythonVersion.String())
	}

	// Remove must precede create, create must precede the activation probe.
	order := []string{"remove --name amps", "create --name amps", "python --version", "--upgrade pip", "--no-deps -e"}
	last := -1
	for _, want := range order {
		found := -1
		for i, c := range f.calls {
			if strings.Contains(c, want) {
				found = i
				break
			}
		}
		if found == -1 {
			t.Fatalf("expected a call containing %q, calls: %v", want, f.calls)
		}
		if found < last {
			t.Errorf("call %q ran out of order", want)
		}
		last = found
	}

	// The shell profile gained the PATH line.
	data, err := os.ReadFile(filepath.Join(b.Home, ".bashrc"))
	if err != nil {
		t.Fatalf("reading shell profile: %v", err)
	}
	if !strings.Contains(string(data), condaInitLine(b.Prefix)) {
		t.Errorf("shell profile missing conda PATH line: %q", string(data))
	}
}

func TestRunCreateArgsCarryPinnedPackages(t *testing.T) {
	f := newFakeRunner()
	stubHealthy(f)
	b := testBootstrapper(t, f)

	if _, err := b.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !f.called("create --name amps python=3.5 numpy=1.13.1") {
		t.Errorf("create call missing pinned interpreter/package prefix, calls: %v", f.calls)
	}
	// The editable install runs with --no-deps, so every runtime import of
	// the project must already be named at create time.
	for _, pkg := range []string{"sqlalchemy=1.1.13", "sqlalchemy-utils=0.32.16", "boto3=1.4.7", "defusedxml=0.5.0"} {
		if !f.called(pkg) {
			t.Errorf("create call missing runtime dependency %s, calls: %v", pkg, f.calls)
		}
	}
	if f.called("ipython") {
		t.Errorf("standard profile must not install developer packages")
	}
}

func TestRunDeveloperProfileExtendsPackages(t *testing.T) {
	f := newFakeRunner()
	stubHealthy(f)
	b := testBootstrapper(t, f)
	b.Profile = ProfileDeveloper

	if _, err := b.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !f.called("ipython=6.1.0") {
		t.Errorf("developer profile should install the developer extension list")
	}
}

func TestRunUnsupportedPlatformHasNoSideEffects(t *testing.T) {
	f := newFakeRunner()
	b := testBootstrapper(t, f)
	b.Kernel = "SunOS"

	_, err := b.Run()
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("expected ErrUnsupportedPlatform, got %v", err)
	}
	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Step != StepDetectPlatform {
		t.Errorf("expected StepError for %s, got %v", StepDetectPlatform, err)
	}

	if len(f.calls) != 0 {
		t.Errorf("expected no external commands, got %v", f.calls)
	}
	if _, err := os.Stat(filepath.Join(b.Home, ".bashrc")); !os.IsNotExist(err) {
		t.Errorf("shell profile must not be touched on an unsupported platform")
	}
}

func TestRunSkipsDownloadWhenRuntimePresent(t *testing.T) {
	f := newFakeRunner()
	stubHealthy(f)
	b := testBootstrapper(t, f) // download stub fails the test if invoked

	if _, err := b.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if f.called(" -b -p ") {
		t.Errorf("installer must not run when conda already answers --version")
	}
}

func TestRunInstallsRuntimeWhenAbsent(t *testing.T) {
	f := newFakeRunner()
	f.stub("conda --version", "", errors.New("no such file or directory"))
	f.stub("conda --version", "conda 4.3.21", nil)
	f.stub("python --version", "Python 3.5.4", nil)
	f.stub("pip --version", "pip 9.0.1 from /opt/lib/python3.5/site-packages (python 3.5)", nil)

	b := testBootstrapper(t, f)
	artifactDir := t.TempDir()
	artifact := filepath.Join(artifactDir, "Miniconda3-latest-Linux-x86_64.sh")
	downloaded := false
	b.download = func(url, dir string, progress ProgressCallback) (string, error) {
		downloaded = true
		if url != linuxInstallerURL {
			t.Errorf("expected Linux installer URL, got %s", url)
		}
		if err := os.WriteFile(artifact, []byte("#!/bin/sh\n"), 0755); err != nil {
			t.Fatal(err)
		}
		return artifact, nil
	}

	env, err := b.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !downloaded {
		t.Fatal("expected the installer to be downloaded")
	}
	if !f.called("-b -p " + b.Prefix) {
		t.Errorf("expected non-interactive installer execution, calls: %v", f.calls)
	}
	if _, err := os.Stat(artifact); !os.IsNotExist(err) {
		t.Errorf("installer artifact should be deleted after a successful install")
	}
	if !env.Runtime.IsNew {
		t.Errorf("runtime should be marked as newly installed")
	}
}

func TestRunCreateFailureSkipsActivation(t *testing.T) {
	f := newFakeRunner()
	f.stub("conda --version", "conda 4.3.21", nil)
	f.stub("create --name amps", "", errors.New("UnsatisfiableError"))

	b := testBootstrapper(t, f)
	_, err := b.Run()
	if !errors.Is(err, ErrEnvironmentCreation) {
		t.Fatalf("expected ErrEnvironmentCreation, got %v", err)
	}
	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Step != StepCreateEnvironment {
		t.Errorf("expected StepError for %s, got %v", StepCreateEnvironment, err)
	}
	if f.called("python --version") {
		t.Errorf("activation must not run after a failed create")
	}
}

func TestRunToolingUpgradeFailureIsBestEffort(t *testing.T) {
	f := newFakeRunner()
	stubHealthy(f)
	f.stub("--upgrade pip", "", errors.New("connection reset"))

	b := testBootstrapper(t, f)
	var warnings []string
	b.Warnf = func(format string, args ...interface{}) {
		warnings = append(warnings, format)
	}

	if _, err := b.Run(); err != nil {
		t.Fatalf("a pip upgrade failure must not abort the run, got %v", err)
	}
	if len(warnings) == 0 {
		t.Errorf("expected a warning for the failed pip upgrade")
	}
	if !f.called("--no-deps -e") {
		t.Errorf("local install should still run after a best-effort failure")
	}
}

func TestRunSkipLocal(t *testing.T) {
	f := newFakeRunner()
	stubHealthy(f)
	b := testBootstrapper(t, f)
	b.SkipLocal = true

	if _, err := b.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if f.called("--no-deps -e") {
		t.Errorf("SkipLocal must suppress the editable install")
	}
}
