package ampboot

import (
	"errors"
	"fmt"
)

// Sentinel errors for each bootstrap failure class. Callers match them with
// errors.Is; the concrete cause is wrapped alongside.
var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrMissingTool         = errors.New("required tool not found")
	ErrDownload            = errors.New("installer download failed")
	ErrInstaller           = errors.New("installer execution failed")
	ErrEnvironmentCreation = errors.New("environment creation failed")
	ErrActivation          = errors.New("environment activation failed")
	ErrToolingUpgrade      = errors.New("tooling upgrade failed")
	ErrLocalInstall        = errors.New("local package install failed")
)

// Severity classifies a bootstrap step up front: a fatal step aborts the
// run, a best-effort step logs a warning and lets the run continue. Every
// step carries exactly one classification so failure handling is uniform
// rather than ad hoc per step.
type Severity int

const (
	SeverityFatal Severity = iota
	SeverityBestEffort
)

// Step names, used in diagnostics and StepError values.
const (
	StepDetectPlatform      = "detect-platform"
	StepPreflight           = "preflight"
	StepEnsureRuntime       = "ensure-runtime"
	StepShellProfile        = "shell-profile"
	StepRemoveEnvironment   = "remove-environment"
	StepCreateEnvironment   = "create-environment"
	StepActivateEnvironment = "activate-environment"
	StepUpgradeTooling      = "upgrade-tooling"
	StepInstallLocal        = "install-local"
)

// StepError identifies which bootstrap step failed and how severe the
// failure is. Run returns the first fatal StepError; best-effort failures
// are reported through the warning hook instead.
type StepError struct {
	Step     string
	Severity Severity
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func fatalStep(step string, err error) *StepError {
	return &StepError{Step: step, Severity: SeverityFatal, Err: err}
}
