// Package ampboot bootstraps the pinned Python environment for the
// amplitude association project: it installs a miniconda runtime when one
// is absent, wires the user's shell profile to find it, and builds the
// "amps" conda environment from a fixed, version-qualified package list.
//
// # Bootstrap sequence
//
// The whole package is one linear, fail-fast procedure:
//
//  1. Detect the OS family (Linux, Darwin, FreeBSD) and resolve the
//     matching shell profile path and installer URL.
//  2. Ensure the conda runtime exists under the install prefix,
//     downloading and running the miniconda installer if it does not.
//  3. Ensure the shell profile puts the runtime on PATH (idempotent).
//  4. Remove any existing environment of the same name.
//  5. Create the environment with the pinned interpreter and packages.
//  6. Activate it: resolve and verify the environment's python and pip.
//  7. Upgrade pip (best-effort; a failure is a warning, not an abort).
//  8. Install the project directory as an editable, dependency-free
//     package.
//
//	env, err := ampboot.New(ampboot.ProfileStandard).Run()
//
// Every step delegates to an external command and is awaited to
// completion before the next begins; there is no concurrency and no
// retry. Fatal failures surface as *StepError values wrapping the
// sentinel error for the failing class (ErrDownload, ErrActivation, ...).
//
// # Profiles
//
// The package list is fixed per profile. ProfileStandard installs the
// project's runtime dependencies; ProfileDeveloper extends it with
// interactive tooling. Profiles are explicit, validated values. The
// bootstrapper never reads feature toggles from ambient environment
// variables.
//
// # Environment files
//
// SpecEnvironmentYAML renders the spec as a conda environment.yml, and
// CondaEnvironment.Freeze exports a built environment with its exact
// installed versions for reproduction elsewhere.
package ampboot
