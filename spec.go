package ampboot

import "fmt"

// Profile selects which package set an environment is built with. The
// developer profile extends the standard list with interactive tooling.
// It is always an explicit, validated value; nothing is inferred from
// ambient environment variables.
type Profile string

const (
	ProfileStandard  Profile = "standard"
	ProfileDeveloper Profile = "developer"
)

// ParseProfile validates a profile name from configuration or flags.
func ParseProfile(s string) (Profile, error) {
	switch Profile(s) {
	case ProfileStandard, ProfileDeveloper:
		return Profile(s), nil
	default:
		return "", fmt.Errorf("invalid profile %q (expected %q or %q)", s, ProfileStandard, ProfileDeveloper)
	}
}

// EnvironmentSpec describes the environment the bootstrapper builds: a
// fixed name, a pinned interpreter version, and an ordered list of
// version-qualified packages. Constructed from constants and immutable
// afterwards; accessors return copies.
type EnvironmentSpec struct {
	// Name is the conda environment name.
	Name string

	// PythonVersion is the pinned interpreter version (e.g. "3.5").
	PythonVersion string

	// Channels lists the conda channels searched during creation.
	Channels []string

	// BasePackages is the ordered, version-qualified package list common
	// to every profile.
	BasePackages []string

	// DeveloperPackages extends BasePackages for the developer profile.
	DeveloperPackages []string
}

// DefaultSpec returns the pinned environment for the amplitude association
// project. The versions track the project's last verified dependency set;
// loosening a pin here is how package conflicts get resolved.
func DefaultSpec() EnvironmentSpec {
	return EnvironmentSpec{
		Name:          "amps",
		PythonVersion: "3.5",
		Channels:      []string{"defaults"},
		BasePackages: []string{
			"numpy=1.13.1",
			"pandas=0.20.3",
			"sqlalchemy=1.1.13",
			"sqlalchemy-utils=0.32.16",
			"pyyaml=3.12",
			"boto3=1.4.7",
			"defusedxml=0.5.0",
			"pytest=3.2.1",
			"pytest-cov=2.5.1",
		},
		DeveloperPackages: []string{
			"ipython=6.1.0",
			"jupyter=1.0.0",
			"flake8=3.4.1",
		},
	}
}

// PackageList returns the packages to install for the given profile, in
// install order. The returned slice is a copy.
func (s EnvironmentSpec) PackageList(profile Profile) []string {
	packages := make([]string, 0, len(s.BasePackages)+len(s.DeveloperPackages))
	packages = append(packages, s.BasePackages...)
	if profile == ProfileDeveloper {
		packages = append(packages, s.DeveloperPackages...)
	}
	return packages
}
