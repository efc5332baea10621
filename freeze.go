package ampboot

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// environmentFile is the conda environment.yml schema.
type environmentFile struct {
	Name         string   `yaml:"name"`
	Channels     []string `yaml:"channels,omitempty"`
	Dependencies []string `yaml:"dependencies"`
}

// SpecEnvironmentYAML renders the spec for the given profile as a conda
// environment.yml document: the pinned interpreter followed by the ordered
// package list.
func SpecEnvironmentYAML(spec EnvironmentSpec, profile Profile) ([]byte, error) {
	file := environmentFile{
		Name:         spec.Name,
		Channels:     append([]string(nil), spec.Channels...),
		Dependencies: append([]string{"python=" + spec.PythonVersion}, spec.PackageList(profile)...),
	}
	return yaml.Marshal(file)
}

// WriteEnvironmentFile writes the spec's environment.yml to path.
func WriteEnvironmentFile(path string, spec EnvironmentSpec, profile Profile) error {
	data, err := SpecEnvironmentYAML(spec, profile)
	if err != nil {
		return fmt.Errorf("rendering environment file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Freeze exports the environment as actually installed to a conda
// environment.yml at path, so a working environment can be recreated
// exactly even after upstream packages move on.
func (env *CondaEnvironment) Freeze(path string) error {
	out, err := env.runner.RunReadCombined(env.Runtime.CondaPath,
		"list", "--name", env.Spec.Name, "--export")
	if err != nil {
		return fmt.Errorf("running conda list --export: %v: %s", err, out)
	}

	file := environmentFile{
		Name:     env.Spec.Name,
		Channels: append([]string(nil), env.Spec.Channels...),
	}

	// --export emits one name=version=build line per package, with
	// comment lines describing the platform.
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		file.Dependencies = append(file.Dependencies, line)
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("rendering frozen environment: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
