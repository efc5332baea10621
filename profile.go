package ampboot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// condaInitLine returns the line the shell profile needs so new shells
// find the conda runtime.
func condaInitLine(prefix string) string {
	return fmt.Sprintf("export PATH=\"%s:$PATH\"", filepath.Join(prefix, "bin"))
}

// EnsureProfileSourcesRuntime makes sure the user's shell profile puts the
// conda bin directory on PATH. The profile file is created if missing and
// mutated at most once: re-running against the same file is a no-op.
// Returns true if the line was appended by this call.
func EnsureProfileSourcesRuntime(profile PlatformProfile, prefix string) (bool, error) {
	return EnsureLineInFile(profile.ShellProfilePath, condaInitLine(prefix))
}

// EnsureLineInFile appends line to the file at path unless the file
// already contains it. This is a pure idempotent operation on the file
// contents, independent of any other bootstrap state.
func EnsureLineInFile(path string, line string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	if strings.Contains(string(data), line) {
		return false, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	// Keep the appended line on its own line even if the file does not
	// end with a newline.
	prefix := ""
	if len(data) > 0 && data[len(data)-1] != '\n' {
		prefix = "\n"
	}
	if _, err := f.WriteString(prefix + line + "\n"); err != nil {
		return false, fmt.Errorf("appending to %s: %w", path, err)
	}
	return true, nil
}
