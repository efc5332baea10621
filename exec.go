package ampboot

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ProgressCallback is called during long-running operations to report progress.
// The message describes the current operation, current is the progress value,
// and total is the expected total (-1 if unknown).
type ProgressCallback func(message string, current, total int64)

// CommandRunner abstracts subprocess execution. The bootstrapper only ever
// runs one command at a time and waits for it to complete; the interface
// exists so step sequencing can be tested without conda installed.
type CommandRunner interface {
	// RunReadCombined executes a command to completion and returns its
	// trimmed combined stdout/stderr.
	RunReadCombined(name string, args ...string) (string, error)

	// RunStreaming executes a long-running command, feeding each stdout
	// line to the progress callback. The child is killed if the parent
	// receives a termination signal. Stderr is captured and included in
	// the returned error.
	RunStreaming(desc string, progress ProgressCallback, name string, args ...string) error
}

// execRunner is the production CommandRunner backed by os/exec.
type execRunner struct{}

// NewCommandRunner returns the default subprocess runner.
func NewCommandRunner() CommandRunner {
	return execRunner{}
}

func (execRunner) RunReadCombined(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	output, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(output)), err
}

func (execRunner) RunStreaming(desc string, progress ProgressCallback, name string, args ...string) error {
	cmd := exec.Command(name, args...)

	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("error creating stdout pipe: %v", err)
	}
	defer stdout.Close()

	if err := cmd.Start(); err != nil {
		return err
	}

	// Kill the child if the parent is interrupted; the package managers
	// this runs do not survive orphaning gracefully.
	signalChan := make(chan os.Signal, 1)
	setSignalsForChannel(signalChan)
	defer stopSignalsForChannel(signalChan)
	go func() {
		if _, ok := <-signalChan; ok {
			cmd.Process.Kill()
		}
	}()

	scanner := bufio.NewScanner(stdout)
	lineCount := int64(0)
	for scanner.Scan() {
		lineCount++
		if progress != nil {
			progress(desc, lineCount, -1)
		}
	}

	if err := waitForExit(cmd); err != nil {
		if stderrBuf.Len() > 0 {
			return fmt.Errorf("%v, stderr: %s", err, strings.TrimSpace(stderrBuf.String()))
		}
		return err
	}
	return nil
}
