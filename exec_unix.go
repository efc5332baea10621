//go:build !windows
// +build !windows

package ampboot

import (
	"errors"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

// setSignalsForChannel configures the channel to receive SIGINT and SIGTERM.
func setSignalsForChannel(c chan os.Signal) {
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
}

// stopSignalsForChannel undoes setSignalsForChannel and releases the
// watcher goroutine.
func stopSignalsForChannel(c chan os.Signal) {
	signal.Stop(c)
	close(c)
}

// waitForExit waits for a command to exit and returns an appropriate error.
func waitForExit(cmd *exec.Cmd) error {
	err := cmd.Wait()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			if exitErr.ExitCode() == -1 {
				// The child process was killed
				return errors.New("child process was killed")
			}
		}
		return err
	}
	return nil
}
