// Command ampboot bootstraps the pinned conda environment for the
// amplitude association project. All failures exit with code 1; the
// diagnostics are plain text on stderr.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
