package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/richinsley/ampboot"
)

type installFlags struct {
	profile    string
	prefix     string
	project    string
	skipLocal  bool
	freezePath string
}

func newInstallCmd() *cobra.Command {
	flags := &installFlags{}

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install miniconda (if needed) and build the amps environment",
		Long: "install runs the full bootstrap: platform detection, miniconda install,\n" +
			"shell profile wiring, environment creation, activation check, pip upgrade,\n" +
			"and an editable install of the project directory.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.profile, "profile", "", "Package profile: standard or developer")
	cmd.Flags().StringVar(&flags.prefix, "prefix", "", "Miniconda install prefix (default $HOME/miniconda)")
	cmd.Flags().StringVar(&flags.project, "project", "", "Project directory for the editable install (default .)")
	cmd.Flags().BoolVar(&flags.skipLocal, "skip-local", false, "Skip the editable project install")
	cmd.Flags().StringVar(&flags.freezePath, "freeze", "", "After a successful install, export the environment to this file")

	return cmd
}

func runInstall(cmd *cobra.Command, flags *installFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flags.profile != "" {
		cfg.Profile = flags.profile
	}
	if flags.prefix != "" {
		cfg.Prefix = flags.prefix
	}
	if flags.project != "" {
		cfg.Project = flags.project
	}

	profile, err := ampboot.ParseProfile(cfg.Profile)
	if err != nil {
		return err
	}

	s := newStyles()
	stderr := cmd.ErrOrStderr()

	b := ampboot.New(profile)
	b.Prefix = cfg.Prefix
	b.ProjectDir = cfg.Project
	b.SkipLocal = flags.skipLocal
	b.Progress = progressPrinter(stderr, s)
	b.Warnf = func(format string, args ...interface{}) {
		fmt.Fprintf(stderr, "%s %s\n", s.warning.Render("warning:"), fmt.Sprintf(format, args...))
	}

	env, err := b.Run()
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	fmt.Fprintln(stdout, s.success.Render(fmt.Sprintf("Environment %q ready", env.Spec.Name)))
	fmt.Fprintf(stdout, "  python:  %s\n", env.PythonVersion.String())
	fmt.Fprintf(stdout, "  pip:     %s\n", env.PipVersion.String())
	fmt.Fprintf(stdout, "  prefix:  %s\n", env.EnvPath)
	fmt.Fprintf(stdout, "Open a new shell (or source your profile) to pick up conda on PATH.\n")

	if flags.freezePath != "" {
		if err := env.Freeze(flags.freezePath); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Frozen environment written to %s\n", flags.freezePath)
	}
	return nil
}

// progressPrinter prints each distinct progress message once, skipping the
// per-line counter updates that stream out of conda and pip.
func progressPrinter(w io.Writer, s styles) ampboot.ProgressCallback {
	var last string
	return func(message string, current, total int64) {
		if message == last {
			return
		}
		last = message
		fmt.Fprintln(w, s.detail.Render(message))
	}
}
