package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ampboot",
		Short: "Bootstrap the amps data-science environment",
		Long: "ampboot installs a miniconda runtime if one is missing, wires the shell\n" +
			"profile to find it, and builds the pinned \"amps\" conda environment with\n" +
			"the project's fixed package list.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newInstallCmd(),
		newShowCmd(),
		newFreezeCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
