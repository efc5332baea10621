package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/richinsley/ampboot"
)

func newFreezeCmd() *cobra.Command {
	var (
		profileFlag string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "freeze",
		Short: "Write the pinned environment spec to a conda environment file",
		Long: "freeze renders the built-in spec to an environment.yml that conda can\n" +
			"consume directly. To export an installed environment with its exact\n" +
			"resolved versions instead, use: ampboot install --freeze <path>.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if profileFlag != "" {
				cfg.Profile = profileFlag
			}

			profile, err := ampboot.ParseProfile(cfg.Profile)
			if err != nil {
				return err
			}

			if err := ampboot.WriteEnvironmentFile(output, ampboot.DefaultSpec(), profile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Environment file written to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&profileFlag, "profile", "", "Package profile: standard or developer")
	cmd.Flags().StringVarP(&output, "output", "o", "environment.yml", "Output path")
	return cmd
}
