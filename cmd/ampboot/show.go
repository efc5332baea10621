package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/richinsley/ampboot"
)

func newShowCmd() *cobra.Command {
	var profileFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved environment spec as conda YAML",
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

			spec := ampboot.DefaultSpec()
			data, err := ampboot.SpecEnvironmentYAML(spec, profile)
			if err != nil {
				return err
			}

			s := newStyles()
			fmt.Fprintln(cmd.OutOrStdout(), s.title.Render(fmt.Sprintf("# %s profile", profile)))
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&profileFlag, "profile", "", "Package profile: standard or developer")
	return cmd
}
