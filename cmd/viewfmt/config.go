package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/viewfmt/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage viewfmt.toml",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write a viewfmt.toml holding the default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			written, err := config.Init(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okColor.Sprint("Created:"), written)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("config")
			res, err := config.Load(config.Options{File: file})
			if err != nil {
				return err
			}
			if res.File != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# from %s\n", res.File)
			}
			return config.Show(cmd.OutOrStdout(), res.Settings)
		},
	})

	return cmd
}
