package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newComponentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List registered component names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range a.reg.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
