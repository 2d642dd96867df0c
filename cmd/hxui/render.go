package main

import (
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var props propsFlags

	cmd := &cobra.Command{
		Use:   "render NAME",
		Short: "Render a component to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := props.payload()
			if err != nil {
				return err
			}
			comp, err := a.reg.Build(args[0], payload)
			if err != nil {
				return err
			}
			return comp.Render(cmd.Context(), cmd.OutOrStdout())
		},
	}
	props.register(cmd)
	return cmd
}
