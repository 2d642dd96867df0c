package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/hxui"
)

func newHydrateCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "hydrate [FILE]",
		Short: "Hydrate the placeholders of an HTML document",
		Long: `Reads an HTML document from FILE (or standard input), mounts every
registered component into its placeholder and writes the result. Skipped
placeholders are logged.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			doc, err := hxui.ParseDocument(in)
			if err != nil {
				return err
			}
			sess, err := hxui.NewHydrator(a.reg, hxui.WithLogger(a.log)).Auto(cmd.Context(), doc)
			if err != nil {
				return err
			}
			if err := doc.Render(cmd.OutOrStdout()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())

			a.log.Info().
				Int("mounted", len(sess.Mounts())).
				Int("skipped", len(sess.Skipped())).
				Msg("hydrated")
			if strict && len(sess.Skipped()) > 0 {
				return fmt.Errorf("%d placeholder(s) skipped", len(sess.Skipped()))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any placeholder is skipped")
	return cmd
}
