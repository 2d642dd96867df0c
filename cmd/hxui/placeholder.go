package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/a-h/templ"
	"github.com/spf13/cobra"
)

func newPlaceholderCmd(a *app) *cobra.Command {
	var (
		props     propsFlags
		sealed    bool
		encrypted bool
	)

	cmd := &cobra.Command{
		Use:   "placeholder NAME",
		Short: "Print the server-side placeholder markup for a component",
		Long: `Prints the <div data-ui-component data-ui-props> element a server
template emits for a component. Props are validated against the component
before the markup is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			bag, err := props.bag()
			if err != nil {
				return err
			}
			payload, err := json.Marshal(bag)
			if err != nil {
				return err
			}
			if _, err := a.reg.Build(name, string(payload)); err != nil {
				return err
			}

			if (sealed || encrypted) && !a.reg.Codec().HasKey() {
				return errors.New("--sealed and --encrypted need props.signing_key")
			}
			var c templ.Component
			switch {
			case sealed:
				c = a.reg.SealedPlaceholder(name, bag)
			case encrypted:
				c = a.reg.EncryptedPlaceholder(name, bag)
			default:
				c = a.reg.Placeholder(name, bag)
			}
			if err := c.Render(cmd.Context(), cmd.OutOrStdout()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	props.register(cmd)
	cmd.Flags().BoolVar(&sealed, "sealed", false, "Emit a signed msgpack payload")
	cmd.Flags().BoolVar(&encrypted, "encrypted", false, "Emit an encrypted msgpack payload")
	cmd.MarkFlagsMutuallyExclusive("sealed", "encrypted")
	return cmd
}
