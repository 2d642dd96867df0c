package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pthm/hxui"
	"github.com/pthm/hxui/components"
	"github.com/pthm/hxui/internal/config"
	"github.com/pthm/hxui/internal/logging"
)

// app holds what every command needs once flags and config are resolved.
type app struct {
	configFile string
	logLevel   string

	cfg *config.Config
	log zerolog.Logger
	reg *hxui.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "hxui",
		Short:         "hxui renders UI components and hydrates server-rendered placeholders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "Config file (default ./hxui.yaml)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override log.level")

	cmd.AddCommand(newComponentsCmd(a))
	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newPlaceholderCmd(a))
	cmd.AddCommand(newHydrateCmd(a))
	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	v := config.New(a.configFile)
	if err := v.BindPFlag("log.level", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	var opts []hxui.RegistryOption
	if cfg.Props.SigningKey != "" {
		opts = append(opts, hxui.WithSigningKey([]byte(cfg.Props.SigningKey)))
	}

	a.cfg = cfg
	a.log = log
	a.reg = components.NewRegistry(opts...)
	return nil
}
