package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/feedback-collector/feedback-collector/internal/config"
	"github.com/feedback-collector/feedback-collector/internal/daemon"
	"github.com/feedback-collector/feedback-collector/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(startCmd)
}

var (
	cfg     config.Config
	devMode bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the feedback collector web service",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			var opts []config.Option
			if devMode {
				opts = append(opts, config.WithDevMode())
			}

			var err error
			if cfg, err = config.ReadConfig(configPath, opts...); err != nil {
				return err
			}

			return logger.Init(cfg.Log)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			log.Info().Bool("dev", cfg.DevMode).Msg("starting feedback collector")

			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			return d.Start()
		},
	}
)
