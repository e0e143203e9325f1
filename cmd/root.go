package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wlau/cv-job-matcher/internal/config"
	"github.com/wlau/cv-job-matcher/internal/gui"
	"github.com/wlau/cv-job-matcher/internal/logger"
)

const app = "cv-job-matcher"

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: app + " is a desktop client for scoring a CV against job postings via the remote evaluation service",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
			if err != nil {
				return err
			}

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			log.Debug("starting GUI")
			gui.New(cfg, log).Run()

			return nil
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is "+app+".yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}
