package cmd

import (
	"fmt"

	"github.com/prometheus/common/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/happysysadm/get-administrativeevent/internal/config"
	"github.com/happysysadm/get-administrativeevent/internal/log"
)

const appName = "admin-events"

var (
	cfgFile string
	conf    *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          appName,
	Short:        "Retrieve critical and error events from the administrative logs of Windows hosts",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		conf, err = config.Parse(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to parse config %s: %w", cfgFile, err)
		}

		// Init logger
		err = log.Init(conf.Logs)
		if err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}

		logger := log.Logger()

		// Dump generic information
		logger.V(1).Info("Starting "+appName,
			"command", cmd.Name(),
			"version", version.Info(),
			"buildContext", version.BuildContext(),
		)
		logger.V(1).Info("Using config", "config", fmt.Sprintf("%+v", *conf))

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	flags.StringSliceP("computer-name", "c", nil, "host to query, repeat the flag or separate names with commas")
	flags.Int("hours-back", 1, "how many hours of events to retrieve")
	flags.String("username", "", "account used to reach the hosts, the password is read from the config or ADMINEVENTS_CREDENTIAL_PASSWORD")
	flags.Int("parallel", 1, "how many hosts are queried at the same time")
	flags.StringP("output", "o", string(config.OutputFormatJson), "output format: json, yaml or table")
	flags.Int("log-level", 0, "log verbosity, 0 only shows warnings about excluded hosts")

	bindings := map[string]string{
		"query.computerNames": "computer-name",
		"query.hoursBack":     "hours-back",
		"credential.username": "username",
		"fanout.concurrency":  "parallel",
		"output.format":       "output",
		"logs.level":          "log-level",
	}

	for key, flag := range bindings {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(flag)))
	}
}
