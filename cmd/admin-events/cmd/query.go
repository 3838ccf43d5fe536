package cmd

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/happysysadm/get-administrativeevent/internal/common"
	"github.com/happysysadm/get-administrativeevent/internal/log"
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query the hosts once and print the most recent occurrence of every event",
	Example: `  admin-events query -c SRV01 -c SRV02 --hours-back 24 -o table
  ADMINEVENTS_CREDENTIAL_PASSWORD=... admin-events query -c SRV01 --username 'CONTOSO\ops'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.Logger()

		err := common.SetupRuntime()
		if err != nil {
			logger.Error(err, "failed to setup runtime")

			return err
		}

		// Listen to sigterm and interrupt signals
		ctx := common.SetupSignalHandler(context.Background())

		// Metrics are not exposed by a single query
		r, err := newRun(*conf, prometheus.NewRegistry(), cmd.OutOrStdout(), logger)
		if err != nil {
			return err
		}

		err = r.Do(ctx)
		if err != nil {
			return err
		}

		logger.V(2).Info("Query done")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
