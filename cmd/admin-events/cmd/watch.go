package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/happysysadm/get-administrativeevent/internal/common"
	"github.com/happysysadm/get-administrativeevent/internal/factory"
	"github.com/happysysadm/get-administrativeevent/internal/log"
)

const shutdownTimeout = 5 * time.Second

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Query the hosts periodically and expose prometheus metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.Logger()

		if conf.Watch.Interval <= 0 {
			return fmt.Errorf("watch interval must be positive, got %s", conf.Watch.Interval)
		}

		err := common.SetupRuntime()
		if err != nil {
			logger.Error(err, "failed to setup runtime")

			return err
		}

		// Listen to sigterm and interrupt signals
		ctx := common.SetupSignalHandler(context.Background())

		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			versioncollector.NewCollector("admin_events"),
		)

		r, err := newRun(*conf, registry, cmd.OutOrStdout(), logger)
		if err != nil {
			return err
		}

		// Start metrics server
		server := factory.CreatePrometheusServer(conf.Metrics, registry)

		go func() {
			logger.V(1).Info("Starting metrics server", "addr", server.Addr)

			err := server.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error(err, "Metrics server failed")
			}
		}()

		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			err := server.Shutdown(shutdownCtx)
			if err != nil {
				logger.Error(err, "Failed to stop metrics server")
			}
		}()

		ticker := time.NewTicker(conf.Watch.Interval)
		defer ticker.Stop()

		for {
			err = r.Do(ctx)

			switch {
			case ctx.Err() != nil:
				logger.V(1).Info("Watch stopped")

				return nil
			case err != nil:
				// Invalid requests never get better
				return err
			}

			logger.V(2).Info("Waiting for next collection", "interval", conf.Watch.Interval.String())

			select {
			case <-ctx.Done():
				logger.V(1).Info("Watch stopped")

				return nil
			case <-ticker.C:
			}
		}
	},
}

func init() {
	watchCmd.Flags().Duration("interval", 5*time.Minute, "time between two collections")
	watchCmd.Flags().Int("metrics-port", 7777, "port serving /metrics")

	cobra.CheckErr(viper.BindPFlag("watch.interval", watchCmd.Flags().Lookup("interval")))
	cobra.CheckErr(viper.BindPFlag("metrics.port", watchCmd.Flags().Lookup("metrics-port")))

	rootCmd.AddCommand(watchCmd)
}
