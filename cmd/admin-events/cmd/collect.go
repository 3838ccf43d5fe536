package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/happysysadm/get-administrativeevent/internal/config"
	"github.com/happysysadm/get-administrativeevent/internal/factory"
	"github.com/happysysadm/get-administrativeevent/internal/output"
	"github.com/happysysadm/get-administrativeevent/internal/processing"
)

// run is one collection followed by the printing of its report.
type run struct {
	conf       config.Config
	collector  processing.Collector
	exclusions *processing.Exclusions
	out        io.Writer
	logger     logr.Logger
}

func newRun(conf config.Config, registry prometheus.Registerer, out io.Writer, logger logr.Logger) (run, error) {
	err := output.CheckFormat(conf.Output.Format)
	if err != nil {
		return run{}, err
	}

	collector, exclusions, err := factory.CreateCollector(conf, factory.CreateRemote(conf), registry)
	if err != nil {
		return run{}, fmt.Errorf("failed to create collector: %w", err)
	}

	ret := run{
		conf:       conf,
		collector:  collector.WithLogger(logger),
		exclusions: exclusions,
		out:        out,
		logger:     logger,
	}

	return ret, nil
}

func (r run) Do(ctx context.Context) error {
	req := processing.Request{
		ComputerNames: r.conf.Query.ComputerNames,
		Credential:    factory.CreateCredential(r.conf.Credential),
		HoursBack:     r.conf.Query.HoursBack,
	}

	report, collectErr := r.collector.Collect(ctx, req)

	excluded := r.exclusions.Drain()
	if len(excluded) > 0 {
		r.logger.V(1).Info("Hosts excluded from report", "hosts", excluded)
	}

	// Invalid request, nothing was collected
	if collectErr != nil && report == nil {
		return collectErr
	}

	err := output.Write(r.out, report, r.conf.Output.Format, time.Now())
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return collectErr
}
