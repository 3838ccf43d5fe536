package processing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/happysysadm/get-administrativeevent/internal/domain/entity"
	"github.com/happysysadm/get-administrativeevent/pkg/pipeline"
)

var (
	ErrNoComputerNames   = errors.New("at least one computer name is required")
	ErrBlankComputerName = errors.New("computer name must not be blank")
	ErrInvalidHoursBack  = errors.New("hours back must be a positive number of hours")
)

// Request describes one collection over a set of hosts.
type Request struct {
	ComputerNames []string
	Credential    *entity.Credential
	HoursBack     int
}

// Validate is run before any host is contacted.
func (r Request) Validate() error {
	if len(r.ComputerNames) == 0 {
		return ErrNoComputerNames
	}

	for i, name := range r.ComputerNames {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("computer name #%d: %w", i+1, ErrBlankComputerName)
		}
	}

	if r.HoursBack <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidHoursBack, r.HoursBack)
	}

	return nil
}

// Collector runs the host processing over every requested host and returns the merged report.
type Collector struct {
	processing      pipeline.Processing[HostTask]
	errorProcessing pipeline.ErrorProcessing
	clock           clockwork.Clock
	concurrency     int

	logger *logr.Logger
}

func NewCollector(processing pipeline.Processing[HostTask], errorProcessing pipeline.ErrorProcessing, clock clockwork.Clock, concurrency int) Collector {
	return Collector{
		processing:      processing,
		errorProcessing: errorProcessing,
		clock:           clock,
		concurrency:     concurrency,
	}
}

func (c Collector) WithLogger(logger logr.Logger) Collector {
	c.logger = &logger

	return c
}

// Collect returns the consolidated events of every host that had some. Hosts failing are
// skipped. An error is only returned for an invalid request or a cancelled context.
func (c Collector) Collect(ctx context.Context, req Request) ([]entity.EventRecord, error) {
	err := req.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	logger := logr.Discard()
	if c.logger != nil {
		logger = *c.logger
	}

	logger = logger.WithValues("run", uuid.New().String())
	ctx = logr.NewContext(ctx, logger)

	start := ComputeStartTime(c.clock, req.HoursBack)
	report := NewAggregator()

	hosts := uniqueHosts(req.ComputerNames)
	if len(hosts) != len(req.ComputerNames) {
		logger.V(1).Info("Duplicate computer names ignored", "requested", len(req.ComputerNames), "unique", len(hosts))
	}

	tasks := make([]HostTask, 0, len(hosts))
	for _, host := range hosts {
		tasks = append(tasks, HostTask{
			Host:       host,
			Credential: req.Credential,
			StartTime:  start,
			Report:     report,
		})
	}

	logger.V(1).Info("Collecting events", "hosts", len(tasks), "start", start, "concurrency", c.concurrency)

	runner := pipeline.NewRunner(c.processing, c.errorProcessing, c.concurrency).WithLogger(logger)

	err = runner.Run(ctx, tasks)

	ret := report.Report()

	logger.V(1).Info("Collection done", "events", len(ret), "contributions", report.Contributions())

	if err != nil {
		return ret, fmt.Errorf("collection interrupted: %w", err)
	}

	return ret, nil
}

// uniqueHosts trims the names and keeps the first spelling of each, host names are case insensitive.
func uniqueHosts(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	ret := make([]string, 0, len(names))

	for _, name := range names {
		host := strings.TrimSpace(name)

		key := strings.ToLower(host)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		ret = append(ret, host)
	}

	return ret
}
