package processing

import (
	"context"
	"errors"
	"time"

	"github.com/happysysadm/get-administrativeevent/internal/common"
	"github.com/happysysadm/get-administrativeevent/internal/domain/entity"
	"github.com/happysysadm/get-administrativeevent/pkg/pipeline"
)

// HostTask is the payload processed once per host.
type HostTask struct {
	Host       string
	Credential *entity.Credential
	StartTime  time.Time

	// Report receives the consolidated events of the host
	Report *Aggregator
}

func (t HostTask) Inputs() []pipeline.Input {
	return common.HostInputs(t.Host)
}

// Main queries a host, consolidates its events and adds them to the task report.
// Failed hosts are returned as categorized errors and contribute nothing.
type Main struct {
	querier Querier
}

func NewMain(querier Querier) Main {
	return Main{
		querier: querier,
	}
}

func (m Main) Process(ctx context.Context, task HostTask) error {
	outcome := m.querier.Query(ctx, task.Host, task.Credential, task.StartTime)

	switch outcome.Kind {
	case entity.OutcomeEvents:
		task.Report.Add(task.Host, Consolidate(outcome.Events))

		return nil
	case entity.OutcomeEmpty:
		return nil
	default:
		err := outcome.Err
		if err == nil {
			err = errors.New(outcome.Kind.String())
		}

		return common.NewErrProcessingError(err, CategoryOf(outcome.Kind), common.HostInputs(task.Host), "host %s excluded from report", task.Host)
	}
}
