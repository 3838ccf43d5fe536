package processing

import (
	"context"
	"fmt"
	"sync"

	"github.com/happysysadm/get-administrativeevent/internal/common"
	"github.com/happysysadm/get-administrativeevent/internal/domain/entity"
	"github.com/happysysadm/get-administrativeevent/pkg/pipeline"
)

const (
	CategoryUnreachable = "unreachable"
	CategoryUnsupported = "unsupported"
	CategoryUnknown     = "unknown"
)

// CategoryOf returns the processing error category of a failed outcome.
func CategoryOf(kind entity.OutcomeKind) string {
	switch kind {
	case entity.OutcomeUnreachable:
		return CategoryUnreachable
	case entity.OutcomeUnsupported:
		return CategoryUnsupported
	default:
		return CategoryUnknown
	}
}

// Exclusions records the hosts left out of the report, with the category of their failure.
type Exclusions struct {
	mu    sync.Mutex
	hosts map[string]string
}

func NewExclusions() *Exclusions {
	return &Exclusions{
		hosts: map[string]string{},
	}
}

func (e *Exclusions) Process(ctx context.Context, processingError pipeline.ErrProcessingError) error {
	host := ""

	for _, input := range processingError.AdditionalInputs {
		if input.Source == common.InputSourceHost {
			host = input.Key
		}
	}

	if host == "" {
		return fmt.Errorf("no host in processing error: %w", processingError)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.hosts[host] = processingError.Category

	return nil
}

// Drain returns the hosts excluded so far and forgets them.
func (e *Exclusions) Drain() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()

	ret := e.hosts
	e.hosts = map[string]string{}

	return ret
}
