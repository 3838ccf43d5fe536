package processing

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/happysysadm/get-administrativeevent/internal/domain/entity"
	"github.com/happysysadm/get-administrativeevent/pkg/pipeline"
)

// CountOutcome counts the final outcome of every host query.
type CountOutcome struct {
	counter *prometheus.CounterVec
	events  prometheus.Counter
	inner   Querier
}

func NewCountOutcome(q Querier, registry prometheus.Registerer, config pipeline.MetricsConfig) (Querier, error) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: config.Namespace,
		Name:      "host_outcome_total",
		Help:      "Host query counter by outcome.",
	}, []string{"outcome"})

	events := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: config.Namespace,
		Name:      "retrieved_events_total",
		Help:      "Events retrieved before consolidation.",
	})

	for _, collector := range []prometheus.Collector{counter, events} {
		err := registry.Register(collector)
		if err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}

	// Expose every outcome from the start, even at zero
	for _, kind := range entity.AllOutcomeKinds() {
		counter.WithLabelValues(kind.String())
	}

	ret := CountOutcome{
		counter: counter,
		events:  events,
		inner:   q,
	}

	return ret, nil
}

func (c CountOutcome) Query(ctx context.Context, host string, cred *entity.Credential, start time.Time) entity.Outcome {
	outcome := c.inner.Query(ctx, host, cred, start)

	c.counter.WithLabelValues(outcome.Kind.String()).Inc()
	c.events.Add(float64(len(outcome.Events)))

	return outcome
}
