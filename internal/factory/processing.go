package factory

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/happysysadm/get-administrativeevent/internal/config"
	"github.com/happysysadm/get-administrativeevent/internal/domain/repo"
	"github.com/happysysadm/get-administrativeevent/internal/processing"
	"github.com/happysysadm/get-administrativeevent/pkg/pipeline"
)

const namespace = "admin_events"

// Remote calls last seconds, up to the configured timeout
var hostBuckets = []float64{100, 250, 500, 1000, 2500, 5000, 10000, 30000, 60000, 120000}

/*
 * CreateQuerier builds the host query as follow:
 *
 * outcome count --> host query (primary --> legacy)
 */
func CreateQuerier(conf config.Config, remote repo.Remote, registry prometheus.Registerer) (processing.Querier, error) {
	hostQuery := processing.NewHostQuery(remote, remote, remote).WithLegacyNewest(conf.Query.LegacyNewest)

	ret, err := processing.NewCountOutcome(hostQuery, registry, pipeline.MetricsConfig{Namespace: namespace})
	if err != nil {
		return nil, fmt.Errorf("failed to create outcome count querier: %w", err)
	}

	return ret, nil
}

/*
 * DecorateProcessing decorates the processing as follow:
 *
 * panic --> duration --> main (query + consolidate + aggregate)
 */
func DecorateProcessing(mainProcessing pipeline.Processing[processing.HostTask], registry prometheus.Registerer) (pipeline.Processing[processing.HostTask], error) {
	ret := mainProcessing

	ret, err := pipeline.NewDurationMetricsDecoratorProcessing(ret, registry, clockwork.NewRealClock(), pipeline.MetricsConfig{Namespace: namespace, Buckets: hostBuckets})
	if err != nil {
		return nil, fmt.Errorf("failed to create duration metrics processor: %w", err)
	}

	ret = pipeline.NewPanicHandlerProcessing(ret)

	return ret, nil
}

/*
 * DecorateErrorProcessing decorates the error processing as follow:
 *
 *										---> main (exclusions)
 *	panic --> duration --> parallel ---|
 *										---> error count
 */
func DecorateErrorProcessing(mainProcessing pipeline.ErrorProcessing, registry prometheus.Registerer) (pipeline.ErrorProcessing, error) {
	ret := mainProcessing

	errorCount, err := pipeline.NewErrorCountProcessing(registry, pipeline.MetricsConfig{Namespace: namespace})
	if err != nil {
		return nil, fmt.Errorf("failed to create error count processing: %w", err)
	}

	ret = pipeline.NewParallelProcessing(ret, errorCount)

	ret, err = pipeline.NewDurationMetricsDecoratorProcessing(ret, registry, clockwork.NewRealClock(), pipeline.MetricsConfig{Namespace: namespace + "_error"})
	if err != nil {
		return nil, fmt.Errorf("failed to create duration metrics processor: %w", err)
	}

	ret = pipeline.NewPanicHandlerProcessing(ret)

	return ret, nil
}

// CreateCollector wires the whole host pipeline. Excluded hosts are recorded in the returned Exclusions.
func CreateCollector(conf config.Config, remote repo.Remote, registry prometheus.Registerer) (processing.Collector, *processing.Exclusions, error) {
	querier, err := CreateQuerier(conf, remote, registry)
	if err != nil {
		return processing.Collector{}, nil, err
	}

	mainProcessing, err := DecorateProcessing(processing.NewMain(querier), registry)
	if err != nil {
		return processing.Collector{}, nil, err
	}

	exclusions := processing.NewExclusions()

	errorProcessing, err := DecorateErrorProcessing(exclusions, registry)
	if err != nil {
		return processing.Collector{}, nil, err
	}

	ret := processing.NewCollector(mainProcessing, errorProcessing, clockwork.NewRealClock(), conf.Fanout.Concurrency)

	return ret, exclusions, nil
}
