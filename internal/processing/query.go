package processing

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/happysysadm/get-administrativeevent/internal/domain/entity"
	"github.com/happysysadm/get-administrativeevent/internal/domain/repo"
)

// DefaultLegacyNewest is how many entries are read from the legacy API by default.
const DefaultLegacyNewest = 1000

const (
	legacyLogName   = "system"
	legacyEntryType = "Error"

	pathPrimary = "primary"
	pathLegacy  = "legacy"
)

var primaryLevels = []entity.Level{entity.LevelCritical, entity.LevelError}

// Querier retrieves the events of one host since start.
type Querier interface {
	Query(ctx context.Context, host string, cred *entity.Credential, start time.Time) entity.Outcome
}

// HostQuery tries the modern event API first and falls back to the legacy one
// when the host does not support it.
type HostQuery struct {
	lister  repo.ChannelLister
	querier repo.EventQuerier
	legacy  repo.LegacyReader

	legacyNewest int
}

func NewHostQuery(lister repo.ChannelLister, querier repo.EventQuerier, legacy repo.LegacyReader) HostQuery {
	return HostQuery{
		lister:       lister,
		querier:      querier,
		legacy:       legacy,
		legacyNewest: DefaultLegacyNewest,
	}
}

// WithLegacyNewest changes how many entries are read from the legacy API.
func (q HostQuery) WithLegacyNewest(newest int) HostQuery {
	if newest > 0 {
		q.legacyNewest = newest
	}

	return q
}

// Query never fails: every failure is turned into an outcome and reported through
// the logger found in ctx.
func (q HostQuery) Query(ctx context.Context, host string, cred *entity.Credential, start time.Time) entity.Outcome {
	logger := logr.FromContextOrDiscard(ctx).WithValues("host", host)

	logger.V(2).Info("Querying host", "start", start)

	outcome := q.queryPrimary(ctx, host, cred, start)
	if outcome.Kind != entity.OutcomeUnsupported {
		notify(logger, pathPrimary, outcome)

		return outcome
	}

	logger.V(1).Info("Modern event API unsupported, falling back to legacy API", "error", errString(outcome.Err))

	outcome = q.queryLegacy(ctx, host, cred, start)
	notify(logger, pathLegacy, outcome)

	return outcome
}

func (q HostQuery) queryPrimary(ctx context.Context, host string, cred *entity.Credential, start time.Time) entity.Outcome {
	channels, err := q.lister.ListChannels(ctx, host, cred)
	if err != nil {
		return classifiedOutcome(ClassifyPrimaryFailure(err), fmt.Errorf("failed to list channels: %w", err))
	}

	logNames := SelectChannels(channels)
	if len(logNames) == 0 {
		return entity.EmptyOutcome()
	}

	filter := entity.EventFilter{
		LogNames:  logNames,
		Levels:    primaryLevels,
		StartTime: start,
	}

	events, err := q.querier.QueryEvents(ctx, host, cred, filter)
	if err != nil {
		return classifiedOutcome(ClassifyPrimaryFailure(err), fmt.Errorf("failed to query events: %w", err))
	}

	for i := range events {
		if events[i].HostName == "" {
			events[i].HostName = host
		}
	}

	return entity.EventsOutcome(events)
}

func (q HostQuery) queryLegacy(ctx context.Context, host string, cred *entity.Credential, start time.Time) entity.Outcome {
	filter := entity.LegacyFilter{
		LogName:   legacyLogName,
		EntryType: legacyEntryType,
		Newest:    q.legacyNewest,
	}

	entries, err := q.legacy.ReadEntries(ctx, host, cred, filter)
	if err != nil {
		return classifiedOutcome(ClassifyLegacyFailure(err), fmt.Errorf("failed to read legacy entries: %w", err))
	}

	return entity.EventsOutcome(ProjectLegacyEntries(host, entries, start))
}

// ProjectLegacyEntries converts the legacy entries strictly newer than start.
func ProjectLegacyEntries(host string, entries []entity.LegacyEntry, start time.Time) []entity.EventRecord {
	ret := make([]entity.EventRecord, 0, len(entries))

	for _, entry := range entries {
		if !entry.TimeGenerated.After(start) {
			continue
		}

		hostName := entry.MachineName
		if hostName == "" {
			hostName = host
		}

		ret = append(ret, entity.EventRecord{
			HostName:         hostName,
			TimeCreated:      entry.TimeGenerated,
			ProviderName:     entry.Source,
			LogName:          legacyLogName,
			EventID:          entry.EventID,
			LevelDisplayName: entry.EntryType,
			Message:          entry.Message,
		})
	}

	return ret
}

// notify reports the outcome of a path. Every outcome but events is a warning, on both paths.
func notify(logger logr.Logger, path string, outcome entity.Outcome) {
	switch outcome.Kind {
	case entity.OutcomeEvents:
		logger.V(1).Info("Events retrieved", "path", path, "count", len(outcome.Events))
	case entity.OutcomeEmpty:
		logger.Info("No qualifying events found", "path", path, "outcome", outcome.Kind.String())
	case entity.OutcomeUnreachable:
		logger.Info("Host unreachable, remote procedure call failed", "path", path, "outcome", outcome.Kind.String(), "error", errString(outcome.Err))
	default:
		logger.Info("Unknown failure while retrieving events", "path", path, "outcome", outcome.Kind.String(), "error", errString(outcome.Err))
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}
