package repo

import (
	"context"

	"github.com/happysysadm/get-administrativeevent/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -package=mock -destination=./mock/mock_repo.go

// ChannelLister enumerates the event logs of a host.
type ChannelLister interface {
	ListChannels(ctx context.Context, host string, cred *entity.Credential) ([]entity.LogChannel, error)
}

// EventQuerier runs a filtered query against the modern event API.
type EventQuerier interface {
	QueryEvents(ctx context.Context, host string, cred *entity.Credential, filter entity.EventFilter) ([]entity.EventRecord, error)
}

// LegacyReader reads the newest entries of a log through the legacy API.
type LegacyReader interface {
	ReadEntries(ctx context.Context, host string, cred *entity.Credential, filter entity.LegacyFilter) ([]entity.LegacyEntry, error)
}

type Remote interface {
	ChannelLister
	EventQuerier
	LegacyReader
}
