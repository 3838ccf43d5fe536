package processing

import (
	"strings"

	"github.com/happysysadm/get-administrativeevent/internal/domain/entity"
)

const (
	channelTypeAdministrative = "administrative"
	channelIsolationSystem    = "system"
)

// SelectChannels keeps the administrative, system isolated logs that hold at least one record.
// Empty logs are skipped so they are never queried.
func SelectChannels(channels []entity.LogChannel) []string {
	ret := make([]string, 0, len(channels))

	for _, channel := range channels {
		if !strings.EqualFold(channel.Type, channelTypeAdministrative) {
			continue
		}

		if !strings.EqualFold(channel.Isolation, channelIsolationSystem) {
			continue
		}

		if channel.RecordCount <= 0 {
			continue
		}

		ret = append(ret, channel.Name)
	}

	return ret
}
