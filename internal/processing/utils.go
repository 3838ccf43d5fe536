package processing

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// ComputeStartTime returns the beginning of the lookback window ending now.
func ComputeStartTime(clock clockwork.Clock, hoursBack int) time.Time {
	now := clock.Now().UTC()

	return now.Add(-time.Duration(hoursBack) * time.Hour)
}
