package processing

import "github.com/happysysadm/get-administrativeevent/internal/domain/entity"

// Consolidate keeps the most recent record of every event ID.
//
// When two records of the same ID share the same TimeCreated, the first one in input order is kept.
// Records come out in the order their ID was first seen, callers needing another order must sort.
func Consolidate(events []entity.EventRecord) []entity.EventRecord {
	index := make(map[int]int, len(events))
	ret := make([]entity.EventRecord, 0, len(events))

	for _, event := range events {
		i, seen := index[event.EventID]
		if !seen {
			index[event.EventID] = len(ret)
			ret = append(ret, event)

			continue
		}

		if event.TimeCreated.After(ret[i].TimeCreated) {
			ret[i] = event
		}
	}

	return ret
}
