package processing

import (
	"sync"

	"github.com/happysysadm/get-administrativeevent/internal/domain/entity"
)

// Aggregator is the single merge point of a run. It is safe for concurrent use.
type Aggregator struct {
	mu sync.Mutex

	records []entity.EventRecord
	hosts   map[string]int
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		hosts: make(map[string]int),
	}
}

// Add appends the consolidated records of one host.
func (a *Aggregator) Add(host string, records []entity.EventRecord) {
	if len(records) == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.records = append(a.records, records...)
	a.hosts[host] += len(records)
}

// Report returns a copy of everything added so far.
func (a *Aggregator) Report() []entity.EventRecord {
	a.mu.Lock()
	defer a.mu.Unlock()

	ret := make([]entity.EventRecord, len(a.records))
	copy(ret, a.records)

	return ret
}

// Contributions returns the number of records added per host.
func (a *Aggregator) Contributions() map[string]int {
	a.mu.Lock()
	defer a.mu.Unlock()

	ret := make(map[string]int, len(a.hosts))
	for host, count := range a.hosts {
		ret[host] = count
	}

	return ret
}
