package entity

import "fmt"

type OutcomeKind int

const (
	OutcomeEvents OutcomeKind = iota
	OutcomeEmpty
	OutcomeUnreachable
	OutcomeUnsupported
	OutcomeUnknown
)

var outcomeNames = map[OutcomeKind]string{
	OutcomeEvents:      "events",
	OutcomeEmpty:       "empty",
	OutcomeUnreachable: "unreachable",
	OutcomeUnsupported: "unsupported",
	OutcomeUnknown:     "unknown",
}

func (k OutcomeKind) String() string {
	name, ok := outcomeNames[k]
	if !ok {
		return fmt.Sprintf("outcome(%d)", int(k))
	}

	return name
}

// AllOutcomeKinds lists every kind, in declaration order.
func AllOutcomeKinds() []OutcomeKind {
	return []OutcomeKind{OutcomeEvents, OutcomeEmpty, OutcomeUnreachable, OutcomeUnsupported, OutcomeUnknown}
}

// Outcome is the result of one attempt against one host.
// Events is only set for OutcomeEvents, Err only for the failure kinds.
type Outcome struct {
	Kind   OutcomeKind
	Events []EventRecord
	Err    error
}

// EventsOutcome returns OutcomeEvents, or OutcomeEmpty when there is nothing in events.
func EventsOutcome(events []EventRecord) Outcome {
	if len(events) == 0 {
		return EmptyOutcome()
	}

	return Outcome{Kind: OutcomeEvents, Events: events}
}

func EmptyOutcome() Outcome {
	return Outcome{Kind: OutcomeEmpty}
}

func FailedOutcome(kind OutcomeKind, err error) Outcome {
	return Outcome{Kind: kind, Err: err}
}

func (o Outcome) Failed() bool {
	switch o.Kind {
	case OutcomeUnreachable, OutcomeUnsupported, OutcomeUnknown:
		return true
	default:
		return false
	}
}
