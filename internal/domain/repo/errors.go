package repo

import (
	"errors"
	"fmt"
)

// FailureKind is the classification a remote adapter gives to a failed call.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	// FailureNoEvents means the host answered but nothing matched.
	FailureNoEvents
	// FailureUnreachable is an RPC level failure, the host could not be talked to.
	FailureUnreachable
	// FailureUnsupported means the host does not expose the requested API.
	FailureUnsupported
)

func (k FailureKind) String() string {
	switch k {
	case FailureNoEvents:
		return "no_events"
	case FailureUnreachable:
		return "unreachable"
	case FailureUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

type QueryError struct {
	error
	Kind FailureKind
	Host string
}

func NewQueryError(err error, kind FailureKind, host string) QueryError {
	return QueryError{
		error: err,
		Kind:  kind,
		Host:  host,
	}
}

func (e QueryError) Error() string {
	return fmt.Sprintf("%s on %s: %v", e.Kind, e.Host, e.error)
}

func (e QueryError) Unwrap() error {
	return e.error
}

// KindOf returns the kind of the first QueryError in the chain, FailureUnknown otherwise.
func KindOf(err error) FailureKind {
	qErr := QueryError{}
	if errors.As(err, &qErr) {
		return qErr.Kind
	}

	return FailureUnknown
}
