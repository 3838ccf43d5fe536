package processing

import (
	"github.com/happysysadm/get-administrativeevent/internal/domain/entity"
	"github.com/happysysadm/get-administrativeevent/internal/domain/repo"
)

// ClassifyPrimaryFailure maps a failure of the modern API to an outcome.
// Only OutcomeUnsupported leads to the legacy API.
func ClassifyPrimaryFailure(err error) entity.OutcomeKind {
	switch repo.KindOf(err) {
	case repo.FailureNoEvents:
		return entity.OutcomeEmpty
	case repo.FailureUnreachable:
		return entity.OutcomeUnreachable
	case repo.FailureUnsupported:
		return entity.OutcomeUnsupported
	default:
		return entity.OutcomeUnknown
	}
}

// ClassifyLegacyFailure maps a failure of the legacy API to an outcome.
// There is no further fallback, so anything but an empty answer is unknown.
func ClassifyLegacyFailure(err error) entity.OutcomeKind {
	if repo.KindOf(err) == repo.FailureNoEvents {
		return entity.OutcomeEmpty
	}

	return entity.OutcomeUnknown
}

func classifiedOutcome(kind entity.OutcomeKind, err error) entity.Outcome {
	if kind == entity.OutcomeEmpty {
		return entity.EmptyOutcome()
	}

	return entity.FailedOutcome(kind, err)
}
