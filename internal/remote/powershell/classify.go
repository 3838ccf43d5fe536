package powershell

import (
	"strings"

	"github.com/happysysadm/get-administrativeevent/internal/domain/repo"
)

// Windows only reports these conditions as text, this is the one place reading it.
var (
	noEventsMarkers = []string{
		"NoMatchingEventsFound",
		"No events were found that match the specified selection criteria",
		"No matches found",
	}
	unreachableMarkers = []string{
		"The RPC server is unavailable",
		"0x800706BA",
	}
	unsupportedMarkers = []string{
		"There are no more endpoints available from the endpoint mapper",
		"0x800706D9",
	}
)

// ClassifyFailure maps the error output of a script to a failure kind.
func ClassifyFailure(stderr string) repo.FailureKind {
	text := strings.ToLower(stderr)

	switch {
	case containsAny(text, unreachableMarkers):
		return repo.FailureUnreachable
	case containsAny(text, unsupportedMarkers):
		return repo.FailureUnsupported
	case containsAny(text, noEventsMarkers):
		return repo.FailureNoEvents
	default:
		return repo.FailureUnknown
	}
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, strings.ToLower(marker)) {
			return true
		}
	}

	return false
}
