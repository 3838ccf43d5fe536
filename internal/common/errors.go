package common

import (
	"fmt"

	"github.com/happysysadm/get-administrativeevent/pkg/pipeline"
)

func NewErrProcessingError(err error, category string, inputs []pipeline.Input, reason string, args ...interface{}) pipeline.ErrProcessingError {
	cause := fmt.Sprintf(reason, args...)
	dErr := fmt.Errorf("%s: %w", cause, err)

	return pipeline.NewErrProcessingError(dErr, category, inputs)
}

const InputSourceHost = "host"

// HostInputs identifies the host a processing error relates to.
func HostInputs(host string) []pipeline.Input {
	return []pipeline.Input{{Source: InputSourceHost, Key: host}}
}
