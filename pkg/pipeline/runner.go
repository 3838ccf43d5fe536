package pipeline

import (
	"context"
	"errors"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
)

// Runner feeds every payload to the processing, at most concurrency at a time.
// A failing payload is handed to the error processing and never stops the others.
type Runner[Payload any] struct {
	processing      Processing[Payload]
	errorProcessing ErrorProcessing
	concurrency     int

	logger *logr.Logger
}

func NewRunner[Payload any](processing Processing[Payload], errorProcessing ErrorProcessing, concurrency int) Runner[Payload] {
	if concurrency < 1 {
		concurrency = 1
	}

	return Runner[Payload]{
		processing:      processing,
		errorProcessing: errorProcessing,
		concurrency:     concurrency,
	}
}

func (r Runner[Payload]) WithLogger(logger logr.Logger) Runner[Payload] {
	r.logger = &logger

	return r
}

// Run blocks until every payload has been processed or the context is cancelled.
// With a concurrency of 1, payloads are processed one after the other in order.
func (r Runner[Payload]) Run(ctx context.Context, payloads []Payload) error {
	group := errgroup.Group{}
	group.SetLimit(r.concurrency)

	r.logInfo(2, "Start processing", "payloads", len(payloads), "concurrency", r.concurrency)

	for i := range payloads {
		// Don't start new payloads once cancelled, running ones are left to finish
		if ctx.Err() != nil {
			r.logInfo(0, "Context expired, skipping remaining payloads", "remaining", len(payloads)-i)

			break
		}

		payload := payloads[i]

		group.Go(func() error {
			// The slot may have been granted after a cancellation
			if ctx.Err() != nil {
				return nil
			}

			r.handle(ctx, payload)

			return nil
		})
	}

	_ = group.Wait()

	return ctx.Err()
}

func (r Runner[Payload]) handle(ctx context.Context, payload Payload) {
	err := r.processing.Process(ctx, payload)
	if err == nil {
		return
	}

	r.processError(ctx, err)
}

func (r Runner[Payload]) processError(ctx context.Context, pipelineError error) {
	// Cancellation is not a payload failure
	if ctx.Err() != nil {
		r.logInfo(1, "Not processing error, context has been cancelled")

		return
	}

	if r.errorProcessing == nil {
		r.logError(pipelineError, "Processing failed")

		return
	}

	processingError := createProcessingError(pipelineError)

	r.logInfo(1, "Processing failed", "category", processingError.Category, "inputs", processingError.AdditionalInputs, "error", pipelineError.Error())

	err := r.errorProcessing.Process(ctx, processingError)
	if err != nil {
		r.logError(err, "Error pipeline failed", "category", processingError.Category, "inputs", processingError.AdditionalInputs)
	}
}

func (r Runner[Payload]) logInfo(level int, msg string, keysAndValues ...any) {
	if r.logger == nil {
		return
	}

	r.logger.V(level).Info(msg, keysAndValues...)
}

func (r Runner[Payload]) logError(err error, msg string, keysAndValues ...any) {
	if r.logger == nil {
		return
	}

	r.logger.Error(err, msg, keysAndValues...)
}

func createProcessingError(err error) ErrProcessingError {
	ret := ErrProcessingError{}
	if errors.As(err, &ret) {
		return ret
	}

	return NewErrProcessingError(err, UnknownCategory, nil)
}
