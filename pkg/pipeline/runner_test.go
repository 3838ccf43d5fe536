package pipeline_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/happysysadm/get-administrativeevent/pkg/pipeline"
	"github.com/happysysadm/get-administrativeevent/pkg/pipeline/mock"
)

type errorRecorder struct {
	mu     sync.Mutex
	errors []pipeline.ErrProcessingError
}

func (r *errorRecorder) Process(_ context.Context, pErr pipeline.ErrProcessingError) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errors = append(r.errors, pErr)

	return nil
}

func (r *errorRecorder) Categories() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ret := make([]string, 0, len(r.errors))
	for _, e := range r.errors {
		ret = append(ret, e.Category)
	}

	return ret
}

var _ = Describe("Testing Runner", func() {
	var ctrl *gomock.Controller
	var proc *mock.MockProcessing[string]
	var recorder *errorRecorder

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		proc = mock.NewMockProcessing[string](ctrl)
		recorder = &errorRecorder{}
	})

	When("running sequentially", func() {
		It("should process payloads in order", func(ctx SpecContext) {
			gomock.InOrder(
				proc.EXPECT().Process(gomock.Any(), "SRV01").Return(nil).Times(1),
				proc.EXPECT().Process(gomock.Any(), "SRV02").Return(nil).Times(1),
				proc.EXPECT().Process(gomock.Any(), "SRV03").Return(nil).Times(1),
			)

			runner := pipeline.NewRunner[string](proc, recorder, 1).WithLogger(GinkgoLogr)

			err := runner.Run(ctx, []string{"SRV01", "SRV02", "SRV03"})
			Expect(err).NotTo(HaveOccurred())
			Expect(recorder.Categories()).To(BeEmpty())
		})

		It("should keep going after a failed payload", func(ctx SpecContext) {
			gomock.InOrder(
				proc.EXPECT().Process(gomock.Any(), "SRV01").Return(pipeline.NewErrProcessingError(errOneError, oneCategory, nil)).Times(1),
				proc.EXPECT().Process(gomock.Any(), "SRV02").Return(errOneError).Times(1),
				proc.EXPECT().Process(gomock.Any(), "SRV03").Return(nil).Times(1),
			)

			runner := pipeline.NewRunner[string](proc, recorder, 0)

			err := runner.Run(ctx, []string{"SRV01", "SRV02", "SRV03"})
			Expect(err).NotTo(HaveOccurred())

			By("forwarding categorized and uncategorized errors")
			Expect(recorder.Categories()).To(Equal([]string{oneCategory, pipeline.UnknownCategory}))
		})

		It("should not crash without error processing", func(ctx SpecContext) {
			proc.EXPECT().Process(gomock.Any(), "SRV01").Return(errOneError).Times(1)

			runner := pipeline.NewRunner[string](proc, nil, 1)

			Expect(runner.Run(ctx, []string{"SRV01"})).To(Succeed())
		})
	})

	When("the context is cancelled", func() {
		It("should stop starting new payloads and not report errors", func() {
			ctx, cancel := context.WithCancel(context.Background())

			proc.EXPECT().Process(gomock.Any(), "SRV01").DoAndReturn(func(context.Context, string) error {
				cancel()

				return errors.New("interrupted")
			}).Times(1)

			runner := pipeline.NewRunner[string](proc, recorder, 1)

			err := runner.Run(ctx, []string{"SRV01", "SRV02"})
			Expect(err).Should(MatchError(context.Canceled))
			Expect(recorder.Categories()).To(BeEmpty())
		})
	})

	When("running with a concurrency of 2", func() {
		It("should never run more than 2 payloads at once", func(ctx SpecContext) {
			var running, maxRunning atomic.Int32

			slow := pipeline.ProcessingFunc[string](func(context.Context, string) error {
				current := running.Add(1)
				defer running.Add(-1)

				for {
					seen := maxRunning.Load()
					if current <= seen || maxRunning.CompareAndSwap(seen, current) {
						break
					}
				}

				time.Sleep(10 * time.Millisecond)

				return nil
			})

			runner := pipeline.NewRunner[string](slow, recorder, 2)

			err := runner.Run(ctx, []string{"a", "b", "c", "d", "e", "f"})
			Expect(err).NotTo(HaveOccurred())
			Expect(maxRunning.Load()).To(BeNumerically("<=", 2))
			Expect(maxRunning.Load()).To(BeNumerically(">=", 1))
		})
	})
})
