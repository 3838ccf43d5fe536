package pipeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	promdto "github.com/prometheus/client_model/go"
	"go.uber.org/mock/gomock"

	"github.com/happysysadm/get-administrativeevent/pkg/pipeline"
	"github.com/happysysadm/get-administrativeevent/pkg/pipeline/mock"
)

// Helper

type Data struct{}

// Host is an Identifiable payload
type Host struct {
	Name string
}

func (h Host) Inputs() []pipeline.Input {
	return []pipeline.Input{{Source: "host", Key: h.Name}}
}

var (
	data = Data{}

	errOneError = errors.New("error for testing purpose")
	oneCategory = "category1"

	errCategorizedProcessingError = pipeline.NewErrProcessingError(errOneError, oneCategory, nil)

	panicReason = "my specific reason"
)

func panicking[Payload any]() pipeline.Processing[Payload] {
	return pipeline.ProcessingFunc[Payload](func(context.Context, Payload) error {
		panic(panicReason)
	})
}

// SlowProcessor advances a fake clock instead of sleeping
type SlowProcessor struct {
	Sleep time.Duration
	Err   error

	clock clockwork.FakeClock
}

func (s *SlowProcessor) Process(ctx context.Context, data Data) error {
	s.clock.Advance(s.Sleep)

	return s.Err
}

func pointer[T any](obj T) *T {
	return &obj
}

func filterMetricByLabel(metrics []*promdto.Metric, labelName, labelValue string) *promdto.Metric {
	for _, metric := range metrics {
		for _, label := range metric.GetLabel() {
			if label.GetName() == labelName && label.GetValue() == labelValue {
				return metric
			}
		}
	}

	return nil
}

func gatherOne(registry *prometheus.Registry) *promdto.MetricFamily {
	families, err := registry.Gather()
	Expect(err).NotTo(HaveOccurred())
	Expect(families).To(HaveLen(1))

	return families[0]
}

// Test

func TestProcessingHelpers(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Processing helpers test suite")
}

// Test Func

var _ = Describe("Testing ProcessingFunc", func() {
	It("should forward the payload and the error", func(ctx SpecContext) {
		received := Host{}

		proc := pipeline.ProcessingFunc[Host](func(_ context.Context, h Host) error {
			received = h

			return errOneError
		})

		err := proc.Process(ctx, Host{Name: "SRV01"})
		Expect(err).Should(MatchError(errOneError))
		Expect(received.Name).To(Equal("SRV01"))
	})
})

// Test Parallel

var _ = Describe("Testing ParallelProcessing with 2 Processing", func() {
	var parallel pipeline.Processing[Data]
	var proc1, proc2 *mock.MockProcessing[Data]

	BeforeEach(func() {
		ctrl := gomock.NewController(GinkgoT())

		proc1 = mock.NewMockProcessing[Data](ctrl)
		proc2 = mock.NewMockProcessing[Data](ctrl)

		parallel = pipeline.NewParallelProcessing(proc1, proc2)
	})

	It("should succeed when both succeed", func(ctx SpecContext) {
		proc1.EXPECT().Process(gomock.Any(), data).Return(nil).Times(1)
		proc2.EXPECT().Process(gomock.Any(), data).Return(nil).Times(1)

		Expect(parallel.Process(ctx, data)).To(Succeed())
	})

	DescribeTable("should return the error of the failing processing",
		func(ctx SpecContext, err1 error, err2 error, expectedCategory string) {
			proc1.EXPECT().Process(gomock.Any(), data).Return(err1).Times(1)
			proc2.EXPECT().Process(gomock.Any(), data).Return(err2).Times(1)

			err := parallel.Process(ctx, data)
			Expect(err).Should(MatchError(errOneError), "error wraps the original error")

			processingError := pipeline.ErrProcessingError{}
			if expectedCategory == "" {
				Expect(errors.As(err, &processingError)).To(BeFalse(), "generic errors are not categorized")

				return
			}

			Expect(errors.As(err, &processingError)).To(BeTrue(), "error is a ErrProcessingError")
			Expect(processingError.Category).To(Equal(expectedCategory), "category is preserved")
		},
		Entry("first fails with a categorized error", errCategorizedProcessingError, nil, oneCategory),
		Entry("first fails with a generic error", errOneError, nil, ""),
		Entry("second fails with a categorized error", nil, errCategorizedProcessingError, oneCategory),
		Entry("second fails with a generic error", nil, errOneError, ""),
	)

	It("should return one of the errors when both fail", func(ctx SpecContext) {
		err1 := errors.New("error 1")
		err2 := errors.New("error 2")

		proc1.EXPECT().Process(gomock.Any(), data).Return(err1).MaxTimes(1)
		proc2.EXPECT().Process(gomock.Any(), data).Return(err2).MaxTimes(1)

		err := parallel.Process(ctx, data)
		Expect(err).Should(Or(MatchError(err1), MatchError(err2)))
	})
})

// Test Panic Processing

var _ = Describe("Testing panic handler processing", func() {
	When("the inner processing panics on an identifiable payload", func() {
		It("should return a panic error naming the payload", func(ctx SpecContext) {
			err := pipeline.NewPanicHandlerProcessing(panicking[Host]()).Process(ctx, Host{Name: "SRV02"})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(panicReason))

			processingError := pipeline.ErrProcessingError{}
			Expect(errors.As(err, &processingError)).To(BeTrue())
			Expect(processingError.Category).To(Equal(pipeline.PanicCategory))
			Expect(processingError.AdditionalInputs).To(Equal([]pipeline.Input{{Source: "host", Key: "SRV02"}}))
		})
	})

	When("the inner processing panics on an anonymous payload", func() {
		It("should return a panic error without inputs", func(ctx SpecContext) {
			err := pipeline.NewPanicHandlerProcessing(panicking[Data]()).Process(ctx, data)

			processingError := pipeline.ErrProcessingError{}
			Expect(errors.As(err, &processingError)).To(BeTrue())
			Expect(processingError.Category).To(Equal(pipeline.PanicCategory))
			Expect(processingError.AdditionalInputs).To(BeEmpty())
		})
	})

	When("the inner processing doesn't panic", func() {
		var panicHandler pipeline.Processing[Data]
		var mockProc *mock.MockProcessing[Data]

		BeforeEach(func() {
			mockProc = mock.NewMockProcessing[Data](gomock.NewController(GinkgoT()))
			panicHandler = pipeline.NewPanicHandlerProcessing[Data](mockProc)
		})

		It("should return the inner error untouched", func(ctx SpecContext) {
			mockProc.EXPECT().Process(gomock.Any(), data).Return(errOneError).Times(1)

			err := panicHandler.Process(ctx, data)
			Expect(err).To(BeIdenticalTo(errOneError))
		})

		It("should return nil on success", func(ctx SpecContext) {
			mockProc.EXPECT().Process(gomock.Any(), data).Return(nil).Times(1)

			Expect(panicHandler.Process(ctx, data)).To(Succeed())
		})
	})
})

// Test Metric Duration

var _ = Describe("Testing duration metrics decorator", func() {
	var registry *prometheus.Registry
	var metrics pipeline.Processing[Data]
	var proc *SlowProcessor

	BeforeEach(func() {
		var err error

		registry = prometheus.NewPedanticRegistry()
		fakeClock := clockwork.NewFakeClock()

		proc = &SlowProcessor{clock: fakeClock}
		metrics, err = pipeline.NewDurationMetricsDecoratorProcessing[Data](proc, registry, fakeClock,
			pipeline.MetricsConfig{
				Namespace: "test",
				Buckets:   []float64{20, 200, 2000},
			},
		)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should refuse to register twice", func() {
		_, err := pipeline.NewDurationMetricsDecoratorProcessing[Data](proc, registry, clockwork.NewFakeClock(), pipeline.MetricsConfig{Namespace: "test"})
		Expect(err).To(HaveOccurred())
	})

	When("payloads are processed with different durations", func() {
		BeforeEach(func(ctx SpecContext) {
			for _, sleep := range []time.Duration{5, 5, 5, 50, 50, 500} {
				proc.Sleep = sleep * time.Millisecond

				Expect(metrics.Process(ctx, data)).To(Succeed())
			}
		})

		It("should fill the buckets of the success histogram", func() {
			family := gatherOne(registry)
			Expect(family.Metric).To(HaveLen(1))

			metric := filterMetricByLabel(family.Metric, "failed", "false")
			Expect(metric).NotTo(BeNil())
			Expect(metric.Histogram.GetSampleCount()).To(BeEquivalentTo(6))
			Expect(metric.Histogram.Bucket).To(ConsistOf(
				&promdto.Bucket{UpperBound: pointer[float64](20), CumulativeCount: pointer[uint64](3)},
				&promdto.Bucket{UpperBound: pointer[float64](200), CumulativeCount: pointer[uint64](5)},
				&promdto.Bucket{UpperBound: pointer[float64](2000), CumulativeCount: pointer[uint64](6)},
			))
		})
	})

	When("some payloads fail", func() {
		BeforeEach(func(ctx SpecContext) {
			proc.Sleep = 2500 * time.Millisecond
			Expect(metrics.Process(ctx, data)).To(Succeed())

			proc.Sleep = 50 * time.Millisecond
			proc.Err = errOneError
			Expect(metrics.Process(ctx, data)).To(MatchError(errOneError))
		})

		It("should split the samples by failure", func() {
			family := gatherOne(registry)
			Expect(family.Metric).To(HaveLen(2))

			success := filterMetricByLabel(family.Metric, "failed", "false")
			Expect(success).NotTo(BeNil())
			Expect(success.Histogram.GetSampleCount()).To(BeEquivalentTo(1))
			Expect(success.Histogram.Bucket[2].GetCumulativeCount()).To(BeEquivalentTo(0), "2.5s is above every bucket")

			failure := filterMetricByLabel(family.Metric, "failed", "true")
			Expect(failure).NotTo(BeNil())
			Expect(failure.Histogram.GetSampleCount()).To(BeEquivalentTo(1))
			Expect(failure.Histogram.Bucket).To(ConsistOf(
				&promdto.Bucket{UpperBound: pointer[float64](20), CumulativeCount: pointer[uint64](0)},
				&promdto.Bucket{UpperBound: pointer[float64](200), CumulativeCount: pointer[uint64](1)},
				&promdto.Bucket{UpperBound: pointer[float64](2000), CumulativeCount: pointer[uint64](1)},
			))
		})
	})
})

// Test Error Count

var _ = Describe("Testing error count processing", func() {
	var registry *prometheus.Registry
	var count pipeline.Processing[pipeline.ErrProcessingError]

	BeforeEach(func() {
		var err error

		registry = prometheus.NewPedanticRegistry()

		count, err = pipeline.NewErrorCountProcessing(registry, pipeline.MetricsConfig{Namespace: "test"})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should count an empty category under a placeholder", func(ctx SpecContext) {
		Expect(count.Process(ctx, pipeline.NewErrProcessingError(errOneError, "", nil))).To(Succeed())

		family := gatherOne(registry)
		Expect(family.Metric).To(HaveLen(1))

		metric := filterMetricByLabel(family.Metric, "category", "empty_category")
		Expect(metric).NotTo(BeNil())
		Expect(metric.Counter.GetValue()).To(BeEquivalentTo(1))
	})

	It("should count every category apart", func(ctx SpecContext) {
		expected := map[string]int{"unreachable": 3, "unknown": 2, pipeline.PanicCategory: 1}

		for category, times := range expected {
			for i := 0; i < times; i++ {
				Expect(count.Process(ctx, pipeline.NewErrProcessingError(errOneError, category, nil))).To(Succeed())
			}
		}

		family := gatherOne(registry)
		Expect(family.Metric).To(HaveLen(len(expected)))

		for category, times := range expected {
			metric := filterMetricByLabel(family.Metric, "category", category)
			Expect(metric).NotTo(BeNil(), category)
			Expect(metric.Counter.GetValue()).To(BeEquivalentTo(times), category)
		}
	})
})
