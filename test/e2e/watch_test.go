package e2e_test

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/happysysadm/get-administrativeevent/test/e2e"
)

var _ = Describe("Watching a fleet", func() {
	var watch *e2e.Background
	var metricsPort int

	BeforeEach(func() {
		var err error

		metricsPort = 20000 + rand.Intn(10000)

		command := fmt.Sprintf("%s watch -c SRV01 -c unreachable01 --interval 1s --metrics-port %d", binary, metricsPort)

		watch, err = e2e.StartCommand(command, baseEnv())
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		err := watch.Stop()
		Expect(err).NotTo(HaveOccurred())
	})

	It("should expose the outcome of every collection", func(ctx SpecContext) {
		url := fmt.Sprintf("http://localhost:%d/metrics", metricsPort)

		By("eventually counting several collections")
		Eventually(func(g Gomega, ctx context.Context) {
			metricResp, err := e2e.HttpGet(ctx, url)
			g.Expect(err).NotTo(HaveOccurred())

			metricFamily, err := e2e.GetMetricFamily(metricResp, "admin_events_host_outcome_total")
			g.Expect(err).NotTo(HaveOccurred())

			events, err := e2e.CounterValue(metricFamily, "outcome", "events")
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(events).To(BeNumerically(">=", 2))

			unreachable, err := e2e.CounterValue(metricFamily, "outcome", "unreachable")
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(unreachable).To(BeNumerically(">=", 2))
		}).WithContext(ctx).WithTimeout(30 * time.Second).WithPolling(500 * time.Millisecond).Should(Succeed())

		By("counting the excluded hosts as errors")
		metricResp, err := e2e.HttpGet(ctx, url)
		Expect(err).NotTo(HaveOccurred())

		metricFamily, err := e2e.GetMetricFamily(metricResp, "admin_events_processing_error_total")
		Expect(err).NotTo(HaveOccurred())

		unreachable, err := e2e.CounterValue(metricFamily, "category", "unreachable")
		Expect(err).NotTo(HaveOccurred())
		Expect(unreachable).To(BeNumerically(">=", 1))
	})
})
