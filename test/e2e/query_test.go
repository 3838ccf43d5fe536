package e2e_test

import (
	"encoding/json"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/happysysadm/get-administrativeevent/internal/domain/entity"
	"github.com/happysysadm/get-administrativeevent/test/e2e"
)

// Helper

func countByHost(records []entity.EventRecord) map[string]int {
	ret := map[string]int{}
	for _, record := range records {
		ret[record.HostName]++
	}

	return ret
}

// Test Case

var _ = Describe("Querying a fleet once", func() {
	var result e2e.Result
	var report []entity.EventRecord

	When("hosts answer in every possible way", func() {
		BeforeEach(func() {
			var err error

			command := fmt.Sprintf("%s query -c SRV01 -c unreachable01 -c legacy01 -c quiet01 --hours-back 1", binary)

			result, err = e2e.RunCommand(command, baseEnv())
			Expect(err).NotTo(HaveOccurred())

			report = nil
			err = json.Unmarshal([]byte(result.Stdout), &report)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should only report the hosts having events", func() {
			Expect(countByHost(report)).To(Equal(map[string]int{
				"SRV01":    2,
				"legacy01": 1,
			}))
		})

		It("should keep the most recent occurrence of every event", func() {
			Expect(report).To(HaveLen(3))

			By("sorting by time, most recent first")
			for i := 1; i < len(report); i++ {
				Expect(report[i-1].TimeCreated).To(BeTemporally(">=", report[i].TimeCreated))
			}

			By("projecting legacy entries")
			Expect(report).To(ContainElement(SatisfyAll(
				HaveField("HostName", "legacy01"),
				HaveField("LogName", "system"),
				HaveField("EventID", 6008),
				HaveField("LevelDisplayName", "Error"),
			)))
		})

		It("should warn about the excluded hosts", func() {
			Expect(result.Stderr).To(ContainSubstring("unreachable01"))
			Expect(result.Stderr).To(ContainSubstring("Host unreachable"))
			Expect(result.Stderr).To(ContainSubstring("quiet01"))
			Expect(result.Stderr).To(ContainSubstring("No qualifying events found"))
		})
	})

	When("querying hosts in parallel", func() {
		It("should produce the same report", func() {
			command := fmt.Sprintf("%s query -c SRV01,SRV02,unreachable01,legacy01 --parallel 4", binary)

			result, err := e2e.RunCommand(command, baseEnv())
			Expect(err).NotTo(HaveOccurred())

			parallelReport := []entity.EventRecord{}
			err = json.Unmarshal([]byte(result.Stdout), &parallelReport)
			Expect(err).NotTo(HaveOccurred())

			Expect(countByHost(parallelReport)).To(Equal(map[string]int{
				"SRV01":    2,
				"SRV02":    2,
				"legacy01": 1,
			}))
		})
	})

	When("asking for a table", func() {
		It("should print a table", func() {
			command := fmt.Sprintf("%s query -c SRV01 -o table", binary)

			result, err := e2e.RunCommand(command, baseEnv())
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Stdout).To(ContainSubstring("HOST"))
			Expect(result.Stdout).To(ContainSubstring("Kernel-Power"))
			Expect(result.Stdout).To(ContainSubstring("minutes ago"))
		})
	})
})
