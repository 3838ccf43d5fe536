package e2e_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/happysysadm/get-administrativeevent/test/e2e"
)

var _ = Describe("Checking invalid input", func() {
	DescribeTable("should fail before contacting any host",
		func(args string, expected string) {
			result, err := e2e.RunCommand(fmt.Sprintf("%s query %s", binary, args), baseEnv())
			Expect(err).To(HaveOccurred())

			Expect(result.Stdout).To(BeEmpty())
			Expect(result.Stderr).To(ContainSubstring(expected))
		},
		Entry("no computer name", "", "at least one computer name is required"),
		Entry("zero hours", "-c SRV01 --hours-back 0", "hours back must be a positive number of hours"),
		Entry("negative hours", "-c SRV01 --hours-back -3", "hours back must be a positive number of hours"),
		Entry("unknown format", "-c SRV01 -o xml", "unexpected output format"),
	)

	It("should report a missing config file", func() {
		_, err := e2e.RunCommand(fmt.Sprintf("%s query -c SRV01 --config /does/not/exist.yaml", binary), baseEnv())
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("failed to parse config"))
	})
})
