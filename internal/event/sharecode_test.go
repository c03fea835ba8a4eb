package event_test

import (
	"regexp"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/expenso-app/expenso/internal/event"
)

var _ = Describe("GenerateShareCode", func() {
	It("produces codes of the configured length", func() {
		for i := 0; i < 100; i++ {
			code, err := event.GenerateShareCode()
			Expect(err).NotTo(HaveOccurred())
			Expect(code).To(HaveLen(event.ShareCodeLength))
		}
	})

	It("only uses uppercase letters and digits", func() {
		pattern := regexp.MustCompile(`^[A-Z0-9]{6}$`)
		for i := 0; i < 100; i++ {
			code, err := event.GenerateShareCode()
			Expect(err).NotTo(HaveOccurred())
			Expect(code).To(MatchRegexp(pattern.String()))
		}
	})

	It("does not repeat codes across a small sample", func() {
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			code, err := event.GenerateShareCode()
			Expect(err).NotTo(HaveOccurred())
			seen[code] = true
		}
		// 36^6 possible codes; 50 draws colliding would indicate a broken generator.
		Expect(len(seen)).To(BeNumerically(">", 45))
	})
})
