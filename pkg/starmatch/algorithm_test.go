package starmatch_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zhulik/starmatch/pkg/starmatch"
)

var _ = Describe("Algorithm", func() {
	DescribeTable("ParseAlgorithm",
		func(s string, want starmatch.Algorithm) {
			Expect(starmatch.ParseAlgorithm(s)).To(Equal(want))
		},
		Entry("builtin", "builtin", starmatch.Builtin),
		Entry("naive", "naive", starmatch.Naive),
		Entry("kmp", "kmp", starmatch.KMP),
	)

	DescribeTable("unknown selectors",
		func(s string) {
			_, err := starmatch.ParseAlgorithm(s)
			Expect(err).To(MatchError(starmatch.ErrUnknownAlgorithm))
		},
		Entry("empty", ""),
		Entry("different case", "Builtin"),
		Entry("unknown", "boyer-moore"),
	)

	It("round-trips through text", func() {
		for _, a := range starmatch.Algorithms() {
			text, err := a.MarshalText()
			Expect(err).NotTo(HaveOccurred())

			var parsed starmatch.Algorithm
			Expect(parsed.UnmarshalText(text)).To(Succeed())
			Expect(parsed).To(Equal(a))
		}
	})

	It("refuses to marshal an out-of-range value", func() {
		_, err := starmatch.Algorithm(9).MarshalText()
		Expect(err).To(MatchError(starmatch.ErrUnknownAlgorithm))
		Expect(starmatch.Algorithm(9).String()).To(Equal("Algorithm(9)"))
	})

	It("reports which algorithms are implemented", func() {
		Expect(starmatch.Builtin.Implemented()).To(BeTrue())
		Expect(starmatch.Naive.Implemented()).To(BeTrue())
		Expect(starmatch.KMP.Implemented()).To(BeFalse())
	})

	It("has no backend for an out-of-range value", func() {
		_, err := starmatch.Algorithm(9).Backend()
		Expect(err).To(MatchError(starmatch.ErrUnknownAlgorithm))
	})
})
