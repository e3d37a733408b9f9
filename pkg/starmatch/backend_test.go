package starmatch_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zhulik/starmatch/pkg/starmatch"
)

func backend(a starmatch.Algorithm) starmatch.Backend {
	b, err := a.Backend()
	Expect(err).NotTo(HaveOccurred())

	return b
}

var _ = Describe("Backend", func() {
	DescribeTable("builtin",
		func(text, segment string, begin, want int) {
			Expect(backend(starmatch.Builtin).Find(text, segment, begin)).To(Equal(want))
		},
		Entry("found from start", "eggprata", "g", 0, 1),
		Entry("found after begin", "eggprata", "g", 2, 2),
		Entry("absolute index", "eggprata", "a", 6, 7),
		Entry("not found after begin", "eggprata", "e", 1, starmatch.NotFound),
		Entry("empty segment returns begin", "eggprata", "", 5, 5),
		Entry("empty segment at end of text", "abc", "", 3, 3),
		Entry("begin past end", "abc", "", 4, starmatch.NotFound),
		Entry("negative begin", "abc", "a", -2, 0),
	)

	DescribeTable("naive",
		func(text, segment string, begin, want int) {
			Expect(backend(starmatch.Naive).Find(text, segment, begin)).To(Equal(want))
		},
		Entry("found from start", "eggprata", "g", 0, 1),
		Entry("found after begin", "eggprata", "g", 2, 2),
		Entry("absolute index", "eggprata", "a", 6, 7),
		Entry("partial match then full match", "aab", "ab", 0, 1),
		Entry("not found after begin", "eggprata", "e", 1, starmatch.NotFound),
		Entry("empty segment returns 0 regardless of begin", "eggprata", "", 5, 0),
		Entry("segment longer than remaining text", "abc", "bcd", 1, starmatch.NotFound),
		Entry("begin at end", "abc", "c", 3, starmatch.NotFound),
		Entry("begin past end", "abc", "c", 10, starmatch.NotFound),
		Entry("match at last position", "abc", "c", 2, 2),
	)

	It("kmp is not implemented", func() {
		_, err := backend(starmatch.KMP).Find("abc", "a", 0)
		Expect(err).To(MatchError(starmatch.ErrNotImplemented))
	})
})
