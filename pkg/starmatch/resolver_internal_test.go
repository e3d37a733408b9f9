package starmatch

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type findCall struct {
	segment string
	begin   int
}

// recordingBackend answers from a fixed table and records every call.
type recordingBackend struct {
	answers map[string]int
	calls   []findCall
}

func (r *recordingBackend) Find(_, segment string, begin int) (int, error) {
	r.calls = append(r.calls, findCall{segment, begin})

	idx, ok := r.answers[segment]
	if !ok {
		return NotFound, nil
	}

	return idx, nil
}

var _ = Describe("resolvers", func() {
	It("routes every shape to its resolver", func() {
		Expect(shapeOf(Pattern{})).To(Equal(0b00))
		Expect(shapeOf(Pattern{Suffix: "s"})).To(Equal(0b01))
		Expect(shapeOf(Pattern{Prefix: "p"})).To(Equal(0b10))
		Expect(shapeOf(Pattern{Prefix: "p", Suffix: "s"})).To(Equal(0b11))
	})

	It("inner searches the suffix after the prefix", func() {
		b := &recordingBackend{answers: map[string]int{"pre": 4, "suf": 9}}

		Expect(resolveInner(b, "", Pattern{Prefix: "pre", Suffix: "suf", HasWildcard: true})).To(Equal(4))
		Expect(b.calls).To(Equal([]findCall{{"pre", 0}, {"suf", 7}}))
	})

	It("inner stops when the prefix is absent", func() {
		b := &recordingBackend{answers: map[string]int{"suf": 9}}

		Expect(resolveInner(b, "", Pattern{Prefix: "pre", Suffix: "suf", HasWildcard: true})).To(Equal(NotFound))
		Expect(b.calls).To(HaveLen(1))
	})

	It("inner fails when the suffix is absent", func() {
		b := &recordingBackend{answers: map[string]int{"pre": 4}}

		Expect(resolveInner(b, "", Pattern{Prefix: "pre", Suffix: "suf", HasWildcard: true})).To(Equal(NotFound))
	})

	It("trailing searches the empty suffix after the prefix", func() {
		b := &recordingBackend{answers: map[string]int{"pre": 2, "": 5}}

		Expect(resolveTrailing(b, "", Pattern{Prefix: "pre", HasWildcard: true})).To(Equal(2))
		Expect(b.calls).To(Equal([]findCall{{"pre", 0}, {"", 5}}))
	})

	It("leading reports 0 wherever the suffix is", func() {
		b := &recordingBackend{answers: map[string]int{"suf": 6}}

		Expect(resolveLeading(b, "", Pattern{Suffix: "suf", HasWildcard: true})).To(Equal(0))
		Expect(b.calls).To(Equal([]findCall{{"suf", 0}}))
	})

	It("leading fails when the suffix is absent", func() {
		b := &recordingBackend{}

		Expect(resolveLeading(b, "", Pattern{Suffix: "suf", HasWildcard: true})).To(Equal(NotFound))
	})

	It("bare searches the empty segment from the start", func() {
		b := &recordingBackend{answers: map[string]int{"": 0}}

		Expect(resolveBare(b, "", Pattern{HasWildcard: true})).To(Equal(0))
		Expect(b.calls).To(Equal([]findCall{{"", 0}}))
	})

	It("passes literal patterns straight to the backend", func() {
		b := &recordingBackend{answers: map[string]int{"lit": 7}}

		Expect(MatchPattern(b, "", Pattern{Prefix: "lit"})).To(Equal(7))
		Expect(b.calls).To(Equal([]findCall{{"lit", 0}}))
	})
})
