package api_test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zhulik/starmatch/integration/testhelpers"
	"github.com/zhulik/starmatch/internal/client/apiclient"
	"github.com/zhulik/starmatch/internal/core"
	"github.com/zhulik/starmatch/pkg/starmatch"
)

var _ = Describe("Match API", Label("integration"), Ordered, func() {
	var app *testhelpers.App
	var client *apiclient.Client

	BeforeAll(func(ctx context.Context) {
		app = testhelpers.NewApp(starmatch.Naive)
		client = app.Client(ctx)
	})

	AfterAll(func(ctx context.Context) {
		app.Stop(ctx)
	})

	DescribeTable("matches remotely",
		func(ctx context.Context, text, pattern, algorithm string, want int) {
			result, err := client.Match(ctx, text, pattern, algorithm)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Index).To(Equal(want))
			Expect(result.Found).To(Equal(want != starmatch.NotFound))
		},
		Entry("e*prat", "eggprata", "e*prat", "builtin", 0),
		Entry("pra*t", "eggprata", "pra*t", "naive", 3),
		Entry("haha*haha", "eggprata", "haha*haha", "", starmatch.NotFound),
		Entry("*prata", "eggprata", "*prata", "", 0),
		Entry("*", "eggprata", "*", "", 0),
		Entry("z", "eggprata", "z", "", starmatch.NotFound),
	)

	It("uses the service default algorithm", func(ctx context.Context) {
		result, err := client.Match(ctx, "eggprata", "e", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Algorithm).To(Equal("naive"))
	})

	DescribeTable("maps errors back to sentinels",
		func(ctx context.Context, pattern, algorithm string, want error) {
			_, err := client.Match(ctx, "eggprata", pattern, algorithm)
			Expect(err).To(MatchError(want))
		},
		Entry("malformed pattern", "a*b*c", "", starmatch.ErrMalformedPattern),
		Entry("unknown algorithm", "e", "quick", starmatch.ErrUnknownAlgorithm),
		Entry("not implemented", "e", "kmp", starmatch.ErrNotImplemented),
	)

	It("fails on unexpected statuses", func(ctx context.Context) {
		broken := &apiclient.Client{Config: &core.ClientConfig{ServerURL: app.URL() + "/missing"}}
		Expect(broken.Init(ctx)).To(Succeed())

		_, err := broken.Match(ctx, "eggprata", "e", "")
		Expect(err).To(MatchError(apiclient.ErrUnexpectedStatus))
		Expect(err).To(MatchError(ContainSubstring("%d", http.StatusNotFound)))
	})

	It("serves the injected matcher", func(ctx context.Context) {
		Expect(app.Matcher(ctx).Match(ctx, core.MatchRequest{Text: "eggprata", Pattern: "gg*"})).
			To(Equal(core.MatchResult{Index: 1}))
	})
})
