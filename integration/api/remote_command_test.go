package api_test

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/starmatch/integration/testhelpers"
	"github.com/zhulik/starmatch/internal/client/commands"
	"github.com/zhulik/starmatch/pkg/starmatch"
)

var _ = Describe("starmatch remote", Label("integration"), Ordered, func() {
	var app *testhelpers.App
	var clientCtx context.Context

	BeforeAll(func() {
		app = testhelpers.NewApp(starmatch.Naive)
		clientCtx = app.ClientContext(context.Background())
	})

	AfterAll(func(ctx context.Context) {
		app.Stop(ctx)
	})

	remote := func(args ...string) (string, error) {
		var out bytes.Buffer

		root := commands.NewRoot(func(context.Context, *cli.Command) error { return nil })
		root.Writer = &out
		root.ErrWriter = &out

		err := commands.Run(clientCtx, root, append([]string{"starmatch"}, args...))

		return out.String(), err
	}

	DescribeTable("prints the service result",
		func(args []string, want string) {
			out, err := remote(append([]string{"remote"}, args...)...)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(want))
		},
		Entry("e*prat", []string{"eggprata", "e*prat"}, "Result: 0\n"),
		Entry("pra*t", []string{"eggprata", "pra*t"}, "Result: 3\n"),
		Entry("haha*haha", []string{"eggprata", "haha*haha"}, "Result: -1\n"),
		Entry("blank keyword", []string{"eggprata", ""}, "Result: 0\n"),
		Entry("blank text", []string{"", "e"}, "Result: -1\n"),
	)

	DescribeTable("surfaces service errors as sentinels",
		func(args []string, want error) {
			_, err := remote(args...)
			Expect(err).To(MatchError(want))
		},
		Entry("malformed pattern", []string{"remote", "eggprata", "a*b*c"}, starmatch.ErrMalformedPattern),
		Entry("unknown algorithm", []string{"-a", "quick", "remote", "eggprata", "e"}, starmatch.ErrUnknownAlgorithm),
		Entry("not implemented", []string{"remote", "-a", "kmp", "eggprata", "e"}, starmatch.ErrNotImplemented),
		Entry("missing keyword", []string{"remote", "eggprata"}, commands.ErrMissingArgument),
	)
})
