package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/starmatch/pkg/starmatch"
)

const usage = "usage: starmatch TEXT KEYWORD"

const algorithmFlagName = "algorithm"

func newAlgorithmFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    algorithmFlagName,
		Aliases: []string{"a"},
		Usage:   "matching algorithm: builtin, naive or kmp",
		Value:   starmatch.Builtin.String(),
		Sources: cli.EnvVars("STARMATCH_ALGORITHM"),
	}
}

// NewRoot builds the starmatch command. serve runs the HTTP service.
// Run it with Run so that blank arguments survive parsing.
func NewRoot(serve cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:      "starmatch",
		Usage:     "find a pattern with at most one '*' wildcard in a text",
		Flags:     []cli.Flag{newAlgorithmFlag()},
		Arguments: textAndKeywordArgs(),
		Action:    matchAction,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the match HTTP service",
				Action: serve,
			},
			newBatchCommand(),
			newRemoteCommand(),
		},
	}
}

// matchAction prints the usage and exits cleanly when TEXT or KEYWORD is missing.
func matchAction(_ context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer

	text, keyword, ok := textAndKeyword(cmd)
	if !ok {
		fmt.Fprintln(w, usage)

		return nil
	}

	fmt.Fprintf(w, "Searching for %q in %q.\n", keyword, text)

	idx, err := starmatch.MatchNamed(text, keyword, cmd.String(algorithmFlagName))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Result: %d\n", idx)

	return nil
}
