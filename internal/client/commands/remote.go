package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
	"github.com/zhulik/starmatch/internal/client/apiclient"
)

func newRemoteCommand() *cli.Command {
	return &cli.Command{
		Name:      "remote",
		Aliases:   []string{"r"},
		Usage:     "match using a running starmatch service",
		Arguments: textAndKeywordArgs(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			text, keyword, ok := textAndKeyword(cmd)
			if !ok {
				return fmt.Errorf("%w: TEXT and KEYWORD", ErrMissingArgument)
			}

			client := pal.MustInvoke[*apiclient.Client](ctx, nil)

			// the service picks its own default unless asked otherwise
			algorithm := ""
			if cmd.IsSet(algorithmFlagName) {
				algorithm = cmd.String(algorithmFlagName)
			}

			result, err := client.Match(ctx, text, keyword, algorithm)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			fmt.Fprintf(w, "Result: %d\n", result.Index)

			if result.Cached {
				fmt.Fprintln(w, "(cached)")
			}

			return nil
		},
	}
}
