package client

import (
	"context"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/starmatch/internal/client/commands"
)

type Runner struct {
	serve cli.ActionFunc
	args  []string
}

func (c *Runner) Run(ctx context.Context) error {
	return commands.Run(ctx, commands.NewRoot(c.serve), c.args)
}
