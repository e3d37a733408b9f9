package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/starmatch/internal/batch"
	"github.com/zhulik/starmatch/pkg/starmatch"
)

func newBatchCommand() *cli.Command {
	return &cli.Command{
		Name:    "batch",
		Aliases: []string{"b"},
		Usage:   "run every case from a YAML or JSON file",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      fileArgName,
				UsageText: "FILE",
				Config:    cli.StringConfig{},
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			path := cmd.StringArg(fileArgName)
			if path == "" {
				return fmt.Errorf("%w: FILE", ErrMissingArgument)
			}

			fallback, err := starmatch.ParseAlgorithm(cmd.String(algorithmFlagName))
			if err != nil {
				return err
			}

			f, err := batch.Load(path)
			if err != nil {
				return err
			}

			return batch.Report(cmd.Root().Writer, batch.Run(f, fallback))
		},
	}
}
