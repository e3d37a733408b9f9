package commands

import (
	"context"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
)

const (
	textArgName    = "text"
	keywordArgName = "keyword"
	fileArgName    = "file"
)

type valueFlag interface {
	TakesValue() bool
}

func textAndKeywordArgs() []cli.Argument {
	return []cli.Argument{
		&cli.StringArgs{
			Name:      textArgName,
			UsageText: "TEXT",
			Max:       1,
			Config:    cli.StringConfig{},
		},
		&cli.StringArgs{
			Name:      keywordArgName,
			UsageText: "KEYWORD",
			Max:       1,
			Config:    cli.StringConfig{},
		},
	}
}

// textAndKeyword returns ok=false when TEXT or KEYWORD was not given.
// Empty values count as given.
func textAndKeyword(cmd *cli.Command) (string, string, bool) {
	text, keyword := cmd.StringArgs(textArgName), cmd.StringArgs(keywordArgName)
	if len(text) == 0 || len(keyword) == 0 {
		return "", "", false
	}

	return text[0], keyword[0], true
}

// Run runs root with args, args[0] being the program name.
func Run(ctx context.Context, root *cli.Command, args []string) error {
	return root.Run(ctx, terminateFlags(root, args))
}

// terminateFlags puts "--" in front of the first positional argument that is
// blank or padded with whitespace. Without it urfave/cli drops such an
// argument along with everything after it, or trims it.
func terminateFlags(root *cli.Command, args []string) []string {
	withValue := valueFlagNames(root)

	for i := 1; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			return args
		case strings.TrimSpace(arg) != arg || arg == "":
			return slices.Insert(slices.Clone(args), i, "--")
		case strings.HasPrefix(arg, "-") && !strings.Contains(arg, "="):
			if _, ok := withValue[strings.TrimLeft(arg, "-")]; ok {
				i++ // the flag value may be blank
			}
		}
	}

	return args
}

func valueFlagNames(cmd *cli.Command) map[string]struct{} {
	names := lo.FlatMap(cmd.Flags, func(f cli.Flag, _ int) []string {
		if vf, ok := f.(valueFlag); ok && vf.TakesValue() {
			return f.Names()
		}

		return nil
	})

	result := lo.SliceToMap(names, func(name string) (string, struct{}) { return name, struct{}{} })

	for _, sub := range cmd.Commands {
		for name := range valueFlagNames(sub) {
			result[name] = struct{}{}
		}
	}

	return result
}
