package commands

import "errors"

// ErrMissingArgument is returned by subcommands called without their
// positional arguments. The root command prints its usage line instead.
var ErrMissingArgument = errors.New("missing argument")
