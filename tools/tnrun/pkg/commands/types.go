package commands

import (
	"context"
	"flag"
	"io"
)

type (
	CommandFn      func(*CommandContext, []string) error
	CommandContext struct {
		context.Context

		// Output receives the command's primary result so that callers can redirect it
		Output io.Writer
	}
	CommandDesc struct {
		Fn    CommandFn
		flags *flag.FlagSet
		args  []string
		desc  string
		help  string
	}
)

func NewCommandContext(ctx context.Context, output io.Writer) *CommandContext {
	return &CommandContext{
		Context: ctx,
		Output:  output,
	}
}

func (s CommandDesc) Description() string {
	return s.desc
}
