package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/tempnet-io/tempnet/tools/tnrun/pkg/commands"
	"github.com/tempnet-io/tempnet/util"

	_ "github.com/tempnet-io/tempnet/drivers/neo4j"
	_ "github.com/tempnet-io/tempnet/drivers/pg"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <command> [args]\n\nCommands:\n", os.Args[0])

	for name, cmd := range commands.Registry() {
		fmt.Fprintf(os.Stderr, "  %-12s %s\n", name, cmd.Description())
	}
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt)
	defer done()

	commandName := strings.ToLower(os.Args[1])

	cmd, hasCmd := commands.Registry()[commandName]
	if !hasCmd {
		fmt.Fprintf(os.Stderr, "unknown command %s; try `help`\n", commandName)
		os.Exit(2)
	}

	if err := cmd.Fn(commands.NewCommandContext(ctx, os.Stdout), os.Args[2:]); err != nil {
		util.SLogError(fmt.Sprintf("%s failed", commandName), err)
		os.Exit(1)
	}
}
