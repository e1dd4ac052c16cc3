package commands

import (
	"flag"
	"fmt"

	"github.com/tempnet-io/tempnet/algo"
	"github.com/tempnet-io/tempnet/netio"
)

func betweennessCmd() CommandDesc {
	var (
		flags        = flag.NewFlagSet("betweenness", flag.ContinueOnError)
		nodeTotals   = flags.Bool("nodes", false, "also report per-node betweenness totals")
		includeEnds  = flags.Bool("ends", false, "credit nodes for paths that start or end at them")
		eventsByTime = flags.Bool("by-time", false, "label output rows with event times instead of log positions")
	)

	return CommandDesc{
		desc:  "Compute the betweenness of time-respecting paths for every event",
		help:  "betweenness [flags] <events.evt>",
		args:  []string{"events.evt"},
		flags: flags,
		Fn: func(cc *CommandContext, args []string) error {
			if err := flags.Parse(args); err != nil {
				return err
			}

			if flags.NArg() < 1 {
				return fmt.Errorf("expected an event list path")
			}

			input, err := openInput(flags.Arg(0))
			if err != nil {
				return err
			}

			defer input.Close()

			log, index, err := netio.LoadEventList(input)
			if err != nil {
				return err
			}

			position := 0

			emit := func(time int64, betweenness uint64) bool {
				if *eventsByTime {
					fmt.Fprintf(cc.Output, "%d\t%d\n", time, betweenness)
				} else {
					fmt.Fprintf(cc.Output, "%d\t%d\n", position, betweenness)
				}

				position += 1
				return true
			}

			if !*nodeTotals {
				return algo.EventBetweenness(log, emit)
			}

			totals, err := algo.EventAndNodeBetweenness(log, *includeEnds, emit)
			if err != nil {
				return err
			}

			fmt.Fprintln(cc.Output)

			index.EachLabel(func(label string, id uint64) bool {
				fmt.Fprintf(cc.Output, "%s\t%d\n", label, totals[id])
				return true
			})

			return nil
		},
	}
}
