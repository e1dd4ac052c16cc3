package commands

import (
	"fmt"

	"github.com/tempnet-io/tempnet/netio"
	"github.com/tempnet-io/tempnet/temporal"
)

func infoCmd() CommandDesc {
	return CommandDesc{
		desc: "Summarize a temporal event list in one streaming pass",
		help: "info <events.evt>",
		args: []string{"events.evt"},
		Fn: func(cc *CommandContext, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("expected an event list path")
			}

			input, err := openInput(args[0])
			if err != nil {
				return err
			}

			defer input.Close()

			var (
				index       = temporal.NewNodeIndex()
				accumulator = temporal.NewStatsAccumulator()
			)

			if err := netio.StreamEvents(input, index, func(event temporal.Event) bool {
				accumulator.Observe(event)
				return true
			}); err != nil {
				return err
			}

			stats := accumulator.Stats()

			fmt.Fprintf(cc.Output, "events:       %d\n", stats.NumEvents)
			fmt.Fprintf(cc.Output, "nodes:        %d\n", index.Len())
			fmt.Fprintf(cc.Output, "approx nodes: %d\n", stats.ApproxNodes)
			fmt.Fprintf(cc.Output, "time span:    %d .. %d\n", stats.Start, stats.End)

			return nil
		},
	}
}
