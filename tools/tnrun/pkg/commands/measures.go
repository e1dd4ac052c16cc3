package commands

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/tempnet-io/tempnet/algo"
	"github.com/tempnet-io/tempnet/netio"
)

func measuresCmd() CommandDesc {
	var (
		flags       = flag.NewFlagSet("measures", flag.ContinueOnError)
		concurrency = flags.Int("concurrency", runtime.NumCPU(), "number of parallel BFS sweeps")
		samples     = flags.Uint64("samples", 0, "estimate mean path length from this many sampled sources instead of every source")
	)

	return CommandDesc{
		desc:  "Compute static centrality measures over a contact graph",
		help:  "measures [flags] <graph.{edg,gml,mat}>",
		args:  []string{"graph"},
		flags: flags,
		Fn: func(cc *CommandContext, args []string) error {
			if err := flags.Parse(args); err != nil {
				return err
			}

			if flags.NArg() < 1 {
				return fmt.Errorf("expected a graph path")
			}

			graph, index, err := netio.LoadGraph(flags.Arg(0))
			if err != nil {
				return err
			}

			closeness, err := algo.ClosenessParallel(cc, graph, *concurrency)
			if err != nil {
				return err
			}

			betweenness := algo.Betweenness(graph)

			fmt.Fprintf(cc.Output, "NODE\tCLOSENESS\tBETWEENNESS\n")

			index.EachLabel(func(label string, id uint64) bool {
				fmt.Fprintf(cc.Output, "%s\t%g\t%g\n", label, closeness[id], betweenness[id])
				return true
			})

			sampleCount := *samples

			if sampleCount == 0 {
				sampleCount = graph.NumNodes()
			}

			if meanLength, connected := algo.EstimateMeanPathLength(cc, graph, sampleCount, *concurrency); connected {
				fmt.Fprintf(cc.Output, "\nmean path length: %g\n", meanLength)
			}

			return nil
		},
	}
}
