package commands

import (
	"flag"
	"fmt"

	"github.com/tempnet-io/tempnet/algo"
	"github.com/tempnet-io/tempnet/netio"
)

func distanceCmd() CommandDesc {
	var (
		flags         = flag.NewFlagSet("distance", flag.ContinueOnError)
		cacheCapacity = flags.Int("cache", 64, "number of BFS sweeps memoized between queries")
	)

	return CommandDesc{
		desc:  "Query shortest path distances between node pairs of a static graph",
		help:  "distance [flags] <graph.{edg,gml,mat}> <source> <target> [<source> <target> ...]",
		args:  []string{"graph", "source", "target"},
		flags: flags,
		Fn: func(cc *CommandContext, args []string) error {
			if err := flags.Parse(args); err != nil {
				return err
			}

			if flags.NArg() < 3 || flags.NArg()%2 == 0 {
				return fmt.Errorf("expected a graph path followed by source and target label pairs")
			}

			graph, index, err := netio.LoadGraph(flags.Arg(0))
			if err != nil {
				return err
			}

			oracle := algo.NewPathOracle(graph, *cacheCapacity)

			for pair := 1; pair < flags.NArg(); pair += 2 {
				var (
					sourceLabel = flags.Arg(pair)
					targetLabel = flags.Arg(pair + 1)
				)

				if distance, reachable := oracle.Distance(index.ID(sourceLabel), index.ID(targetLabel)); reachable {
					fmt.Fprintf(cc.Output, "%s\t%s\t%d\n", sourceLabel, targetLabel, distance)
				} else {
					fmt.Fprintf(cc.Output, "%s\t%s\tunreachable\n", sourceLabel, targetLabel)
				}
			}

			return nil
		},
	}
}
