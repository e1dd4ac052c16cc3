package commands

import (
	"fmt"

	"github.com/tempnet-io/tempnet/container"
	"github.com/tempnet-io/tempnet/netio"
)

func convertCmd() CommandDesc {
	return CommandDesc{
		desc: "Convert between network file formats, aggregating event lists into contact graphs",
		help: "convert <input.{edg,gml,mat,evt}> <output.{edg,gml,mat,net}>",
		args: []string{"input", "output"},
		Fn: func(cc *CommandContext, args []string) error {
			if len(args) < 2 {
				return fmt.Errorf("expected an input and an output path")
			}

			var (
				inputPath  = args[0]
				outputPath = args[1]
			)

			// Event lists are aggregated into their contact graph on the way through
			if netio.Filetype(inputPath) == netio.FiletypeEventList {
				input, err := openInput(inputPath)
				if err != nil {
					return err
				}

				defer input.Close()

				log, index, err := netio.LoadEventList(input)
				if err != nil {
					return err
				}

				return netio.WriteGraph(outputPath, container.FromLog(log), index)
			}

			graph, index, err := netio.LoadGraph(inputPath)
			if err != nil {
				return err
			}

			return netio.WriteGraph(outputPath, graph, index)
		},
	}
}
