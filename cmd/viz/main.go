package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tempnet-io/tempnet/algo"
	"github.com/tempnet-io/tempnet/container"
	"github.com/tempnet-io/tempnet/netio"
	"github.com/tempnet-io/tempnet/util"
)

func run(eventPath, outputPath string) error {
	input, err := os.Open(eventPath)
	if err != nil {
		return err
	}

	defer input.Close()

	log, index, err := netio.LoadEventList(input)
	if err != nil {
		return fmt.Errorf("loading %s: %w", eventPath, err)
	}

	measureDone := util.SLogMeasureFunction("NodeBetweenness", slog.Int("events", log.NumEvents()))

	betweenness, err := algo.NodeBetweenness(log, true)

	measureDone()

	if err != nil {
		return err
	}

	slog.Info("loaded contact log", "events", log.NumEvents(), "nodes", log.NumNodes())

	return renderContactGraph(outputPath, container.FromLog(log), index, betweenness, eventPath)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <events.evt> [output.html]\n", os.Args[0])
		os.Exit(2)
	}

	outputPath := "graph.html"

	if len(os.Args) > 2 {
		outputPath = os.Args[2]
	}

	if err := run(os.Args[1], outputPath); err != nil {
		util.SLogError("viz failed", err)
		os.Exit(1)
	}
}
