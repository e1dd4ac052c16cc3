package netio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tempnet-io/tempnet/container"
	"github.com/tempnet-io/tempnet/temporal"
)

// LoadEdgeList reads a graph from whitespace-separated "source target weight" lines. Node labels are interned
// through the returned index in order of first appearance. Lines with fewer than three fields and self-referential
// edges are skipped.
//
// With mutualEdges set, an edge is only added once both orientations of the pair have been listed, with the
// average of the two weights; otherwise repeated listings of a pair sum their weights.
func LoadEdgeList(reader io.Reader, mutualEdges bool) (*container.ContactGraph, *temporal.NodeIndex, error) {
	type pair struct {
		a, b uint64
	}

	var (
		graph   = container.NewContactGraph()
		index   = temporal.NewNodeIndex()
		pending = map[pair]float64{}
		scanner = bufio.NewScanner(reader)
	)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())

		if len(fields) < 3 || fields[0] == fields[1] {
			continue
		}

		var (
			a = index.ID(fields[0])
			b = index.ID(fields[1])
		)

		weight, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: edge weight %q: %v", ErrMalformedInput, fields[2], err)
		}

		if mutualEdges {
			if reverseWeight, listed := pending[pair{a: b, b: a}]; listed {
				graph.SetWeight(a, b, 0.5*(reverseWeight+weight))
			} else {
				pending[pair{a: a, b: b}] = weight
			}
		} else {
			graph.AddWeight(a, b, weight)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	return graph, index, nil
}

// WriteEdgeList writes one "source target weight" line per edge, optionally preceded by a header row.
func WriteEdgeList(writer io.Writer, graph *container.ContactGraph, index *temporal.NodeIndex, headers bool) error {
	buffered := bufio.NewWriter(writer)

	if headers {
		if _, err := buffered.WriteString("HEAD\tTAIL\tWEIGHT\n"); err != nil {
			return err
		}
	}

	var writeErr error

	graph.EachEdge(func(a, b uint64, weight float64) bool {
		_, writeErr = fmt.Fprintf(buffered, "%s\t%s\t%s\n", label(index, a), label(index, b), formatWeight(weight))
		return writeErr == nil
	})

	if writeErr != nil {
		return writeErr
	}

	return buffered.Flush()
}

func formatWeight(weight float64) string {
	return strconv.FormatFloat(weight, 'g', -1, 64)
}
