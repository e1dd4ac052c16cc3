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

// LoadMatrix reads a square adjacency matrix with one whitespace-separated row per line. Row and column positions
// become node IDs 0..n-1; diagonal entries are ignored. Off-diagonal asymmetry is not detected: the last value
// written for a pair wins.
func LoadMatrix(reader io.Reader) (*container.ContactGraph, *temporal.NodeIndex, error) {
	var (
		graph   = container.NewContactGraph()
		index   = temporal.NewNodeIndex()
		scanner = bufio.NewScanner(reader)
		rows    [][]string
		columns = -1
	)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())

		if len(fields) == 0 {
			continue
		}

		if columns < 0 {
			columns = len(fields)
		} else if len(fields) != columns {
			return nil, nil, fmt.Errorf("%w: inconsistent number of columns at row %d", ErrMalformedInput, len(rows)+1)
		}

		rows = append(rows, fields)
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	if len(rows) != columns {
		return nil, nil, fmt.Errorf("%w: not a square matrix: %d columns and %d rows", ErrMalformedInput, columns, len(rows))
	}

	for row := range rows {
		graph.AddNode(index.ID(strconv.Itoa(row)))
	}

	for row, fields := range rows {
		for column, field := range fields {
			if column == row {
				continue
			}

			weight, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: matrix entry at row %d column %d: %v", ErrMalformedInput, row, column, err)
			}

			if weight != 0 {
				graph.SetWeight(uint64(row), uint64(column), weight)
			}
		}
	}

	return graph, index, nil
}

// WriteMatrix writes the graph as a square adjacency matrix over its nodes in ascending ID order, with zeros on
// the diagonal and for absent edges.
func WriteMatrix(writer io.Writer, graph *container.ContactGraph) error {
	var (
		buffered = bufio.NewWriter(writer)
		nodes    = graph.Nodes().Slice()
	)

	for _, row := range nodes {
		for column, other := range nodes {
			if column > 0 {
				if err := buffered.WriteByte(' '); err != nil {
					return err
				}
			}

			weight := 0.0

			if other != row {
				weight = graph.Weight(row, other)
			}

			if _, err := buffered.WriteString(formatWeight(weight)); err != nil {
				return err
			}
		}

		if err := buffered.WriteByte('\n'); err != nil {
			return err
		}
	}

	return buffered.Flush()
}
