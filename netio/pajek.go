package netio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tempnet-io/tempnet/container"
	"github.com/tempnet-io/tempnet/temporal"
)

// WritePajek writes the graph in Pajek format: a *Vertices section numbering nodes from 1 with their quoted
// labels, followed by an *Edges section referencing those vertex numbers.
func WritePajek(writer io.Writer, graph *container.ContactGraph, index *temporal.NodeIndex) error {
	var (
		buffered      = bufio.NewWriter(writer)
		vertexNumbers = make(map[uint64]int, graph.NumNodes())
	)

	if _, err := fmt.Fprintf(buffered, "*Vertices %d\n", graph.NumNodes()); err != nil {
		return err
	}

	var writeErr error

	graph.EachNode(func(node uint64) bool {
		vertexNumbers[node] = len(vertexNumbers) + 1

		_, writeErr = fmt.Fprintf(buffered, "%d %q\n", vertexNumbers[node], label(index, node))
		return writeErr == nil
	})

	if writeErr != nil {
		return writeErr
	}

	if _, err := buffered.WriteString("*Edges\n"); err != nil {
		return err
	}

	graph.EachEdge(func(a, b uint64, weight float64) bool {
		_, writeErr = fmt.Fprintf(buffered, "%d\t%d\t%s\n", vertexNumbers[a], vertexNumbers[b], formatWeight(weight))
		return writeErr == nil
	})

	if writeErr != nil {
		return writeErr
	}

	return buffered.Flush()
}

// LoadPajek is not implemented; it exists so that callers dispatching on filetype receive a typed error rather
// than a silent misparse.
func LoadPajek(reader io.Reader) (*container.ContactGraph, *temporal.NodeIndex, error) {
	return nil, nil, ErrPajekReadUnsupported
}
