package netio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tempnet-io/tempnet/container"
	"github.com/tempnet-io/tempnet/temporal"
)

// LoadGML scrapes the edges of one undirected graph out of a GML document. This is not a complete GML parser: it
// recognizes the directed flag and source/target/value keys inside edge blocks and ignores everything else, which
// is sufficient for files produced by WriteGML and most network datasets in the wild.
func LoadGML(reader io.Reader) (*container.ContactGraph, *temporal.NodeIndex, error) {
	var (
		graph   = container.NewContactGraph()
		index   = temporal.NewNodeIndex()
		scanner = bufio.NewScanner(reader)

		source, target, value string
	)

	flush := func() error {
		if source == "" || target == "" {
			return nil
		}

		weight := 1.0

		if value != "" {
			if _, err := fmt.Sscanf(value, "%g", &weight); err != nil {
				return fmt.Errorf("%w: edge value %q: %v", ErrMalformedInput, value, err)
			}
		}

		graph.SetWeight(index.ID(source), index.ID(target), weight)

		source, target, value = "", "", ""
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "directed"):
			if strings.TrimSpace(strings.TrimPrefix(line, "directed")) == "1" {
				return nil, nil, ErrDirectedUnsupported
			}

		case strings.HasPrefix(line, "source"):
			source = gmlValue(line, "source")

		case strings.HasPrefix(line, "target"):
			target = gmlValue(line, "target")

		case strings.HasPrefix(line, "value"):
			value = gmlValue(line, "value")

		case strings.HasPrefix(line, "edge"):
			// A new edge block flushes the previous one
			if err := flush(); err != nil {
				return nil, nil, err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	if err := flush(); err != nil {
		return nil, nil, err
	}

	return graph, index, nil
}

func gmlValue(line, key string) string {
	fields := strings.Fields(strings.TrimPrefix(line, key))

	if len(fields) == 0 {
		return ""
	}

	return strings.Trim(fields[0], `"`)
}

// WriteGML writes the graph as an undirected GML document, one node block per node with its interned label and
// one edge block per undirected edge with the edge weight as its value.
func WriteGML(writer io.Writer, graph *container.ContactGraph, index *temporal.NodeIndex) error {
	buffered := bufio.NewWriter(writer)

	if _, err := buffered.WriteString("graph [\ndirected 0\n"); err != nil {
		return err
	}

	var writeErr error

	graph.EachNode(func(node uint64) bool {
		_, writeErr = fmt.Fprintf(buffered, "node [\nid %d\nlabel %q\n]\n", node, label(index, node))
		return writeErr == nil
	})

	if writeErr != nil {
		return writeErr
	}

	graph.EachEdge(func(a, b uint64, weight float64) bool {
		_, writeErr = fmt.Fprintf(buffered, "edge [\nsource %d\ntarget %d\nvalue %s\n]\n", a, b, formatWeight(weight))
		return writeErr == nil
	})

	if writeErr != nil {
		return writeErr
	}

	if _, err := buffered.WriteString("]\n"); err != nil {
		return err
	}

	return buffered.Flush()
}
